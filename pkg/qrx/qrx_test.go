package qrx_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/cosahq/cosa/pkg/qrx"
	"github.com/stretchr/testify/require"
)

const testURI = "otpauth://totp/COSA:alice?secret=JBSWY3DPEHPK3PXP&issuer=COSA&algorithm=SHA1&digits=6&period=30"

func TestRenderPNG(t *testing.T) {
	raw, err := qrx.RenderPNG(testURI, 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, qrx.DefaultSize, img.Bounds().Dx())
	require.Equal(t, qrx.DefaultSize, img.Bounds().Dy())
}

func TestRenderPNG_InvalidURI(t *testing.T) {
	_, err := qrx.RenderPNG("not a uri ://", 200)
	require.Error(t, err)
}

func TestRenderDataURI(t *testing.T) {
	uri, err := qrx.RenderDataURI(testURI, 100)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}
