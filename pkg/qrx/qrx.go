// Package qrx renders otpauth provisioning URIs as QR code images so
// authenticator apps can enrol without typing the secret.
package qrx

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/pquerna/otp"
)

// DefaultSize is the pixel width and height used for rendered QR codes.
const DefaultSize = 200

// RenderPNG renders an otpauth:// provisioning URI as a PNG QR code.
func RenderPNG(provisioningURI string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	key, err := otp.NewKeyFromURL(provisioningURI)
	if err != nil {
		return nil, fmt.Errorf("qrx: invalid provisioning uri: %w", err)
	}

	img, err := key.Image(size, size)
	if err != nil {
		return nil, fmt.Errorf("qrx: failed to render qr code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("qrx: failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDataURI renders the provisioning URI as a base64 data URI suitable
// for embedding directly in an <img> tag.
func RenderDataURI(provisioningURI string, size int) (string, error) {
	raw, err := RenderPNG(provisioningURI, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}
