package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_SortableAndUnique(t *testing.T) {
	prev := New()
	for range 50 {
		next := New()
		require.NotEqual(t, prev, next)
		require.Less(t, prev.String(), next.String(),
			"IDs from the monotonic source must sort in creation order")
		prev = next
	}
}

func TestNewAt_EmbedsTime(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	id := NewAt(at)
	require.Equal(t, at, id.Time())
}

func TestParse(t *testing.T) {
	valid := New().String()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid ulid", valid, false},
		{"valid with whitespace", "  " + valid + "  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "01ARZ3NDEKTSV", true},
		{"invalid characters", "01ARZ3NDEKTSV4RRFFQ69G5FA!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				require.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			require.Equal(t, valid, id.String())
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { MustParse("not-a-ulid") })
}
