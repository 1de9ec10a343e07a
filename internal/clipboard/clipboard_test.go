package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func lookPathFor(present ...string) func(string) (string, error) {
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	return func(bin string) (string, error) {
		if set[bin] {
			return "/usr/bin/" + bin, nil
		}
		return "", errors.New("not found")
	}
}

func TestDetectPriorityOrder(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    string
		found   bool
	}{
		{"all present picks xclip", []string{"xclip", "xsel", "wl-copy"}, "xclip", true},
		{"xsel before wl-copy", []string{"xsel", "wl-copy"}, "xsel", true},
		{"wayland only", []string{"wl-copy"}, "wl-copy", true},
		{"none", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(lookPathFor(tt.present...))
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHelpersOrderIsFixed(t *testing.T) {
	hs := Helpers()
	require.Len(t, hs, 3)
	require.Equal(t, "xclip", hs[0].Name)
	require.Equal(t, "xsel", hs[1].Name)
	require.Equal(t, "wl-copy", hs[2].Name)
}
