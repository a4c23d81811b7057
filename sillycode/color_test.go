package sillycode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColor_String(t *testing.T) {
	require.Equal(t, "#000000", Color{}.String())
	require.Equal(t, "#0a0a0a", Color{10, 10, 10}.String())
	require.Equal(t, "#ad77f1", Color{0xad, 0x77, 0xf1}.String())
	require.Equal(t, "#ffffff", Color{255, 255, 255}.String())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "lowercase", input: "#ad77f1", want: Color{0xad, 0x77, 0xf1}},
		{name: "uppercase", input: "#AD77F1", want: Color{0xad, 0x77, 0xf1}},
		{name: "mixed_case", input: "#aD77F1", want: Color{0xad, 0x77, 0xf1}},
		{name: "zero_padded", input: "#0a0a0a", want: Color{10, 10, 10}},
		{name: "no_hash", input: "ad77f1a", wantErr: true},
		{name: "short", input: "#ad77f", wantErr: true},
		{name: "long", input: "#ad77f10", wantErr: true},
		{name: "plus_sign", input: "#+f0000", wantErr: true},
		{name: "not_hex", input: "#gg0000", wantErr: true},
		{name: "multibyte", input: "#жжж", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidColor)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, c)
		})
	}
}

func TestColor_RoundTrip(t *testing.T) {
	for _, c := range []Color{{}, {1, 2, 3}, {0xa8, 0x34, 0xcf}, {255, 255, 255}} {
		parsed, err := ParseColor(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
}
