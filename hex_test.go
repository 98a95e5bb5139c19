package xybri

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	require.Equal(t, "ff8000", RGB{1, 0.5, 0}.Hex())
	require.Equal(t, "000000", RGB{}.Hex())
	require.Equal(t, "0a0b0c", RGB{10. / 255, 11. / 255, 12. / 255}.Hex())

	for _, s := range []string{"ff8000", "#FF8000", "0a0b0c", "ffffff"} {
		c, err := ParseHex(s)
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		require.Equal(t, strings.ToLower(s[len(s)-6:]), c.Hex(), "round trip of %#v", s)
	}
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	require.Equal(t, RGB{1, 128. / 255, 0}, c)

	for _, s := range []string{"", "12345", "#1234567", "gg0000", "+f0000", "ff80 0"} {
		_, err := ParseHex(s)
		require.ErrorIs(t, err, ErrInvalidInput, "%#v", s)
	}
}

func TestHexToXYBri(t *testing.T) {
	xyb, err := HexToXYBri("ff0000")
	require.NoError(t, err)
	expected, err := RGBToXYBri(RGB{1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, expected, xyb)
	_, err = HexToXYBri("red")
	require.ErrorIs(t, err, ErrInvalidInput)
}
