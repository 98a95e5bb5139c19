package xybri

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex returns c as six lowercase hex digits, without a leading #.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", To8Bit(c.R), To8Bit(c.G), To8Bit(c.B))
}

// ParseHex parses a color of the form rrggbb or #rrggbb.
func ParseHex(s string) (ans RGB, err error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return ans, fmt.Errorf("%w: hex color %#v must have six digits", ErrInvalidInput, s)
	}
	var ch [3]float64
	for i := range ch {
		v, perr := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if perr != nil {
			return ans, fmt.Errorf("%w: hex color %#v: %w", ErrInvalidInput, s, perr)
		}
		ch[i] = float64(v) / 255
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

func HexToXYBri(s string) (XYBri, error) {
	c, err := ParseHex(s)
	if err != nil {
		return XYBri{}, err
	}
	return RGBToXYBri(c)
}
