package xybri

import (
	"math"
	"sync"
)

var encoded8ToLinearLUT = sync.OnceValue(func() []float64 {
	ans := make([]float64, 256)
	for i := range ans {
		ans[i] = encodedToLinear(float64(i) / 255)
	}
	return ans
})

// RGB8ToXYBri is the same as RGBToXYBri for 8-bit channel values. It uses a
// look-up table for gamma decoding, so is suitable for converting many
// pixels.
func RGB8ToXYBri(r, g, b uint8) XYBri {
	lut := encoded8ToLinearLUT()
	return xybri_from_linear(lut[r], lut[g], lut[b])
}

// To8Bit converts a channel value in [0, 1] to 8 bits, with rounding.
// Values outside the range are clipped.
func To8Bit(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// To16Bit converts a channel value in [0, 1] to 16 bits, with rounding.
// Values outside the range are clipped.
func To16Bit(v float64) uint16 {
	return uint16(math.Round(clamp01(v) * 65535))
}
