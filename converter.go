package xybri

import (
	"fmt"
	"math"
)

type vec3 [3]float64
type mat3 [3][3]float64

// Linear sRGB to CIE XYZ, wide gamut D65
var xyzFromLinearRGB = mat3{
	{0.649926, 0.103455, 0.197109},
	{0.234327, 0.743075, 0.022598},
	{0.000000, 0.053077, 1.035763},
}

// CIE XYZ to linear sRGB, wide gamut D65
var linearRGBFromXYZ = mat3{
	{1.612, -0.203, -0.302},
	{-0.509, 1.412, 0.066},
	{0.026, -0.072, 0.962},
}

func (m *mat3) mul(v vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}

// encodedToLinear is the sRGB gamma decoding function.
func encodedToLinear(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// linearToEncoded is the sRGB gamma encoding function. It does not clip.
func linearToEncoded(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// RGBToXYBri converts an sRGB color to chromaticity and brightness. Every
// channel must be in [0, 1] otherwise an *InvalidInputError is returned.
// Black maps to chromaticity (0, 0).
func RGBToXYBri(c RGB) (XYBri, error) {
	if err := c.Validate(); err != nil {
		return XYBri{}, err
	}
	return xybri_from_linear(encodedToLinear(c.R), encodedToLinear(c.G), encodedToLinear(c.B)), nil
}

func xybri_from_linear(r, g, b float64) XYBri {
	X, Y, Z := xyzFromLinearRGB.mul(vec3{r, g, b})
	sum := X + Y + Z
	if sum == 0 {
		return XYBri{Bri: Y}
	}
	return XYBri{X: X / sum, Y: Y / sum, Bri: Y}
}

// XYBriToRGB converts chromaticity and brightness to an sRGB color. X must
// be in [0, 0.8] and Y and Bri in [0, 1] otherwise an *InvalidInputError
// is returned. Chromaticities outside the sRGB gamut produce channels
// outside [0, 1], these are clipped.
//
// A zero brightness is always black. A zero Y with non-zero brightness has
// no defined XYZ value and a *DegenerateGeometryError is returned.
func XYBriToRGB(c XYBri) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	if c.Bri == 0 {
		return RGB{}, nil
	}
	if c.Y == 0 {
		return RGB{}, &DegenerateGeometryError{Reason: fmt.Sprintf("y chromaticity is zero with brightness: %g", c.Bri)}
	}
	z := 1.0 - c.X - c.Y
	Y := c.Bri
	X := (Y / c.Y) * c.X
	Z := (Y / c.Y) * z
	r, g, b := linearRGBFromXYZ.mul(vec3{X, Y, Z})
	return RGB{clamp01(linearToEncoded(r)), clamp01(linearToEncoded(g)), clamp01(linearToEncoded(b))}, nil
}
