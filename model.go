package xybri

import (
	"github.com/kovidgoyal/xybri/gamut"
)

// XYForModel returns p if the device model m can reproduce it, otherwise
// the nearest chromaticity that it can. Unrecognised models can reproduce
// every chromaticity.
func XYForModel(p gamut.Point, m gamut.Model) gamut.Point {
	return gamut.ForModel(p, m)
}

// XYBriForModel is XYForModel applied to the chromaticity of c. The
// brightness is unchanged.
func XYBriForModel(c XYBri, m gamut.Model) XYBri {
	return XYBriForTriangle(c, gamut.TriangleForModel(m))
}

// XYBriForTriangle is XYBriForModel for a gamut not in the table of known
// models, for example one reported by the device itself.
func XYBriForTriangle(c XYBri, t gamut.Triangle) XYBri {
	p := t.Closest(c.XY())
	return XYBri{X: p.X, Y: p.Y, Bri: c.Bri}
}

// RGBForModel returns the color the device model m actually shows when
// asked to display c.
func RGBForModel(c RGB, m gamut.Model) (RGB, error) {
	xyb, err := RGBToXYBri(c)
	if err != nil {
		return RGB{}, err
	}
	return XYBriToRGB(XYBriForModel(xyb, m))
}
