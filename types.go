package xybri

import (
	"fmt"

	"github.com/kovidgoyal/xybri/gamut"
)

var _ = fmt.Print

// RGB is a display referred sRGB color, each channel in [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB{%.4f %.4f %.4f}", c.R, c.G, c.B)
}

// Validate returns an *InvalidInputError for the first channel outside [0, 1].
func (c RGB) Validate() (err error) {
	if err = check_range("r", c.R, 0, 1); err == nil {
		if err = check_range("g", c.G, 0, 1); err == nil {
			err = check_range("b", c.B, 0, 1)
		}
	}
	return
}

// XYBri is a color as sent to a lighting device: the CIE 1931 chromaticity
// X, Y and the brightness (luminance) Bri.
type XYBri struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Bri float64 `json:"bri"`
}

func (c XYBri) String() string {
	return fmt.Sprintf("XYBri{%.4f %.4f %.4f}", c.X, c.Y, c.Bri)
}

// XY returns the chromaticity of c.
func (c XYBri) XY() gamut.Point {
	return gamut.Point{X: c.X, Y: c.Y}
}

// Validate checks that X is in [0, 0.8] and Y and Bri are in [0, 1].
func (c XYBri) Validate() (err error) {
	if err = check_range("x", c.X, 0, 0.8); err == nil {
		if err = check_range("y", c.Y, 0, 1); err == nil {
			err = check_range("bri", c.Bri, 0, 1)
		}
	}
	return
}
