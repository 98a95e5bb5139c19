package gamut

import (
	"fmt"
	"maps"
	"slices"
)

var _ = fmt.Print

// Model is a device model identifier as reported by the device, for
// example "LCT001".
type Model string

// Known device models.
const (
	LCT001 Model = "LCT001" // Hue bulb
	LLC006 Model = "LLC006" // LivingColors Bol
	LLC007 Model = "LLC007" // LivingColors Aura
)

// Family is a group of device models sharing one color gamut.
type Family int

// Device families.
const (
	UNKNOWN_FAMILY Family = iota
	HUE_BULB
	LIVING_COLORS
)

var modelFamilies = map[Model]Family{
	LCT001: HUE_BULB,
	LLC006: LIVING_COLORS,
	LLC007: LIVING_COLORS,
}

var familyNames = map[Family]string{
	UNKNOWN_FAMILY: "Unknown",
	HUE_BULB:       "Hue bulb",
	LIVING_COLORS:  "LivingColors",
}

// fullPlane contains every chromaticity, so clamping to it is a no-op.
var fullPlane = Triangle{
	R: Point{1, 0},
	G: Point{0, 1},
	B: Point{0, 0},
}

var familyTriangles = map[Family]Triangle{
	HUE_BULB: {
		R: Point{.675, .322},
		G: Point{.4091, .518},
		B: Point{.167, .04},
	},
	LIVING_COLORS: {
		R: Point{.704, .296},
		G: Point{.2151, .7106},
		B: Point{.138, .08},
	},
}

func (f Family) String() string {
	if ans, ok := familyNames[f]; ok {
		return ans
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Triangle returns the gamut of the family. UNKNOWN_FAMILY, and any value
// that is not a known family, gets a triangle containing the whole
// chromaticity plane.
func (f Family) Triangle() Triangle {
	if ans, ok := familyTriangles[f]; ok {
		return ans
	}
	return fullPlane
}

// FamilyForModel returns UNKNOWN_FAMILY for unrecognised models.
func FamilyForModel(m Model) Family {
	return modelFamilies[m]
}

// TriangleForModel returns the gamut for the device model m. Unrecognised
// models get a triangle containing the whole chromaticity plane so that no
// clamping happens for them.
func TriangleForModel(m Model) Triangle {
	return FamilyForModel(m).Triangle()
}

// ForModel returns the point nearest to p that the device model m can
// reproduce.
func ForModel(p Point, m Model) Point {
	return TriangleForModel(m).Closest(p)
}

// Models returns all recognised device models, sorted.
func Models() []Model {
	return slices.Sorted(maps.Keys(modelFamilies))
}
