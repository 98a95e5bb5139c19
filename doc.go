/*
Package xybri converts colors between sRGB and the CIE xyY (chromaticity
plus brightness) representation used by smart lighting devices, and maps
chromaticities onto the color gamut a given device model can reproduce.

All functions are pure and safe for concurrent use. Chromaticity geometry
and the table of device gamuts live in the gamut sub-package.
*/
package xybri

import "fmt"

type XYBriVersion struct {
	Major, Minor, Patch uint
}

func (v XYBriVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v XYBriVersion) Equal(o XYBriVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v XYBriVersion) After(o XYBriVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v XYBriVersion) Before(o XYBriVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = XYBriVersion{1, 0, 0}
