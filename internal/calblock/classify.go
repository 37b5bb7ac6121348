package calblock

import (
	"strings"
)

// classMembers maps normalized part-type keywords to geometry classes. The
// table is checked for whole-string matches first, then substring matches in
// declaration order, so more specific entries come first.
var classMembers = []struct {
	keyword string
	class   GeometryClass
}{
	{"thin wall tube", ClassThinWallTubular},
	{"thin-wall tube", ClassThinWallTubular},
	{"tube", ClassThinWallTubular}, // wall ratio refines thin vs thick below
	{"tubing", ClassThinWallTubular},
	{"pipe", ClassThinWallTubular},
	{"cylinder", ClassThinWallTubular},
	{"hex", ClassHex},
	{"round bar", ClassSolidRound},
	{"bar", ClassSolidRound},
	{"billet", ClassSolidRound},
	{"shaft", ClassSolidRound},
	{"rod", ClassSolidRound},
	{"disk", ClassDisk},
	{"disc", ClassDisk},
	{"rotor", ClassDisk},
	{"forging", ClassForging},
	{"ring", ClassForging},
	{"plate", ClassFlat},
	{"sheet", ClassFlat},
	{"slab", ClassFlat},
	{"weld", ClassFlat},
	{"flat", ClassFlat},
	{"blisk", ClassComplex},
	{"impeller", ClassComplex},
	{"casting", ClassComplex},
	{"machined part", ClassComplex},
}

// thinWallRatio is the wall-to-OD ratio below which a tubular part counts as
// thin-walled.
const thinWallRatio = 0.2

// ClassifyGeometry maps a part type description onto a geometry class.
// Tubular parts are split into thin/thick wall by the wall-to-OD ratio when
// both dimensions are known. Unrecognized descriptions classify as complex:
// the selector degrades to a custom block there instead of refusing.
func ClassifyGeometry(partType string, thickness float64, outerDiameter *float64) GeometryClass {
	key := strings.ToLower(strings.TrimSpace(partType))
	if key == "" {
		return ClassFlat
	}

	class := ClassComplex
	for _, m := range classMembers {
		if key == m.keyword {
			class = m.class
			break
		}
	}
	if class == ClassComplex {
		for _, m := range classMembers {
			if strings.Contains(key, m.keyword) {
				class = m.class
				break
			}
		}
	}

	if class == ClassThinWallTubular && outerDiameter != nil && *outerDiameter > 0 && thickness > 0 {
		if thickness / *outerDiameter > thinWallRatio {
			return ClassThickWallTubular
		}
	}
	return class
}

// isRound reports whether the class has a curved scan surface whose
// curvature matters for coupling and block match.
func isRound(c GeometryClass) bool {
	switch c {
	case ClassSolidRound, ClassDisk, ClassThinWallTubular, ClassThickWallTubular:
		return true
	}
	return false
}
