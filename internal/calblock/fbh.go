package calblock

import (
	"fmt"

	"ut-planner/pkg/units"
)

// fbhNumbers maps an acceptance class to the FBH number (64ths of an inch)
// used for straight-beam distance-amplitude blocks. Tighter classes use
// smaller holes.
var fbhNumbers = map[string]int{
	"AAA": 1,
	"AA":  2,
	"A":   3,
	"B":   5,
	"C":   8,
}

// FBHDiameter returns the flat-bottom-hole diameter (mm) for an acceptance
// class, defaulting to class A when the class is unknown or empty.
func FBHDiameter(acceptanceClass string) (float64, string) {
	n, ok := fbhNumbers[acceptanceClass]
	if !ok {
		n = fbhNumbers["A"]
		acceptanceClass = "A"
	}
	diam := units.InchesToMM(float64(n) / 64.0)
	return diam, fmt.Sprintf("class %s uses a #%d FBH (%.2f mm)", acceptanceClass, n, diam)
}

// fbhReflectorSet builds the standard three-depth FBH set for a
// straight-beam block of the given thickness: holes at T/4, T/2, and 3T/4.
// All depths lie inside (0, T).
func fbhReflectorSet(thickness, diameter float64) []Reflector {
	fractions := []struct {
		f     float64
		label string
	}{
		{0.25, "T/4"},
		{0.50, "T/2"},
		{0.75, "3T/4"},
	}
	out := make([]Reflector, len(fractions))
	for i, fr := range fractions {
		out[i] = Reflector{
			Type:     ReflectorFBH,
			Depth:    fr.f * thickness,
			Diameter: diameter,
			Label:    fr.label,
		}
	}
	return out
}
