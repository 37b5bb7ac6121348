// Package units provides millimetre/inch conversions.
//
// The planning engine works in millimetres throughout, but most governing
// standards band their lookup tables in inches, so the reference tables in
// internal/physics and internal/calblock convert at the boundary.
package units

const mmPerInch = 25.4

// MMToInches converts millimetres to inches.
func MMToInches(mm float64) float64 {
	return mm / mmPerInch
}

// InchesToMM converts inches to millimetres.
func InchesToMM(in float64) float64 {
	return in * mmPerInch
}
