package physics

import (
	"fmt"

	"ut-planner/pkg/units"
)

// Code identifies the governing inspection code for reflector sizing.
type Code string

const (
	CodeAWS      Code = "aws"      // AWS D1.1
	CodeASME     Code = "asme"     // ASME Section V
	CodeEN1714   Code = "en1714"   // EN 1714
	CodeISO17640 Code = "iso17640" // ISO 17640 (supersedes EN 1714)
	CodeMIL2154  Code = "mil2154"  // MIL-STD-2154
)

// ParseCode maps a free-form code string onto the enumeration, defaulting to
// AWS for structural work when unrecognized.
func ParseCode(s string) Code {
	switch Code(s) {
	case CodeASME, CodeEN1714, CodeISO17640, CodeMIL2154, CodeAWS:
		return Code(s)
	}
	return CodeAWS
}

// SDHRecommendation is a side-drilled hole size mandated by a code for a
// thickness. Dimensions in mm.
type SDHRecommendation struct {
	Diameter      float64 `json:"diameter"`
	Tolerance     float64 `json:"tolerance"`
	Justification string  `json:"justification"`
}

// NotchRecommendation is a reference notch size mandated by a code for a
// wall thickness. Dimensions in mm.
type NotchRecommendation struct {
	Depth         float64 `json:"depth"`
	Width         float64 `json:"width"`
	Length        float64 `json:"length"`
	Tolerance     float64 `json:"tolerance"`
	Justification string  `json:"justification"`
}

// sdhBand is one row of a code's published SDH table. MaxThickness in mm;
// the last band of each table has MaxThickness 0 meaning unbounded.
type sdhBand struct {
	maxThickness float64
	diameter     float64
	label        string // thickness band as the code states it
}

// Published SDH diameters per code. These are lookup tables, not formulas;
// values must match the standard text.
var sdhTables = map[Code][]sdhBand{
	CodeAWS: {
		{units.InchesToMM(2), 1.5, "T <= 2 in"},
		{0, 2.0, "T > 2 in"},
	},
	CodeASME: {
		{units.InchesToMM(1), 2.4, "T <= 1 in (3/32 in SDH)"},
		{units.InchesToMM(2), 3.2, "1 in < T <= 2 in (1/8 in SDH)"},
		{units.InchesToMM(4), 4.8, "2 in < T <= 4 in (3/16 in SDH)"},
		{0, 6.4, "T > 4 in (1/4 in SDH)"},
	},
	CodeEN1714: {
		{15, 1.5, "T <= 15 mm"},
		{20, 2.0, "15 mm < T <= 20 mm"},
		{40, 2.5, "20 mm < T <= 40 mm"},
		{60, 3.0, "40 mm < T <= 60 mm"},
		{0, 4.0, "T > 60 mm"},
	},
	CodeISO17640: {
		{15, 1.5, "T <= 15 mm"},
		{20, 2.0, "15 mm < T <= 20 mm"},
		{40, 2.5, "20 mm < T <= 40 mm"},
		{60, 3.0, "40 mm < T <= 60 mm"},
		{0, 4.0, "T > 60 mm"},
	},
	CodeMIL2154: {
		{units.InchesToMM(1), 1.2, "T <= 1 in"},
		{units.InchesToMM(3), 2.0, "1 in < T <= 3 in"},
		{0, 3.0, "T > 3 in"},
	},
}

// codeTitle maps a code to the designation cited in justifications.
var codeTitle = map[Code]string{
	CodeAWS:      "AWS D1.1",
	CodeASME:     "ASME Section V Art. 4",
	CodeEN1714:   "EN 1714",
	CodeISO17640: "ISO 17640",
	CodeMIL2154:  "MIL-STD-2154",
}

// RecommendedSDH returns the side-drilled-hole diameter the code mandates for
// the given thickness (mm), with the thickness band cited in the
// justification.
func RecommendedSDH(thickness float64, code Code) SDHRecommendation {
	table, ok := sdhTables[code]
	if !ok {
		table = sdhTables[CodeAWS]
		code = CodeAWS
	}
	for _, band := range table {
		if band.maxThickness == 0 || thickness <= band.maxThickness {
			return SDHRecommendation{
				Diameter:  band.diameter,
				Tolerance: 0.1,
				Justification: fmt.Sprintf("%s specifies a %.1f mm SDH for %s (part thickness %.1f mm)",
					codeTitle[code], band.diameter, band.label, thickness),
			}
		}
	}
	// Unreachable: every table ends with an unbounded band.
	return SDHRecommendation{}
}

// RecommendedNotch returns the reference-notch dimensions the code mandates
// for a wall thickness (mm). Notch depths are a percentage of wall for the
// US codes and fixed steps for the EN/ISO codes. The depth never exceeds
// the wall: on walls thinner than the code minimum it is capped, since a
// reflector cannot sit outside [0, thickness].
func RecommendedNotch(thickness float64, code Code) NotchRecommendation {
	title := codeTitle[code]
	var n NotchRecommendation
	switch code {
	case CodeEN1714, CodeISO17640:
		depth := 2.0
		label := "T > 40 mm"
		switch {
		case thickness <= 20:
			depth, label = 1.0, "T <= 20 mm"
		case thickness <= 40:
			depth, label = 1.5, "20 mm < T <= 40 mm"
		}
		n = NotchRecommendation{
			Depth:     depth,
			Width:     1.0,
			Length:    25.0,
			Tolerance: 0.1,
			Justification: fmt.Sprintf("%s rectangular notch %.1f mm deep for %s (wall %.1f mm)",
				title, depth, label, thickness),
		}
	case CodeMIL2154:
		depth := clamp(0.05*thickness, 0.25, 1.5)
		n = NotchRecommendation{
			Depth:     depth,
			Width:     0.8,
			Length:    19.0,
			Tolerance: 0.05,
			Justification: fmt.Sprintf("%s notch at 5%% of wall, limited to 0.25-1.5 mm (wall %.1f mm gives %.2f mm)",
				title, thickness, depth),
		}
	default: // AWS, ASME: 10% of wall, limited to 0.5-6.35 mm
		depth := clamp(0.1*thickness, 0.5, 6.35)
		n = NotchRecommendation{
			Depth:     depth,
			Width:     6.35,
			Length:    25.4,
			Tolerance: 0.13,
			Justification: fmt.Sprintf("%s notch at 10%% of wall, limited to 0.5-6.35 mm (wall %.1f mm gives %.2f mm)",
				title, thickness, depth),
		}
	}
	if thickness > 0 && n.Depth > thickness {
		n.Depth = thickness
		n.Justification += fmt.Sprintf("; code minimum exceeds the wall, depth capped at %.2f mm", thickness)
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
