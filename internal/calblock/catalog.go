package calblock

import (
	"ut-planner/internal/physics"
)

// CatalogEntry describes one stocked angle-beam block family and when it
// applies. Thickness ranges in mm; MaxThickness 0 means unbounded.
type CatalogEntry struct {
	Category     Category
	StandardRef  string
	MinThickness float64
	MaxThickness float64
	Angles       []float64
	// PreferredBy lists the codes whose stated preference order puts this
	// entry first. Entries without a preference still match by range.
	PreferredBy []physics.Code
	// CurvatureMin/Max bound the part OD a curved block can couple to.
	// Zero on both means the block is for flat scan surfaces.
	CurvatureMin float64
	CurvatureMax float64
}

// angleBeamCatalog is the stocked block list, in selection order. The
// catalog is fixed at init and read-only afterwards.
var angleBeamCatalog = []CatalogEntry{
	{
		Category:     DSC,
		StandardRef:  "AWS D1.1 / ASTM E164 (DSC)",
		MinThickness: 6.35,
		MaxThickness: 100,
		Angles:       []float64{45, 60, 70},
		PreferredBy:  []physics.Code{physics.CodeAWS},
	},
	{
		Category:     ASMEBasic,
		StandardRef:  "ASME Section V Art. 4 basic block",
		MinThickness: 6.35,
		MaxThickness: 200,
		Angles:       []float64{45, 60, 70},
		PreferredBy:  []physics.Code{physics.CodeASME},
	},
	{
		Category:     IIWV1,
		StandardRef:  "ISO 2400 (IIW type 1)",
		MinThickness: 6.35,
		MaxThickness: 200,
		Angles:       []float64{35, 45, 60, 70},
		PreferredBy:  []physics.Code{physics.CodeEN1714, physics.CodeISO17640, physics.CodeMIL2154},
	},
	{
		Category:     IIWV2,
		StandardRef:  "ISO 7963 (IIW type 2)",
		MinThickness: 6.35,
		MaxThickness: 25,
		Angles:       []float64{45, 60, 70},
	},
	{
		Category:     AWSResolution,
		StandardRef:  "AWS D1.1 RC resolution block",
		MinThickness: 6.35,
		MaxThickness: 50,
		Angles:       []float64{45, 70},
	},
	// Thickness-banded custom plate blocks for heavy sections past the
	// standard patterns.
	{
		Category:     CustomBlock,
		StandardRef:  "custom plate block, T-matched",
		MinThickness: 200,
		MaxThickness: 400,
		Angles:       []float64{45, 60},
	},
}

// curvedShearCatalog lists the curved shear-wave blocks for round parts.
// Per ASTM E164 a curved block couples to parts from 0.9x to 1.5x its own
// diameter, which is what the curvature bounds encode.
var curvedShearCatalog = []CatalogEntry{
	{
		Category:     CylinderNotched,
		StandardRef:  "ASTM E213 notched tube standard",
		MinThickness: 1.5,
		MaxThickness: 25,
		Angles:       []float64{45},
		CurvatureMin: 12,
		CurvatureMax: 170,
	},
	{
		Category:     CurvedFBH,
		StandardRef:  "ASTM E164 curved wedge block",
		MinThickness: 6.35,
		MaxThickness: 75,
		Angles:       []float64{45, 60, 70},
		CurvatureMin: 50,
		CurvatureMax: 500,
	},
}

// matches reports whether the entry covers the thickness and every requested
// angle.
func (e CatalogEntry) matches(thickness float64, angles []float64) bool {
	if thickness < e.MinThickness {
		return false
	}
	if e.MaxThickness > 0 && thickness > e.MaxThickness {
		return false
	}
	for _, a := range angles {
		if !containsAngle(e.Angles, a) {
			return false
		}
	}
	return true
}

// matchesCurvature reports whether the entry's curvature range covers an OD.
func (e CatalogEntry) matchesCurvature(od float64) bool {
	if e.CurvatureMin == 0 && e.CurvatureMax == 0 {
		return false
	}
	return od >= e.CurvatureMin && od <= e.CurvatureMax
}

func (e CatalogEntry) preferredBy(code physics.Code) bool {
	for _, c := range e.PreferredBy {
		if c == code {
			return true
		}
	}
	return false
}

func containsAngle(list []float64, a float64) bool {
	const tol = 0.5
	for _, x := range list {
		if a >= x-tol && a <= x+tol {
			return true
		}
	}
	return false
}

// findAngleBeamEntry applies the code preference order: the first
// range-matching entry preferred by the code wins, else the first entry that
// matches on range and angles, else nil.
func findAngleBeamEntry(thickness float64, angles []float64, code physics.Code) *CatalogEntry {
	var fallback *CatalogEntry
	for i := range angleBeamCatalog {
		e := &angleBeamCatalog[i]
		if !e.matches(thickness, angles) {
			continue
		}
		if e.preferredBy(code) {
			return e
		}
		if fallback == nil {
			fallback = e
		}
	}
	return fallback
}

// findCurvedShearEntry returns the first curved block matching wall
// thickness, angles, and part OD, or nil when the geometry-specific match
// fails and the caller must fall back to the generic catalog.
func findCurvedShearEntry(thickness float64, angles []float64, od float64) *CatalogEntry {
	for i := range curvedShearCatalog {
		e := &curvedShearCatalog[i]
		if e.matches(thickness, angles) && e.matchesCurvature(od) {
			return e
		}
	}
	return nil
}
