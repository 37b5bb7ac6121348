package calblock

import (
	"fmt"
	"strings"

	"ut-planner/internal/material"
	"ut-planner/internal/physics"
)

// SelectBlock maps a planning request to a calibration block recommendation.
// It always returns a usable recommendation: when nothing in the catalog
// fits, the result degrades to a custom block with an explicit warning
// rather than coming back empty.
func SelectBlock(req Request) Recommendation {
	mat := material.Parse(req.Material)
	code := codeFromStandard(req.Standard)
	class := ClassifyGeometry(req.PartType, req.Thickness, req.OuterDiameter)

	var rec Recommendation
	if req.BeamType == AngleBeam || len(req.Angles) > 0 {
		rec = selectAngleBeam(req, mat, code, class)
	} else {
		rec = selectStraightBeam(req, mat, code, class)
	}

	rec.Geometry = class
	score, applied := scoreConfidence(scoreContext{
		mat:       mat,
		thickness: req.Thickness,
		geometry:  class,
		category:  rec.Primary.Category,
	})
	rec.Confidence = score
	for _, name := range applied {
		rec.Notes = append(rec.Notes, "confidence reduced: "+name)
	}
	for _, r := range rec.Primary.Reflectors {
		if r.Type == ReflectorNotch && req.Thickness > 0 && r.Depth >= req.Thickness {
			rec.Warnings = append(rec.Warnings, fmt.Sprintf(
				"code minimum notch depth meets or exceeds the %.2f mm wall; notch depth capped at the wall", req.Thickness))
			break
		}
	}
	return rec
}

// codeFromStandard maps a governing-standard designation onto the reflector
// sizing code.
func codeFromStandard(standard string) physics.Code {
	s := strings.ToLower(standard)
	switch {
	case strings.Contains(s, "asme"):
		return physics.CodeASME
	case strings.Contains(s, "17640") || strings.Contains(s, "iso"):
		return physics.CodeISO17640
	case strings.Contains(s, "1714") || strings.Contains(s, "en "):
		return physics.CodeEN1714
	case strings.Contains(s, "mil") || strings.Contains(s, "2154"):
		return physics.CodeMIL2154
	default:
		return physics.ParseCode(s)
	}
}

// selectStraightBeam dispatches by geometry class to a fixed block category.
// Each branch cites the controlling rule in the reasoning.
func selectStraightBeam(req Request, mat material.Material, code physics.Code, class GeometryClass) Recommendation {
	rec := Recommendation{}
	fbhDiam, fbhWhy := FBHDiameter(req.AcceptanceClass)
	rec.Notes = append(rec.Notes, fbhWhy)

	category := FlatFBH
	switch class {
	case ClassThinWallTubular:
		if hasCircumferentialScan(req.ScanDirections) {
			category = CylinderNotched
			rec.Reasoning = append(rec.Reasoning,
				"thin-wall tubular part with circumferential scanning: notched cylinder block is mandatory for shear-wave reference")
		} else {
			category = CylinderFBH
			rec.Reasoning = append(rec.Reasoning,
				"thin-wall tubular part: FBH cylinder block matching the part curvature")
		}
	case ClassThickWallTubular:
		category = CylinderFBH
		rec.Reasoning = append(rec.Reasoning,
			"thick-wall tubular part: FBH cylinder block matching the part curvature")
	case ClassSolidRound:
		if req.OuterDiameter != nil && *req.OuterDiameter < 50.8 {
			category = CurvedFBH
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
				"solid round with diameter %.1f mm under 50.8 mm (2 in): curvature-matched FBH block required", *req.OuterDiameter))
		} else {
			category = FlatFBH
			rec.Reasoning = append(rec.Reasoning,
				"solid round at or above 50.8 mm (2 in) diameter: flat FBH block acceptable")
		}
	case ClassDisk:
		rec.Reasoning = append(rec.Reasoning, "disk scanned on the flat face: flat FBH block")
	case ClassForging:
		rec.Reasoning = append(rec.Reasoning, "forging: flat FBH block in an equivalent forging grade")
		rec.Notes = append(rec.Notes, "block material must match the forging specification, not just the alloy family")
	case ClassHex:
		rec.Reasoning = append(rec.Reasoning, "hex bar scanned across flats: flat FBH block")
	case ClassComplex:
		category = CustomBlock
		rec.Reasoning = append(rec.Reasoning, "complex geometry: no standard block applies, custom block required")
		rec.Warnings = append(rec.Warnings, "complex geometry requires Level III review of the custom block design")
	default:
		rec.Reasoning = append(rec.Reasoning, "flat product: flat FBH block")
	}

	rec.Primary = buildStraightSpec(req, mat, code, category, fbhDiam)
	rec.Alternatives = straightAlternatives(category)
	return rec
}

// selectAngleBeam first attempts a geometry-specific curved shear-wave block
// for round parts with known OD; if none qualifies it falls back to the
// generic angle-beam catalog and says so in the reasoning rather than
// substituting silently.
func selectAngleBeam(req Request, mat material.Material, code physics.Code, class GeometryClass) Recommendation {
	rec := Recommendation{}
	angles := req.Angles
	if len(angles) == 0 {
		angles = []float64{45}
		rec.Notes = append(rec.Notes, "no beam angle given, assuming 45°")
	}

	var entry *CatalogEntry
	if isRound(class) && req.OuterDiameter != nil && *req.OuterDiameter > 0 && req.Thickness > 0 {
		entry = findCurvedShearEntry(req.Thickness, angles, *req.OuterDiameter)
		if entry != nil {
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
				"round part OD %.1f mm: geometry-specific %s matches wall and curvature", *req.OuterDiameter, entry.StandardRef))
		} else {
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
				"no curved shear-wave block covers OD %.1f mm at wall %.1f mm; falling back to generic angle-beam selection",
				*req.OuterDiameter, req.Thickness))
		}
	}

	if entry == nil {
		entry = findAngleBeamEntry(req.Thickness, angles, code)
	}

	var category Category
	var standardRef string
	if entry == nil {
		category = CustomBlock
		standardRef = "custom block, no catalog match"
		rec.Warnings = append(rec.Warnings, fmt.Sprintf(
			"no catalog block covers thickness %.1f mm at angles %v: custom block required", req.Thickness, angles))
		rec.Reasoning = append(rec.Reasoning, "custom angle-beam block sized to the part thickness")
	} else {
		category = entry.Category
		standardRef = entry.StandardRef
		if entry.preferredBy(code) {
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
				"%s is the stated preference for code %s at %.1f mm", category, code, req.Thickness))
		} else {
			rec.Reasoning = append(rec.Reasoning, fmt.Sprintf(
				"%s covers thickness %.1f mm and angles %v", category, req.Thickness, angles))
		}
	}

	rec.Primary = buildAngleSpec(req, mat, code, category, standardRef, angles)
	rec.Alternatives = angleAlternatives(req.Thickness, angles, category)

	for _, a := range angles {
		rec.AngleData = append(rec.AngleData, AngleData{
			Angle:       a,
			Path:        physics.BeamPath(req.Thickness, a),
			SDH:         physics.RecommendedSDH(req.Thickness, code),
			Notch:       physics.RecommendedNotch(req.Thickness, code),
			MetalTravel: MetalTravel(req.Thickness),
			Wedge:       material.WedgeForAngle(a, req.Frequency),
		})
	}
	return rec
}

func buildStraightSpec(req Request, mat material.Material, code physics.Code, category Category, fbhDiam float64) Spec {
	spec := Spec{
		Category:      category,
		StandardRef:   string(code),
		BeamTypes:     []BeamType{StraightBeam},
		Material:      mat,
		MaterialMatch: mat != material.CarbonSteel,
	}

	switch category {
	case CylinderFBH, CylinderNotched:
		geom := &CylGeometry{Length: 150}
		if req.OuterDiameter != nil {
			geom.OuterDiameter = *req.OuterDiameter
		}
		if req.InnerDiameter != nil {
			geom.InnerDiameter = *req.InnerDiameter
		}
		spec.Geometry = BlockGeometry{Kind: "cylindrical", Cylindrical: geom}
	default:
		spec.Geometry = BlockGeometry{Kind: "flat", Flat: &FlatGeometry{
			Length:    maxf(75, 3*req.Thickness),
			Width:     maxf(50, 2*req.Thickness),
			Thickness: req.Thickness,
		}}
	}

	if category == CylinderNotched {
		n := physics.RecommendedNotch(req.Thickness, code)
		for _, label := range []string{"OD axial", "OD circumferential", "ID axial", "ID circumferential"} {
			spec.Reflectors = append(spec.Reflectors, Reflector{
				Type:   ReflectorNotch,
				Depth:  n.Depth,
				Length: n.Length,
				Width:  n.Width,
				Label:  label,
			})
		}
	} else {
		spec.Reflectors = fbhReflectorSet(req.Thickness, fbhDiam)
	}
	return spec
}

func buildAngleSpec(req Request, mat material.Material, code physics.Code, category Category, standardRef string, angles []float64) Spec {
	spec := Spec{
		Category:      category,
		StandardRef:   standardRef,
		BeamTypes:     []BeamType{AngleBeam},
		Angles:        angles,
		Material:      mat,
		MaterialMatch: mat != material.CarbonSteel,
	}

	switch category {
	case IIWV1:
		spec.Geometry = BlockGeometry{Kind: "iiw", IIW: &IIWGeometry{Variant: "V1"}}
	case IIWV2:
		spec.Geometry = BlockGeometry{Kind: "iiw", IIW: &IIWGeometry{Variant: "V2"}}
	case CylinderNotched, CurvedFBH:
		geom := &CylGeometry{Length: 150}
		if req.OuterDiameter != nil {
			geom.OuterDiameter = *req.OuterDiameter
		}
		if req.InnerDiameter != nil {
			geom.InnerDiameter = *req.InnerDiameter
		}
		spec.Geometry = BlockGeometry{Kind: "cylindrical", Cylindrical: geom}
	default:
		spec.Geometry = BlockGeometry{Kind: "flat", Flat: &FlatGeometry{
			Length:    maxf(150, 4*req.Thickness),
			Width:     maxf(50, 2*req.Thickness),
			Thickness: req.Thickness,
		}}
	}

	sdh := physics.RecommendedSDH(req.Thickness, code)
	if category == CylinderNotched {
		n := physics.RecommendedNotch(req.Thickness, code)
		spec.Reflectors = append(spec.Reflectors,
			Reflector{Type: ReflectorNotch, Depth: n.Depth, Length: n.Length, Width: n.Width, Label: "OD axial"},
			Reflector{Type: ReflectorNotch, Depth: n.Depth, Length: n.Length, Width: n.Width, Label: "ID axial"},
		)
	} else {
		spec.Reflectors = append(spec.Reflectors, Reflector{
			Type:     ReflectorSDH,
			Depth:    req.Thickness / 2,
			Diameter: sdh.Diameter,
			Label:    "T/2",
		})
	}
	return spec
}

// straightAlternatives returns the categories worth proposing next to a
// straight-beam primary.
func straightAlternatives(primary Category) []Category {
	switch primary {
	case FlatFBH:
		return []Category{CurvedFBH}
	case CurvedFBH:
		return []Category{FlatFBH, CylinderFBH}
	case CylinderFBH:
		return []Category{CylinderNotched}
	case CylinderNotched:
		return []Category{CylinderFBH}
	case CustomBlock:
		return []Category{FlatFBH}
	}
	return nil
}

// angleAlternatives lists the other catalog entries that also match.
func angleAlternatives(thickness float64, angles []float64, primary Category) []Category {
	var out []Category
	for _, e := range angleBeamCatalog {
		if e.Category != primary && e.matches(thickness, angles) {
			out = append(out, e.Category)
		}
	}
	return out
}

func hasCircumferentialScan(directions []string) bool {
	for _, d := range directions {
		d = strings.ToLower(d)
		if strings.Contains(d, "circ") {
			return true
		}
	}
	return false
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
