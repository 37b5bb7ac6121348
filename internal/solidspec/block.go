package solidspec

import (
	"fmt"

	"ut-planner/internal/calblock"
)

// ForBlock builds the solid spec for a recommended calibration block so the
// drawing/export layer can render it. Flat blocks become a base box with
// reflector holes drilled from the found surface; SDHs run through the block
// side; cylindrical blocks become an extruded ring. IIW patterns are stocked
// purchased blocks with no drawing to generate.
func ForBlock(id string, spec calblock.Spec) (SolidSpec, error) {
	switch spec.Geometry.Kind {
	case "flat":
		return flatBlockSpec(id, spec), nil
	case "cylindrical":
		return cylinderBlockSpec(id, spec)
	case "iiw":
		return SolidSpec{}, fmt.Errorf("IIW pattern blocks are purchased to ISO 2400/7963, not drawn")
	default:
		return SolidSpec{}, fmt.Errorf("no solid template for block geometry %q", spec.Geometry.Kind)
	}
}

func flatBlockSpec(id string, spec calblock.Spec) SolidSpec {
	g := spec.Geometry.Flat
	ops := []Op{BaseBox{
		Width:  g.Length,
		Depth:  g.Width,
		Height: g.Thickness,
	}}

	// Space reflectors evenly along the block length.
	n := len(spec.Reflectors)
	for i, r := range spec.Reflectors {
		x := g.Length * float64(i+1) / float64(n+1)
		switch r.Type {
		case calblock.ReflectorSDH:
			// SDH runs through the block width at the reflector depth,
			// measured down from the scan surface.
			ops = append(ops, ThroughHole{
				Radius: r.Diameter / 2,
				Depth:  g.Width,
				Axis:   AxisY,
				Center: [3]float64{x, g.Width / 2, g.Thickness - r.Depth},
			})
		case calblock.ReflectorNotch:
			ops = append(ops, CutBox{
				Width:  r.Width,
				Depth:  r.Length,
				Height: r.Depth,
				Center: [3]float64{x, g.Width / 2, r.Depth / 2},
			})
		default: // FBH drilled up from the back face, bottom at the depth
			ops = append(ops, ThroughHole{
				Radius: r.Diameter / 2,
				Depth:  g.Thickness - r.Depth,
				Axis:   AxisZ,
				Center: [3]float64{x, g.Width / 2, (g.Thickness - r.Depth) / 2},
			})
		}
	}
	return SolidSpec{ID: id, Operations: ops}
}

func cylinderBlockSpec(id string, spec calblock.Spec) (SolidSpec, error) {
	g := spec.Geometry.Cylindrical
	if g.OuterDiameter <= 0 {
		return SolidSpec{}, fmt.Errorf("cylindrical block %q has no outer diameter", id)
	}
	ops := []Op{SketchCircle{Radius: g.OuterDiameter / 2}}
	if g.InnerDiameter > 0 {
		ops = append(ops, SketchCircle{Radius: g.InnerDiameter / 2, IsHole: true})
	}
	ops = append(ops, Extrude{Length: g.Length})

	for i, r := range spec.Reflectors {
		if r.Type != calblock.ReflectorNotch {
			continue
		}
		z := g.Length * float64(i+1) / float64(len(spec.Reflectors)+1)
		// Notches cut radially into the wall at alternating surfaces.
		radius := g.OuterDiameter/2 - r.Depth/2
		if g.InnerDiameter > 0 && i%2 == 1 {
			radius = g.InnerDiameter/2 + r.Depth/2
		}
		ops = append(ops, CutBox{
			Width:  r.Width,
			Depth:  r.Length,
			Height: r.Depth,
			Center: [3]float64{radius, 0, z},
		})
	}
	return SolidSpec{ID: id, Operations: ops}, nil
}
