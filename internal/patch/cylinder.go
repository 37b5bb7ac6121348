package patch

import (
	"math"

	"ut-planner/pkg/geometry"
)

// generateCylindrical tiles an outer cylinder surface into angular sectors
// sized so the arc length stays within the maximum patch size, and axial
// sectors within the same bound. Sector direction labels alternate by
// parity: C (clockwise) and D (counter-clockwise), so adjacent sectors scan
// in opposite senses.
func (g *generator) generateCylindrical() {
	od := g.in.Dimensions.OuterDiameter
	if od <= 0 {
		g.plan.Warnings = append(g.plan.Warnings, "outer diameter missing for cylindrical part, planning as flat")
		g.generateFlat()
		return
	}
	g.tileCylinder(od/2, "od")
}

// tileCylinder emits the sector patches for one cylindrical surface at the
// given radius.
func (g *generator) tileCylinder(radius float64, surface string) {
	length := zeroDefault(g.in.Dimensions.Length, 100)

	circumference := 2 * math.Pi * radius
	nSectors := int(math.Ceil(circumference / g.maxPatchSize))
	if nSectors < 1 {
		nSectors = 1
	}
	span := 360.0 / float64(nSectors)

	nAxial := int(math.Ceil(length / g.maxPatchSize))
	if nAxial < 1 {
		nAxial = 1
	}
	axialLen := length / float64(nAxial)

	for ia := 0; ia < nAxial; ia++ {
		for is := 0; is < nSectors; is++ {
			direction := "C"
			if is%2 == 1 {
				direction = "D"
			}
			arc := geometry.Arc{
				Radius:     radius,
				StartAngle: float64(is) * span,
				EndAngle:   float64(is+1) * span,
				AxialStart: float64(ia) * axialLen,
				AxialEnd:   float64(ia+1) * axialLen,
			}
			passes := g.rasterPasses(axialLen)
			g.add(Patch{
				Shape:     ShapeArc,
				Arc:       &arc,
				Strategy:  "helical",
				Direction: direction,
				Surface:   surface,
				Passes:    passes,
				Time:      g.rasterTime(arc.ArcLength(), passes),
			})
		}
	}
}
