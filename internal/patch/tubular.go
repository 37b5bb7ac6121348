package patch

import (
	"fmt"
	"math"

	"ut-planner/pkg/geometry"
)

const (
	// Minimum bore for probe access on the inner surface.
	idAccessThreshold = 20.0
	// Wall thickness above which the end faces carry enough volume to need
	// their own coverage.
	endFaceWallThreshold = 5.0
	// Radial width of one annular end-face zone.
	endFaceZoneWidth = 50.0
)

// generateTubular plans the OD surface like a cylinder, adds ID patches when
// the bore is accessible, and annular end-face zones for heavy walls.
func (g *generator) generateTubular() {
	od := g.in.Dimensions.OuterDiameter
	id := g.in.Dimensions.InnerDiameter
	if od <= 0 {
		g.plan.Warnings = append(g.plan.Warnings, "outer diameter missing for tubular part, planning as flat")
		g.generateFlat()
		return
	}

	g.tileCylinder(od/2, "od")

	if id > idAccessThreshold {
		g.tileCylinder(id/2, "id")
	} else if id > 0 {
		g.plan.Warnings = append(g.plan.Warnings, fmt.Sprintf(
			"inner diameter %.1f mm is below the %.0f mm access threshold; ID surface not scannable, coverage relies on OD scanning", id, idAccessThreshold))
	}

	wall := g.in.Dimensions.WallThickness
	if wall <= 0 && id > 0 {
		wall = (od - id) / 2
	}
	if wall > endFaceWallThreshold {
		g.tileEndFaces(od/2, id/2)
	}
}

// tileEndFaces divides each annular end face into radial zones of fixed
// width, one radial-scan patch per zone per face.
func (g *generator) tileEndFaces(outerR, innerR float64) {
	nZones := int(math.Ceil((outerR - innerR) / endFaceZoneWidth))
	if nZones < 1 {
		nZones = 1
	}
	zoneWidth := (outerR - innerR) / float64(nZones)

	for _, face := range []string{"end_a", "end_b"} {
		for iz := 0; iz < nZones; iz++ {
			ann := geometry.Annulus{
				InnerRadius: innerR + float64(iz)*zoneWidth,
				OuterRadius: innerR + float64(iz+1)*zoneWidth,
				StartAngle:  0,
				EndAngle:    360,
			}
			// One revolution per index step across the zone width.
			passes := g.rasterPasses(zoneWidth)
			meanCirc := math.Pi * (ann.InnerRadius + ann.OuterRadius)
			g.add(Patch{
				Shape:     ShapeAnnular,
				Annular:   &ann,
				Strategy:  "radial",
				Direction: "R",
				Surface:   face,
				Passes:    passes,
				Time:      g.rasterTime(meanCirc, passes),
			})
		}
	}
}
