package patch

import (
	"math"

	"ut-planner/pkg/geometry"
)

// generateFlat tiles a length x width face into a grid of rectangular
// patches bounded by the maximum patch size.
func (g *generator) generateFlat() {
	length := zeroDefault(g.in.Dimensions.Length, 100)
	width := zeroDefault(g.in.Dimensions.Width, 100)

	nx := int(math.Ceil(length / g.maxPatchSize))
	ny := int(math.Ceil(width / g.maxPatchSize))
	pw := length / float64(nx)
	ph := width / float64(ny)

	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			r := geometry.NewRect(float64(ix)*pw, float64(iy)*ph, pw, ph)
			passes := g.rasterPasses(ph)
			g.add(Patch{
				Shape:     ShapeRect,
				Rect:      &r,
				Strategy:  "raster",
				Direction: "X",
				Surface:   "top",
				Passes:    passes,
				Time:      g.rasterTime(pw, passes),
			})
		}
	}
}

// rasterPasses is the pass count to index across a patch of the given
// height: the indexed span loses the edge margin at both sides, and the
// final edge always gets its own pass.
func (g *generator) rasterPasses(height float64) int {
	span := height - 2*g.edgeMargin
	if span <= 0 || g.scanIndex <= 0 {
		return 1
	}
	return int(math.Ceil(span/g.scanIndex)) + 1
}

// rasterTime estimates scan time: one traverse of the patch width per pass,
// plus a fixed per-pass turnaround.
func (g *generator) rasterTime(width float64, passes int) float64 {
	const turnaround = 0.5 // seconds per pass
	if g.scanSpeed <= 0 {
		return 0
	}
	return float64(passes) * (width/g.scanSpeed + turnaround)
}
