package patch

// applyExclusions cuts the excluded zones out of each patch's coverage.
// Rectangle against rectangle uses axis-aligned bounding-box intersection.
// Arc and annular patches have no overlap test yet: they are treated as
// non-overlapping, which can overstate coverage, so the plan records the
// limitation instead of failing silently.
func (g *generator) applyExclusions() {
	if len(g.in.ExcludedZones) == 0 {
		return
	}

	curvedSeen := false
	for i := range g.plan.Patches {
		p := &g.plan.Patches[i]
		if p.Shape != ShapeRect {
			curvedSeen = true
			continue
		}
		area := p.Rect.Area()
		if area <= 0 {
			continue
		}
		var excluded float64
		for _, zone := range g.in.ExcludedZones {
			if cut, ok := p.Rect.Intersection(zone); ok {
				excluded += cut.Area()
			}
		}
		if excluded > 0 {
			if excluded > area {
				excluded = area
			}
			p.Coverage = 100 * (area - excluded) / area
		}
	}

	if curvedSeen {
		g.plan.Limitations = append(g.plan.Limitations,
			"exclusion-zone overlap is only checked for rectangular patches; arc and annular patches assume no overlap, so their coverage may be overstated near excluded zones")
	}
}
