package calblock

import (
	"ut-planner/internal/material"
)

const (
	confidenceStart = 95
	confidenceFloor = 50
)

// penalty is one step of the confidence scoring: a named predicate and the
// points it costs. Scoring is an ordered list applied to a running total
// with a floor, so each deduction is auditable in isolation.
type penalty struct {
	name    string
	points  int
	applies func(ctx scoreContext) bool
}

type scoreContext struct {
	mat       material.Material
	thickness float64
	geometry  GeometryClass
	category  Category
}

var penalties = []penalty{
	{
		name:    "custom material",
		points:  15,
		applies: func(ctx scoreContext) bool { return ctx.mat == material.Custom },
	},
	{
		name:    "austenitic stainless",
		points:  5,
		applies: func(ctx scoreContext) bool { return material.IsAustenitic(ctx.mat) },
	},
	{
		name:   "thickness outside 6.35-200 mm",
		points: 10,
		applies: func(ctx scoreContext) bool {
			return ctx.thickness < 6.35 || ctx.thickness > 200
		},
	},
	{
		name:    "complex geometry",
		points:  20,
		applies: func(ctx scoreContext) bool { return ctx.geometry == ClassComplex },
	},
	{
		name:    "custom block category",
		points:  15,
		applies: func(ctx scoreContext) bool { return ctx.category == CustomBlock },
	},
}

// scoreConfidence applies the penalty list from the starting score down to
// the floor and reports which penalties fired.
func scoreConfidence(ctx scoreContext) (score int, applied []string) {
	score = confidenceStart
	for _, p := range penalties {
		if p.applies(ctx) {
			score -= p.points
			applied = append(applied, p.name)
		}
	}
	if score < confidenceFloor {
		score = confidenceFloor
	}
	return score, applied
}
