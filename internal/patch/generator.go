package patch

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"ut-planner/internal/oemrules"
)

// Generation defaults applied when the request leaves a field zero.
const (
	defaultCoverage     = 100.0
	defaultOverlap      = 10.0
	defaultMaxPatchSize = 150.0
	defaultScanSpeed    = 100.0
	defaultPRF          = 1000.0
)

// geomKind is the generator's shape classification, deliberately separate
// from the selector's finer part classes.
type geomKind int

const (
	kindFlat geomKind = iota
	kindCylindrical
	kindTubular
	kindComplex
)

// geomMembers maps part geometry keywords to tiling kinds, checked as
// substrings in order.
var geomMembers = []struct {
	keyword string
	kind    geomKind
}{
	{"tube", kindTubular},
	{"tubular", kindTubular},
	{"pipe", kindTubular},
	{"cylind", kindCylindrical},
	{"shaft", kindCylindrical},
	{"round", kindCylindrical},
	{"bar", kindCylindrical},
	{"flat", kindFlat},
	{"plate", kindFlat},
	{"sheet", kindFlat},
	{"weld", kindFlat},
	{"disk", kindFlat},
	{"disc", kindFlat},
}

func classifyGeometry(partGeometry string) geomKind {
	key := strings.ToLower(strings.TrimSpace(partGeometry))
	for _, m := range geomMembers {
		if strings.Contains(key, m.keyword) {
			return m.kind
		}
	}
	return kindComplex
}

// Generate decomposes the part surface into a validated patch plan. It
// always returns a plan for operator review; degraded inputs default rather
// than abort.
func Generate(in Input) *Plan {
	plan := &Plan{
		ID:     uuid.NewString(),
		Vendor: in.Vendor,
	}

	cov := oemrules.GetCoverageRequirements(in.Vendor, in.PartCategory)

	// OEM requirements are a floor, never a ceiling.
	coverage := maxf(zeroDefault(in.CoverageTarget, defaultCoverage), cov.MinCoverage)
	overlap := maxf(zeroDefault(in.OverlapRequired, defaultOverlap), cov.MinOverlap)

	g := &generator{
		in:           in,
		plan:         plan,
		coverage:     coverage,
		overlap:      overlap,
		edgeMargin:   cov.EdgeExclusion,
		maxPatchSize: zeroDefault(in.MaxPatchSize, defaultMaxPatchSize),
		scanSpeed:    effectiveScanSpeed(in),
		prf:          zeroDefault(in.PRF, defaultPRF),
	}
	if g.in.Footprint.Width <= 0 {
		g.in.Footprint.Width = 10
		plan.Warnings = append(plan.Warnings, "probe footprint width missing, assuming 10 mm")
	}
	g.scanIndex = g.in.Footprint.Width * (1 - overlap/100)

	switch classifyGeometry(in.PartGeometry) {
	case kindCylindrical:
		g.generateCylindrical()
	case kindTubular:
		g.generateTubular()
	case kindComplex:
		plan.Warnings = append(plan.Warnings, fmt.Sprintf(
			"part geometry %q is not tileable directly; planning as flat for operator review", in.PartGeometry))
		g.generateFlat()
	default:
		g.generateFlat()
	}

	g.applyExclusions()
	g.validateAll()
	g.totalize(coverage)
	plan.OptimizationScore = optimizationScore(plan)
	return plan
}

// generator carries the per-request effective parameters through the tiling
// passes.
type generator struct {
	in   Input
	plan *Plan

	coverage     float64
	overlap      float64
	edgeMargin   float64
	maxPatchSize float64
	scanSpeed    float64
	scanIndex    float64
	prf          float64
}

func effectiveScanSpeed(in Input) float64 {
	speed := zeroDefault(in.MaxScanSpeed, defaultScanSpeed)
	if in.Kinematics != nil && in.Kinematics.MaxScanSpeed > 0 && in.Kinematics.MaxScanSpeed < speed {
		speed = in.Kinematics.MaxScanSpeed
	}
	return speed
}

// add finalizes common fields and appends the patch to the plan.
func (g *generator) add(p Patch) {
	p.Sequence = len(g.plan.Patches) + 1
	p.ID = fmt.Sprintf("P%03d", p.Sequence)
	p.ScanSpeed = g.scanSpeed
	p.ScanIndex = g.scanIndex
	p.Overlap = g.overlap
	p.Coverage = 100
	p.Status = StatusPlanned
	g.plan.Patches = append(g.plan.Patches, p)
}

// totalize fills the plan totals. Total coverage is covered patch area over
// total inspectable area, where the patch set itself defines the inspectable
// area (exclusion cuts reduce the numerator only).
func (g *generator) totalize(targetCoverage float64) {
	areas := make([]float64, len(g.plan.Patches))
	weights := make([]float64, len(g.plan.Patches))
	for i := range g.plan.Patches {
		p := &g.plan.Patches[i]
		areas[i] = p.Area()
		weights[i] = p.Coverage / 100
		g.plan.TotalPasses += p.Passes
		g.plan.TotalTime += p.Time
	}
	if total := floats.Sum(areas); total > 0 {
		g.plan.TotalCoverage = 100 * floats.Dot(areas, weights) / total
	}
	if g.plan.TotalCoverage < 0.95*targetCoverage {
		g.plan.Warnings = append(g.plan.Warnings, fmt.Sprintf(
			"plan coverage %.1f%% is below 95%% of the %.1f%% target", g.plan.TotalCoverage, targetCoverage))
	}
	g.plan.MeetsRequirements = len(g.plan.Errors) == 0
}

func zeroDefault(v, d float64) float64 {
	if v <= 0 {
		return d
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
