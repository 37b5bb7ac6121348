// Package patch decomposes a part's inspectable surface into scan patches
// sized by beam footprint, overlap, and scanner limits, then validates each
// patch against kinematic, dwell-time, and incidence-angle constraints.
// Lengths in mm, speeds in mm/s, angles in degrees, times in seconds.
package patch

import (
	"ut-planner/internal/oemrules"
	"ut-planner/pkg/geometry"
)

// Shape tags the patch geometry variant. Exactly one of the corresponding
// fields on Patch is set.
type Shape string

const (
	ShapeRect    Shape = "rectangle"
	ShapeArc     Shape = "arc"
	ShapeAnnular Shape = "annular"
)

// Status marks whether a patch validated cleanly.
type Status string

const (
	StatusPlanned Status = "planned"
	StatusWarning Status = "warning"
)

// Patch is one bounded scan region. Patches are created in a single
// generation pass and not mutated afterwards except to append warnings and
// set status during validation.
type Patch struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`

	Shape   Shape             `json:"shape"`
	Rect    *geometry.Rect    `json:"rect,omitempty"`
	Arc     *geometry.Arc     `json:"arc,omitempty"`
	Annular *geometry.Annulus `json:"annular,omitempty"`

	Strategy  string `json:"strategy"`  // raster | helical | radial
	Direction string `json:"direction"` // scan direction label
	Surface   string `json:"surface"`   // od | id | end | top

	ScanSpeed float64 `json:"scan_speed"`
	ScanIndex float64 `json:"scan_index"`
	Overlap   float64 `json:"overlap"`  // percent to neighbors
	Coverage  float64 `json:"coverage"` // percent of patch area covered
	Passes    int     `json:"passes"`
	Time      float64 `json:"time"` // estimated, seconds

	Status   Status   `json:"status"`
	Warnings []string `json:"warnings,omitempty"`
}

// Area returns the patch surface area.
func (p *Patch) Area() float64 {
	switch p.Shape {
	case ShapeArc:
		return p.Arc.Area()
	case ShapeAnnular:
		return p.Annular.Area()
	default:
		return p.Rect.Area()
	}
}

// Dimensions holds the part envelope. Only the fields relevant to the
// geometry kind need to be set.
type Dimensions struct {
	Length        float64 `json:"length,omitempty"`
	Width         float64 `json:"width,omitempty"`
	OuterDiameter float64 `json:"outer_diameter,omitempty"`
	InnerDiameter float64 `json:"inner_diameter,omitempty"`
	WallThickness float64 `json:"wall_thickness,omitempty"`
}

// Footprint is the probe's effective beam footprint on the scan surface.
type Footprint struct {
	Width  float64 `json:"width"`  // across the index direction
	Length float64 `json:"length"` // along the scan direction
}

// Kinematics holds the scanner's mechanical limits.
type Kinematics struct {
	MaxScanSpeed float64 `json:"max_scan_speed"`
	TravelX      float64 `json:"travel_x"` // axis travel limits
	TravelY      float64 `json:"travel_y"`
}

// DwellConstraints bound pulses per point from the instrument PRF.
type DwellConstraints struct {
	MinPulsesPerPoint  float64 `json:"min_pulses_per_point"`  // hard floor
	WarnPulsesPerPoint float64 `json:"warn_pulses_per_point"` // advisory floor
}

// IncidenceConstraints bound the couplant incidence angle on curved
// surfaces.
type IncidenceConstraints struct {
	MaxAngle      float64 `json:"max_angle"`      // hard limit
	CriticalAngle float64 `json:"critical_angle"` // advisory threshold
}

// Input is the patch generation request from the UI layer. Optional fields
// zero-default per the rules in Generate.
type Input struct {
	PartGeometry string     `json:"part_geometry"`
	Dimensions   Dimensions `json:"dimensions"`
	Footprint    Footprint  `json:"probe_footprint"`

	CoverageTarget  float64 `json:"coverage_target,omitempty"`  // percent
	OverlapRequired float64 `json:"overlap_required,omitempty"` // percent
	MaxPatchSize    float64 `json:"max_patch_size,omitempty"`
	MaxScanSpeed    float64 `json:"max_scan_speed,omitempty"`
	PRF             float64 `json:"prf,omitempty"` // Hz

	ExcludedZones []geometry.Rect `json:"excluded_zones,omitempty"`

	Vendor       oemrules.Vendor       `json:"vendor,omitempty"`
	PartCategory oemrules.PartCategory `json:"part_category,omitempty"`

	Kinematics *Kinematics           `json:"scanner_kinematics,omitempty"`
	Dwell      *DwellConstraints     `json:"dwell_constraints,omitempty"`
	Incidence  *IncidenceConstraints `json:"incidence_constraints,omitempty"`
}

// Plan aggregates the generated patches with plan-level totals and
// validation results. MeetsRequirements is true iff validation produced no
// hard errors.
type Plan struct {
	ID     string          `json:"id"`
	Vendor oemrules.Vendor `json:"vendor"`

	Patches []Patch `json:"patches"`

	TotalCoverage     float64 `json:"total_coverage"` // percent of inspectable area
	TotalPasses       int     `json:"total_passes"`
	TotalTime         float64 `json:"total_time"` // seconds
	MeetsRequirements bool    `json:"meets_requirements"`
	OptimizationScore int     `json:"optimization_score"`

	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Limitations []string `json:"limitations,omitempty"`
}
