// Package planner is the engine facade: one planning request in, a
// calibration recommendation and a patch plan out. It wires the block
// selector, the OEM rule registry, the beam physics, and the patch generator
// together the way the UI layer consumes them.
package planner

import (
	"fmt"

	"ut-planner/internal/calblock"
	"ut-planner/internal/material"
	"ut-planner/internal/oemrules"
	"ut-planner/internal/patch"
	"ut-planner/internal/physics"
	"ut-planner/pkg/geometry"
)

// Request is the full planning input. Optional dimensions are pointers;
// everything else zero-defaults per operation.
type Request struct {
	// Part description
	Material        string   `json:"material" yaml:"material"`
	MaterialSpec    string   `json:"material_spec,omitempty" yaml:"material_spec"`
	PartType        string   `json:"part_type" yaml:"part_type"`
	Standard        string   `json:"standard" yaml:"standard"`
	Thickness       float64  `json:"thickness" yaml:"thickness"`
	Length          *float64 `json:"length,omitempty" yaml:"length"`
	Width           *float64 `json:"width,omitempty" yaml:"width"`
	OuterDiameter   *float64 `json:"outer_diameter,omitempty" yaml:"outer_diameter"`
	InnerDiameter   *float64 `json:"inner_diameter,omitempty" yaml:"inner_diameter"`
	AcceptanceClass string   `json:"acceptance_class,omitempty" yaml:"acceptance_class"`

	// Beam setup
	BeamType       calblock.BeamType `json:"beam_type,omitempty" yaml:"beam_type"`
	Angles         []float64         `json:"angles,omitempty" yaml:"angles"`
	Frequency      float64           `json:"frequency,omitempty" yaml:"frequency"`
	ScanDirections []string          `json:"scan_directions,omitempty" yaml:"scan_directions"`

	// OEM context; Vendor derives from Standard when empty.
	Vendor       oemrules.Vendor       `json:"vendor,omitempty" yaml:"vendor"`
	PartCategory oemrules.PartCategory `json:"part_category,omitempty" yaml:"part_category"`

	// Scan mechanics
	Footprint       patch.Footprint             `json:"probe_footprint,omitempty" yaml:"probe_footprint"`
	CoverageTarget  float64                     `json:"coverage_target,omitempty" yaml:"coverage_target"`
	OverlapRequired float64                     `json:"overlap_required,omitempty" yaml:"overlap_required"`
	MaxPatchSize    float64                     `json:"max_patch_size,omitempty" yaml:"max_patch_size"`
	MaxScanSpeed    float64                     `json:"max_scan_speed,omitempty" yaml:"max_scan_speed"`
	PRF             float64                     `json:"prf,omitempty" yaml:"prf"`
	ExcludedZones   []geometry.Rect             `json:"excluded_zones,omitempty" yaml:"excluded_zones"`
	Kinematics      *patch.Kinematics           `json:"scanner_kinematics,omitempty" yaml:"scanner_kinematics"`
	Dwell           *patch.DwellConstraints     `json:"dwell_constraints,omitempty" yaml:"dwell_constraints"`
	Incidence       *patch.IncidenceConstraints `json:"incidence_constraints,omitempty" yaml:"incidence_constraints"`

	// Equipment for OEM validation
	TransducerID string `json:"transducer_id,omitempty" yaml:"transducer_id"`
	HasDAC       bool   `json:"has_dac,omitempty" yaml:"has_dac"`
	HasTCG       bool   `json:"has_tcg,omitempty" yaml:"has_tcg"`
}

// Result bundles the two independent recommendation objects plus the OEM
// validation of the requested setup.
type Result struct {
	Vendor      oemrules.Vendor           `json:"vendor"`
	Calibration calblock.Recommendation   `json:"calibration"`
	Patches     *patch.Plan               `json:"patch_plan"`
	Validation  oemrules.ValidationResult `json:"oem_validation"`
}

// Plan runs the full pipeline. The engine is built to always produce a
// reviewable plan, so the only error is a part with no positive thickness.
func Plan(req Request) (*Result, error) {
	if req.Thickness <= 0 {
		return nil, fmt.Errorf("part thickness must be positive, got %v", req.Thickness)
	}

	vendor := req.Vendor
	if vendor == "" {
		vendor = oemrules.VendorForStandard(req.Standard)
	}

	rec := calblock.SelectBlock(calblock.Request{
		Material:        req.Material,
		MaterialSpec:    req.MaterialSpec,
		PartType:        req.PartType,
		Standard:        req.Standard,
		Thickness:       req.Thickness,
		Length:          req.Length,
		Width:           req.Width,
		OuterDiameter:   req.OuterDiameter,
		InnerDiameter:   req.InnerDiameter,
		AcceptanceClass: req.AcceptanceClass,
		BeamType:        req.BeamType,
		Angles:          req.Angles,
		Frequency:       req.Frequency,
		ScanDirections:  req.ScanDirections,
	})

	plan := patch.Generate(patch.Input{
		PartGeometry:    req.PartType,
		Dimensions:      dimensions(req),
		Footprint:       footprint(req),
		CoverageTarget:  req.CoverageTarget,
		OverlapRequired: req.OverlapRequired,
		MaxPatchSize:    req.MaxPatchSize,
		MaxScanSpeed:    req.MaxScanSpeed,
		PRF:             req.PRF,
		ExcludedZones:   req.ExcludedZones,
		Vendor:          vendor,
		PartCategory:    req.PartCategory,
		Kinematics:      req.Kinematics,
		Dwell:           req.Dwell,
		Incidence:       req.Incidence,
	})

	validation := oemrules.Validate(vendor, oemrules.Setup{
		Coverage:     &plan.TotalCoverage,
		Overlap:      optional(req.OverlapRequired),
		Frequency:    optional(req.Frequency),
		TransducerID: req.TransducerID,
		BlockType:    string(rec.Primary.Category),
		HasDAC:       req.HasDAC,
		HasTCG:       req.HasTCG,
		PartCategory: req.PartCategory,
	})

	return &Result{
		Vendor:      vendor,
		Calibration: rec,
		Patches:     plan,
		Validation:  validation,
	}, nil
}

func dimensions(req Request) patch.Dimensions {
	d := patch.Dimensions{WallThickness: req.Thickness}
	if req.Length != nil {
		d.Length = *req.Length
	}
	if req.Width != nil {
		d.Width = *req.Width
	}
	if req.OuterDiameter != nil {
		d.OuterDiameter = *req.OuterDiameter
	}
	if req.InnerDiameter != nil {
		d.InnerDiameter = *req.InnerDiameter
	}
	return d
}

// footprint returns the requested probe footprint, or derives one from beam
// spread at half thickness when the request leaves it out.
func footprint(req Request) patch.Footprint {
	if req.Footprint.Width > 0 {
		return req.Footprint
	}
	freq := req.Frequency
	if freq <= 0 {
		freq = 5.0
	}
	mat := material.Lookup(material.Parse(req.Material))
	velocity := mat.VelocityLong
	if req.BeamType == calblock.AngleBeam {
		velocity = mat.VelocityShear
	}
	wedge := material.WedgeForAngle(firstAngle(req.Angles), freq)
	d := physics.BeamDiameterAtDepth(wedge.ElementSize, freq, req.Thickness/2, velocity)
	return patch.Footprint{Width: d, Length: d}
}

func firstAngle(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}
	return angles[0]
}

func optional(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
