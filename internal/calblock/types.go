// Package calblock implements the calibration block catalog and the
// standards-driven selection engine that maps a part description to a
// recommended reference block, reflector sizing, and metal-travel distances.
// All dimensions in mm unless a name says otherwise.
package calblock

import (
	"ut-planner/internal/material"
	"ut-planner/internal/physics"
)

// Category is the closed set of calibration block families the selector can
// recommend. The selector and catalog switch over it exhaustively; adding a
// category means touching every switch, which is the point.
type Category string

const (
	FlatFBH         Category = "flat_fbh"
	CurvedFBH       Category = "curved_fbh"
	CylinderFBH     Category = "cylinder_fbh"
	CylinderNotched Category = "cylinder_notched"
	IIWV1           Category = "iiw_v1"
	IIWV2           Category = "iiw_v2"
	DSC             Category = "dsc"
	AWSResolution   Category = "aws_resolution"
	ASMEBasic       Category = "asme_basic"
	CustomBlock     Category = "custom"
)

// BeamType distinguishes straight-beam (0°) from angle-beam selection.
type BeamType string

const (
	StraightBeam BeamType = "straight"
	AngleBeam    BeamType = "angle"
)

// GeometryClass is the selector's part-shape classification.
type GeometryClass string

const (
	ClassFlat             GeometryClass = "flat_plate"
	ClassSolidRound       GeometryClass = "solid_round"
	ClassDisk             GeometryClass = "disk"
	ClassThinWallTubular  GeometryClass = "thin_wall_tubular"
	ClassThickWallTubular GeometryClass = "thick_wall_tubular"
	ClassForging          GeometryClass = "forging"
	ClassHex              GeometryClass = "hex"
	ClassComplex          GeometryClass = "complex"
)

// ReflectorType identifies a machined reference reflector.
type ReflectorType string

const (
	ReflectorFBH   ReflectorType = "fbh" // flat-bottom hole
	ReflectorSDH   ReflectorType = "sdh" // side-drilled hole
	ReflectorNotch ReflectorType = "notch"
)

// Reflector is one machined reference target in a block. Depth is measured
// from the scan surface and must lie within [0, block thickness].
type Reflector struct {
	Type     ReflectorType `json:"type"`
	Depth    float64       `json:"depth"`
	Diameter float64       `json:"diameter,omitempty"` // FBH/SDH
	Length   float64       `json:"length,omitempty"`   // notch
	Width    float64       `json:"width,omitempty"`    // notch
	Label    string        `json:"label,omitempty"`
}

// BlockGeometry is a tagged union: exactly one of the variant pointers is
// set, selected by Kind.
type BlockGeometry struct {
	Kind        string        `json:"kind"` // "flat" | "cylindrical" | "iiw"
	Flat        *FlatGeometry `json:"flat,omitempty"`
	Cylindrical *CylGeometry  `json:"cylindrical,omitempty"`
	IIW         *IIWGeometry  `json:"iiw,omitempty"`
}

// FlatGeometry is a rectangular block.
type FlatGeometry struct {
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
}

// CylGeometry is a cylindrical or tubular block segment.
type CylGeometry struct {
	OuterDiameter float64 `json:"outer_diameter"`
	InnerDiameter float64 `json:"inner_diameter,omitempty"` // 0 for solid
	Length        float64 `json:"length"`
}

// IIWGeometry identifies an IIW-pattern block variant; dimensions are fixed
// by the pattern.
type IIWGeometry struct {
	Variant string `json:"variant"` // "V1" | "V2"
}

// Spec is one concrete calibration block produced by the selector. Specs are
// immutable once returned; a new request produces a new spec.
type Spec struct {
	Category      Category          `json:"category"`
	StandardRef   string            `json:"standard_ref"`
	Geometry      BlockGeometry     `json:"geometry"`
	Reflectors    []Reflector       `json:"reflectors"`
	BeamTypes     []BeamType        `json:"beam_types"`
	Angles        []float64         `json:"angles,omitempty"`
	MaterialMatch bool              `json:"material_match"` // block must match part material
	Material      material.Material `json:"material"`
}

// Request is the planning input accepted from the UI layer. Optional
// dimensions are pointers; missing fields default per operation rather than
// aborting.
type Request struct {
	Material        string    `json:"material"`
	MaterialSpec    string    `json:"material_spec,omitempty"`
	PartType        string    `json:"part_type"`
	Standard        string    `json:"standard"`
	Thickness       float64   `json:"thickness"`
	Length          *float64  `json:"length,omitempty"`
	Width           *float64  `json:"width,omitempty"`
	OuterDiameter   *float64  `json:"outer_diameter,omitempty"`
	InnerDiameter   *float64  `json:"inner_diameter,omitempty"`
	AcceptanceClass string    `json:"acceptance_class,omitempty"`
	BeamType        BeamType  `json:"beam_type,omitempty"`
	Angles          []float64 `json:"angles,omitempty"`
	Frequency       float64   `json:"frequency,omitempty"`
	ScanDirections  []string  `json:"scan_directions,omitempty"`
}

// AngleData bundles the per-angle physics backing an angle-beam
// recommendation.
type AngleData struct {
	Angle       float64                     `json:"angle"`
	Path        physics.PathResult          `json:"path"`
	SDH         physics.SDHRecommendation   `json:"sdh"`
	Notch       physics.NotchRecommendation `json:"notch"`
	MetalTravel []float64                   `json:"metal_travel"`
	Wedge       material.WedgeSpec          `json:"wedge"`
}

// Recommendation is the selector's output: always a usable block, possibly
// degraded to a custom category with warnings, never nil.
type Recommendation struct {
	Primary      Spec          `json:"primary"`
	Alternatives []Category    `json:"alternatives,omitempty"`
	Geometry     GeometryClass `json:"geometry_class"`
	Reasoning    []string      `json:"reasoning"`
	Warnings     []string      `json:"warnings,omitempty"`
	Notes        []string      `json:"notes,omitempty"`
	Confidence   int           `json:"confidence"`
	AngleData    []AngleData   `json:"angle_data,omitempty"`
}
