// Package oemrules holds the per-vendor inspection rule sets (coverage,
// frequency, calibration cadence, documentation, approved hardware) and the
// validation logic that checks a proposed setup against them. The registry is
// static configuration: built once at init, read-only afterwards, safe for
// concurrent lookup.
package oemrules

// Vendor identifies whose overrides apply. Unknown vendors resolve to
// Generic, which is the baseline every vendor set may tighten but never
// relax.
type Vendor string

const (
	Generic Vendor = "generic"
	PW      Vendor = "pw" // Pratt & Whitney
	GE      Vendor = "ge"
	RR      Vendor = "rr" // Rolls-Royce
)

// PartCategory groups parts for per-category rule overrides.
type PartCategory string

const (
	PartGeneral PartCategory = "general"
	PartDisk    PartCategory = "disk"
	PartBlade   PartCategory = "blade"
	PartShaft   PartCategory = "shaft"
	PartCase    PartCategory = "case"
	PartWeld    PartCategory = "weld"
)

// CoverageRequirements sets the scan coverage floor for a vendor.
// Percentages are 0-100, exclusion in mm.
type CoverageRequirements struct {
	MinCoverage            float64 `json:"min_coverage"`
	MinOverlap             float64 `json:"min_overlap"`
	CriticalZoneMultiplier float64 `json:"critical_zone_multiplier"`
	EdgeExclusion          float64 `json:"edge_exclusion"`
}

// FrequencyConstraints bounds the probe frequency in MHz. Preferred lists
// the frequencies the vendor's procedures are written for; values inside
// [Min, Max] but off the list draw a warning, not an error.
type FrequencyConstraints struct {
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Preferred []float64 `json:"preferred"`
}

// CalibrationRules sets calibration cadence and curve requirements.
type CalibrationRules struct {
	IntervalDays        int     `json:"interval_days"`
	DACRequired         bool    `json:"dac_required"`
	TCGRequired         bool    `json:"tcg_required"`
	TransferToleranceDB float64 `json:"transfer_tolerance_db"`
}

// DocumentationRules sets record-keeping requirements.
type DocumentationRules struct {
	ScanPlanRequired bool `json:"scan_plan_required"`
	CalCertRequired  bool `json:"cal_cert_required"`
	RetentionYears   int  `json:"retention_years"`
}

// ApprovedEquipment restricts hardware. An empty list means the vendor
// publishes no restriction for that kind of equipment.
type ApprovedEquipment struct {
	Transducers []string `json:"transducers"`
	BlockTypes  []string `json:"block_types"`
}

// CategoryOverride patches coverage fields for one part category. Nil fields
// inherit the vendor baseline (shallow field-by-field merge, no deep
// inheritance chains).
type CategoryOverride struct {
	MinCoverage            *float64 `json:"min_coverage,omitempty"`
	MinOverlap             *float64 `json:"min_overlap,omitempty"`
	CriticalZoneMultiplier *float64 `json:"critical_zone_multiplier,omitempty"`
	EdgeExclusion          *float64 `json:"edge_exclusion,omitempty"`
}

// RuleSet is one vendor's complete rule configuration.
type RuleSet struct {
	Vendor        Vendor                            `json:"vendor"`
	Coverage      CoverageRequirements              `json:"coverage"`
	Frequency     FrequencyConstraints              `json:"frequency"`
	Calibration   CalibrationRules                  `json:"calibration"`
	Documentation DocumentationRules                `json:"documentation"`
	Equipment     ApprovedEquipment                 `json:"equipment"`
	Overrides     map[PartCategory]CategoryOverride `json:"overrides,omitempty"`
}
