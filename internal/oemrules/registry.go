package oemrules

// Registry of vendor rule sets. Vendor sets only ever tighten the generic
// baseline; a vendor minimum below the generic one is a data error.
var registry = map[Vendor]*RuleSet{}

func f(v float64) *float64 { return &v }

func init() {
	register(&RuleSet{
		Vendor:   Generic,
		Coverage: CoverageRequirements{MinCoverage: 90, MinOverlap: 10, CriticalZoneMultiplier: 1.0, EdgeExclusion: 0},
		Frequency: FrequencyConstraints{
			Min: 1.0, Max: 15.0,
			Preferred: []float64{2.25, 5.0, 10.0},
		},
		Calibration:   CalibrationRules{IntervalDays: 365, TransferToleranceDB: 2.0},
		Documentation: DocumentationRules{ScanPlanRequired: true, RetentionYears: 7},
	})

	register(&RuleSet{
		Vendor:   PW,
		Coverage: CoverageRequirements{MinCoverage: 100, MinOverlap: 15, CriticalZoneMultiplier: 1.5, EdgeExclusion: 3},
		Frequency: FrequencyConstraints{
			Min: 2.25, Max: 10.0,
			Preferred: []float64{5.0, 10.0},
		},
		Calibration:   CalibrationRules{IntervalDays: 90, DACRequired: true, TransferToleranceDB: 1.0},
		Documentation: DocumentationRules{ScanPlanRequired: true, CalCertRequired: true, RetentionYears: 10},
		Equipment: ApprovedEquipment{
			Transducers: []string{"PW-UT-105", "PW-UT-210", "PW-UT-505"},
			BlockTypes:  []string{"dsc", "iiw_v1", "custom"},
		},
		Overrides: map[PartCategory]CategoryOverride{
			// Rotating hardware: full coverage with doubled critical zones.
			PartDisk: {MinOverlap: f(20), CriticalZoneMultiplier: f(2.0)},
		},
	})

	register(&RuleSet{
		Vendor:   GE,
		Coverage: CoverageRequirements{MinCoverage: 95, MinOverlap: 10, CriticalZoneMultiplier: 1.5, EdgeExclusion: 2},
		Frequency: FrequencyConstraints{
			Min: 1.0, Max: 15.0,
			Preferred: []float64{2.25, 5.0},
		},
		Calibration:   CalibrationRules{IntervalDays: 180, DACRequired: true, TCGRequired: true, TransferToleranceDB: 1.5},
		Documentation: DocumentationRules{ScanPlanRequired: true, CalCertRequired: true, RetentionYears: 10},
		Equipment: ApprovedEquipment{
			Transducers: []string{"GE-113-240-591", "GE-113-241-013"},
		},
		Overrides: map[PartCategory]CategoryOverride{
			PartBlade: {MinCoverage: f(100), MinOverlap: f(15)},
		},
	})

	register(&RuleSet{
		Vendor:   RR,
		Coverage: CoverageRequirements{MinCoverage: 98, MinOverlap: 12, CriticalZoneMultiplier: 1.5, EdgeExclusion: 2.5},
		Frequency: FrequencyConstraints{
			Min: 2.0, Max: 10.0,
			Preferred: []float64{2.25, 5.0},
		},
		Calibration:   CalibrationRules{IntervalDays: 120, TCGRequired: true, TransferToleranceDB: 1.5},
		Documentation: DocumentationRules{ScanPlanRequired: true, CalCertRequired: true, RetentionYears: 15},
		Overrides: map[PartCategory]CategoryOverride{
			PartShaft: {MinCoverage: f(100)},
		},
	})
}

func register(rs *RuleSet) {
	registry[rs.Vendor] = rs
}

// Rules returns the rule set for a vendor, or the generic baseline if the
// vendor is unknown. Never returns nil.
func Rules(v Vendor) *RuleSet {
	if rs, ok := registry[v]; ok {
		return rs
	}
	return registry[Generic]
}

// Vendors returns the registered vendor identifiers.
func Vendors() []Vendor {
	out := make([]Vendor, 0, len(registry))
	for v := range registry {
		out = append(out, v)
	}
	return out
}

// GetCoverageRequirements returns the vendor's coverage baseline with the
// part-category override, if any, merged field-by-field on top.
func GetCoverageRequirements(v Vendor, category PartCategory) CoverageRequirements {
	rs := Rules(v)
	cov := rs.Coverage
	ov, ok := rs.Overrides[category]
	if !ok {
		return cov
	}
	if ov.MinCoverage != nil {
		cov.MinCoverage = *ov.MinCoverage
	}
	if ov.MinOverlap != nil {
		cov.MinOverlap = *ov.MinOverlap
	}
	if ov.CriticalZoneMultiplier != nil {
		cov.CriticalZoneMultiplier = *ov.CriticalZoneMultiplier
	}
	if ov.EdgeExclusion != nil {
		cov.EdgeExclusion = *ov.EdgeExclusion
	}
	return cov
}
