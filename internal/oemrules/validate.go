package oemrules

import (
	"fmt"
)

// Setup describes a proposed inspection configuration to check against a
// vendor's rules. Nil numeric fields were not specified by the user and are
// skipped; the validator only judges what it is given.
type Setup struct {
	Coverage     *float64     `json:"coverage,omitempty"`  // percent
	Overlap      *float64     `json:"overlap,omitempty"`   // percent
	Frequency    *float64     `json:"frequency,omitempty"` // MHz
	TransducerID string       `json:"transducer_id,omitempty"`
	BlockType    string       `json:"block_type,omitempty"`
	HasDAC       bool         `json:"has_dac"`
	HasTCG       bool         `json:"has_tcg"`
	PartCategory PartCategory `json:"part_category,omitempty"`
}

// ValidationResult separates hard violations from advisories. Valid is true
// iff Errors is empty; warnings never block acceptance.
type ValidationResult struct {
	Vendor   Vendor   `json:"vendor"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a setup against a vendor's rules.
//
// Only violations of published minimums/maximums and mandatory equipment are
// errors: coverage under the floor, frequency outside the allowed band, a
// missing DAC/TCG curve where one is mandated, or a transducer off a
// non-empty approved list. Everything else (overlap under recommendation,
// off-preferred frequency, unverifiable block type) is advisory.
func Validate(v Vendor, setup Setup) ValidationResult {
	rs := Rules(v)
	cov := GetCoverageRequirements(v, setup.PartCategory)
	res := ValidationResult{Vendor: rs.Vendor}

	if setup.Coverage != nil && *setup.Coverage < cov.MinCoverage {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"coverage %.1f%% is below the %s minimum of %.1f%%", *setup.Coverage, rs.Vendor, cov.MinCoverage))
	}
	if setup.Overlap != nil && *setup.Overlap < cov.MinOverlap {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"overlap %.1f%% is below the recommended %.1f%%", *setup.Overlap, cov.MinOverlap))
	}

	if setup.Frequency != nil {
		freq := *setup.Frequency
		if freq < rs.Frequency.Min || freq > rs.Frequency.Max {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"frequency %.2f MHz is outside the allowed range %.2f-%.2f MHz", freq, rs.Frequency.Min, rs.Frequency.Max))
		} else if len(rs.Frequency.Preferred) > 0 && !containsFloat(rs.Frequency.Preferred, freq) {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"frequency %.2f MHz is not on the preferred list %v", freq, rs.Frequency.Preferred))
		}
	}

	if rs.Calibration.DACRequired && !setup.HasDAC {
		res.Errors = append(res.Errors, fmt.Sprintf("%s requires a DAC curve for this inspection", rs.Vendor))
	}
	if rs.Calibration.TCGRequired && !setup.HasTCG {
		res.Errors = append(res.Errors, fmt.Sprintf("%s requires TCG for this inspection", rs.Vendor))
	}

	if setup.TransducerID != "" && len(rs.Equipment.Transducers) > 0 &&
		!containsString(rs.Equipment.Transducers, setup.TransducerID) {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"transducer %q is not on the %s approved list", setup.TransducerID, rs.Vendor))
	}

	if setup.BlockType != "" {
		if len(rs.Equipment.BlockTypes) == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"%s publishes no approved block list; verify block type %q with the procedure", rs.Vendor, setup.BlockType))
		} else if !containsString(rs.Equipment.BlockTypes, setup.BlockType) {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"block type %q is not on the %s approved list", setup.BlockType, rs.Vendor))
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

func containsFloat(list []float64, v float64) bool {
	const tol = 1e-9
	for _, x := range list {
		if v > x-tol && v < x+tol {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
