package oemrules

// Field names a user setting the ratchet merge can raise.
type Field string

const (
	FieldCoverage  Field = "coverage"
	FieldOverlap   Field = "overlap"
	FieldFrequency Field = "frequency"
)

// Settings are the user-chosen scan parameters subject to vendor floors.
type Settings struct {
	Coverage  float64 `json:"coverage"`  // percent
	Overlap   float64 `json:"overlap"`   // percent
	Frequency float64 `json:"frequency"` // MHz
}

// MergeWithOEMRules raises each mandatory field to the vendor minimum when
// the user value is below it. The merge is a one-directional ratchet: it
// never lowers a value, whether the user was already compliant or not.
// Frequency ratchets to the band minimum since there is no "more frequency
// is better" ordering above it.
func MergeWithOEMRules(user Settings, v Vendor, mandatory []Field, category PartCategory) Settings {
	rs := Rules(v)
	cov := GetCoverageRequirements(v, category)
	out := user
	for _, field := range mandatory {
		switch field {
		case FieldCoverage:
			if out.Coverage < cov.MinCoverage {
				out.Coverage = cov.MinCoverage
			}
		case FieldOverlap:
			if out.Overlap < cov.MinOverlap {
				out.Overlap = cov.MinOverlap
			}
		case FieldFrequency:
			if out.Frequency < rs.Frequency.Min {
				out.Frequency = rs.Frequency.Min
			}
		}
	}
	return out
}
