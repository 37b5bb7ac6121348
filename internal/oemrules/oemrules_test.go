package oemrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesFallsBackToGeneric(t *testing.T) {
	rs := Rules(Vendor("unknown-vendor"))
	require.NotNil(t, rs)
	assert.Equal(t, Generic, rs.Vendor)
}

func TestVendorMinimumsNeverRelaxGeneric(t *testing.T) {
	base := Rules(Generic).Coverage
	for _, v := range Vendors() {
		rs := Rules(v)
		assert.GreaterOrEqual(t, rs.Coverage.MinCoverage, base.MinCoverage, "vendor %s coverage", v)
		assert.GreaterOrEqual(t, rs.Coverage.MinOverlap, base.MinOverlap, "vendor %s overlap", v)
	}
}

func TestGetCoverageRequirementsOverride(t *testing.T) {
	base := GetCoverageRequirements(PW, PartGeneral)
	disk := GetCoverageRequirements(PW, PartDisk)

	// Only the patched fields change.
	assert.Equal(t, base.MinCoverage, disk.MinCoverage)
	assert.Equal(t, 20.0, disk.MinOverlap)
	assert.Equal(t, 2.0, disk.CriticalZoneMultiplier)
	assert.Equal(t, base.EdgeExclusion, disk.EdgeExclusion)
}

func TestValidateErrorWarningSplit(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	t.Run("coverage below minimum is an error", func(t *testing.T) {
		res := Validate(PW, Setup{Coverage: f(80), HasDAC: true})
		assert.False(t, res.Valid)
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[0], "coverage")
	})

	t.Run("compliant setup is valid", func(t *testing.T) {
		res := Validate(PW, Setup{
			Coverage:     f(100),
			Overlap:      f(20),
			Frequency:    f(5.0),
			TransducerID: "PW-UT-105",
			BlockType:    "dsc",
			HasDAC:       true,
		})
		assert.True(t, res.Valid, "errors: %v", res.Errors)
		assert.Empty(t, res.Errors)
	})

	t.Run("low overlap is only a warning", func(t *testing.T) {
		res := Validate(PW, Setup{Coverage: f(100), Overlap: f(5), HasDAC: true})
		assert.True(t, res.Valid)
		require.NotEmpty(t, res.Warnings)
		assert.Contains(t, res.Warnings[0], "overlap")
	})

	t.Run("frequency outside band is an error", func(t *testing.T) {
		res := Validate(PW, Setup{Frequency: f(20.0), HasDAC: true})
		assert.False(t, res.Valid)
	})

	t.Run("off-preferred frequency is a warning", func(t *testing.T) {
		res := Validate(PW, Setup{Frequency: f(2.25), HasDAC: true})
		assert.True(t, res.Valid)
		assert.NotEmpty(t, res.Warnings)
	})

	t.Run("missing DAC when mandated is an error", func(t *testing.T) {
		res := Validate(GE, Setup{HasTCG: true})
		assert.False(t, res.Valid)
	})

	t.Run("unapproved transducer is an error", func(t *testing.T) {
		res := Validate(GE, Setup{TransducerID: "no-name-probe", HasDAC: true, HasTCG: true})
		assert.False(t, res.Valid)
	})

	t.Run("block type without restriction list is a warning", func(t *testing.T) {
		res := Validate(RR, Setup{BlockType: "iiw_v2", HasTCG: true})
		assert.True(t, res.Valid, "errors: %v", res.Errors)
		assert.NotEmpty(t, res.Warnings)
	})

	t.Run("block type off a published list is an error", func(t *testing.T) {
		res := Validate(PW, Setup{BlockType: "aws_resolution", HasDAC: true})
		assert.False(t, res.Valid)
	})

	t.Run("part category tightens the floor", func(t *testing.T) {
		res := Validate(GE, Setup{Coverage: f(97), PartCategory: PartBlade, HasDAC: true, HasTCG: true})
		assert.False(t, res.Valid, "blade override requires 100%% coverage")
	})
}

func TestMergeWithOEMRules(t *testing.T) {
	all := []Field{FieldCoverage, FieldOverlap, FieldFrequency}

	t.Run("raises below-minimum values", func(t *testing.T) {
		out := MergeWithOEMRules(Settings{Coverage: 80, Overlap: 5, Frequency: 1.0}, PW, all, PartGeneral)
		assert.Equal(t, 100.0, out.Coverage)
		assert.Equal(t, 15.0, out.Overlap)
		assert.Equal(t, 2.25, out.Frequency)
	})

	t.Run("never lowers compliant values", func(t *testing.T) {
		in := Settings{Coverage: 100, Overlap: 30, Frequency: 10}
		out := MergeWithOEMRules(in, PW, all, PartGeneral)
		assert.Equal(t, in, out)
	})

	t.Run("only mandatory fields ratchet", func(t *testing.T) {
		out := MergeWithOEMRules(Settings{Coverage: 80, Overlap: 5}, PW, []Field{FieldCoverage}, PartGeneral)
		assert.Equal(t, 100.0, out.Coverage)
		assert.Equal(t, 5.0, out.Overlap)
	})

	t.Run("category override raises the floor", func(t *testing.T) {
		out := MergeWithOEMRules(Settings{Overlap: 16}, PW, all, PartDisk)
		assert.Equal(t, 20.0, out.Overlap)
	})
}

func TestVendorForStandard(t *testing.T) {
	tests := []struct {
		designation string
		want        Vendor
	}{
		{"NDIP-1101", PW},
		{"ndip 1220", PW},
		{"NDIP-9999", PW}, // prefix family
		{"P3TF31", GE},
		{"GEK-112099", GE},
		{"RRES-90061", RR},
		{"AMS-STD-2154", Generic},
		{"ASTM E164", Generic},
		{"", Generic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VendorForStandard(tt.designation), "designation %q", tt.designation)
	}
}
