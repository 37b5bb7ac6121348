package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ut-planner/internal/calblock"
	"ut-planner/internal/oemrules"
	"ut-planner/internal/patch"
)

func f(v float64) *float64 { return &v }

func TestPlanEndToEnd(t *testing.T) {
	res, err := Plan(Request{
		Material:        "carbon_steel",
		PartType:        "weld",
		Standard:        "aws",
		Thickness:       25,
		Length:          f(300),
		Width:           f(100),
		BeamType:        calblock.AngleBeam,
		Angles:          []float64{45},
		Frequency:       5.0,
		Footprint:       patch.Footprint{Width: 20, Length: 20},
		MaxPatchSize:    150,
		OverlapRequired: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, oemrules.Generic, res.Vendor)
	assert.Equal(t, calblock.DSC, res.Calibration.Primary.Category)
	require.NotNil(t, res.Patches)
	assert.Len(t, res.Patches.Patches, 2)
	assert.True(t, res.Patches.MeetsRequirements)
	assert.True(t, res.Validation.Valid, "errors: %v", res.Validation.Errors)
}

func TestPlanDerivesVendorFromStandard(t *testing.T) {
	res, err := Plan(Request{
		Material:     "inconel",
		PartType:     "disk",
		Standard:     "NDIP-1101",
		Thickness:    30,
		Length:       f(200),
		Width:        f(200),
		PartCategory: oemrules.PartDisk,
		HasDAC:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, oemrules.PW, res.Vendor)
	// The PW disk override forces 20% overlap on every patch.
	require.NotEmpty(t, res.Patches.Patches)
	assert.Equal(t, 20.0, res.Patches.Patches[0].Overlap)
}

func TestPlanDerivesFootprintFromBeamSpread(t *testing.T) {
	res, err := Plan(Request{
		Material:  "carbon_steel",
		PartType:  "plate",
		Standard:  "asme",
		Thickness: 25,
		Length:    f(100),
		Width:     f(100),
		Frequency: 5.0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Patches.Patches)
	// No footprint was given: the scan index must come from computed beam
	// spread, not the missing-footprint fallback.
	for _, w := range res.Patches.Warnings {
		assert.NotContains(t, w, "footprint")
	}
	assert.Greater(t, res.Patches.Patches[0].ScanIndex, 0.0)
}

func TestPlanRejectsNonPositiveThickness(t *testing.T) {
	_, err := Plan(Request{Material: "steel", PartType: "plate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thickness")
}
