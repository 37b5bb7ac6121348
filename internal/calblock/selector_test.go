package calblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ut-planner/internal/material"
	"ut-planner/internal/physics"
)

func f(v float64) *float64 { return &v }

func TestClassifyGeometry(t *testing.T) {
	tests := []struct {
		partType  string
		thickness float64
		od        *float64
		want      GeometryClass
	}{
		{"plate", 25, nil, ClassFlat},
		{"weld", 25, nil, ClassFlat},
		{"butt weld", 25, nil, ClassFlat},
		{"round bar", 25, f(60), ClassSolidRound},
		{"shaft", 25, f(80), ClassSolidRound},
		{"disk", 25, f(400), ClassDisk},
		{"tube", 3, f(60), ClassThinWallTubular},
		{"pipe", 20, f(60), ClassThickWallTubular}, // wall ratio 0.33
		{"forging", 50, nil, ClassForging},
		{"hex bar", 25, nil, ClassHex},
		{"blisk", 25, nil, ClassComplex},
		{"widget", 25, nil, ClassComplex},
		{"", 25, nil, ClassFlat}, // missing geometry defaults to flat
	}
	for _, tt := range tests {
		t.Run(tt.partType, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyGeometry(tt.partType, tt.thickness, tt.od))
		})
	}
}

func TestSelectBlockAWSWeldScenario(t *testing.T) {
	// The canonical AWS screening case: 25 mm carbon steel weld at 45°.
	rec := SelectBlock(Request{
		Material:  "carbon_steel",
		PartType:  "weld",
		Standard:  "aws",
		Thickness: 25,
		BeamType:  AngleBeam,
		Angles:    []float64{45},
	})

	assert.Equal(t, DSC, rec.Primary.Category)
	require.Len(t, rec.AngleData, 1)
	assert.Equal(t, 45.0, rec.AngleData[0].Angle)
	assert.InDelta(t, 50.0, rec.AngleData[0].Path.SkipDistance, 0.001)
	assert.Equal(t, 1.5, rec.AngleData[0].SDH.Diameter)
	assert.Equal(t, 95, rec.Confidence)
	assert.NotEmpty(t, rec.Reasoning)
}

func TestSelectBlockStraightBeam(t *testing.T) {
	t.Run("thin-wall tube with circumferential scan mandates notched block", func(t *testing.T) {
		rec := SelectBlock(Request{
			Material:       "stainless_304",
			PartType:       "tube",
			Standard:       "asme",
			Thickness:      3,
			OuterDiameter:  f(60),
			InnerDiameter:  f(54),
			ScanDirections: []string{"circumferential", "axial"},
		})
		assert.Equal(t, CylinderNotched, rec.Primary.Category)
		assert.Len(t, rec.Primary.Reflectors, 4)
		for _, r := range rec.Primary.Reflectors {
			assert.Equal(t, ReflectorNotch, r.Type)
			assert.LessOrEqual(t, r.Depth, 3.0)
		}
	})

	t.Run("foil-gauge wall keeps notch depth inside the wall", func(t *testing.T) {
		// EN 1714's 1.0 mm minimum step is deeper than a 0.8 mm wall; the
		// notch caps at the wall and the recommendation says so.
		rec := SelectBlock(Request{
			Material:       "stainless_304",
			PartType:       "tube",
			Standard:       "EN 1714",
			Thickness:      0.8,
			OuterDiameter:  f(25),
			InnerDiameter:  f(23.4),
			ScanDirections: []string{"circumferential"},
		})
		assert.Equal(t, CylinderNotched, rec.Primary.Category)
		require.Len(t, rec.Primary.Reflectors, 4)
		for _, r := range rec.Primary.Reflectors {
			assert.Equal(t, ReflectorNotch, r.Type)
			assert.Greater(t, r.Depth, 0.0)
			assert.LessOrEqual(t, r.Depth, 0.8)
		}
		require.NotEmpty(t, rec.Warnings)
		assert.Contains(t, rec.Warnings[0], "capped at the wall")
	})

	t.Run("small solid round gets curved block", func(t *testing.T) {
		rec := SelectBlock(Request{
			Material:      "titanium",
			PartType:      "round bar",
			Standard:      "mil2154",
			Thickness:     20,
			OuterDiameter: f(40),
		})
		assert.Equal(t, CurvedFBH, rec.Primary.Category)
		assert.Contains(t, rec.Reasoning[0], "50.8")
	})

	t.Run("large solid round gets flat block", func(t *testing.T) {
		rec := SelectBlock(Request{
			Material:      "titanium",
			PartType:      "billet",
			Standard:      "mil2154",
			Thickness:     80,
			OuterDiameter: f(200),
		})
		assert.Equal(t, FlatFBH, rec.Primary.Category)
	})

	t.Run("complex geometry degrades to custom with warning", func(t *testing.T) {
		rec := SelectBlock(Request{
			Material:  "inconel",
			PartType:  "blisk",
			Standard:  "asme",
			Thickness: 30,
		})
		assert.Equal(t, CustomBlock, rec.Primary.Category)
		require.NotEmpty(t, rec.Warnings)
		assert.Contains(t, rec.Warnings[0], "Level III")
	})

	t.Run("acceptance class sizes the FBH", func(t *testing.T) {
		rec := SelectBlock(Request{
			Material:        "aluminum",
			PartType:        "plate",
			Standard:        "mil2154",
			Thickness:       25,
			AcceptanceClass: "AA",
		})
		require.Len(t, rec.Primary.Reflectors, 3)
		assert.InDelta(t, 0.79, rec.Primary.Reflectors[0].Diameter, 0.01) // #2 FBH
		// FBH depths stay inside the block.
		for _, r := range rec.Primary.Reflectors {
			assert.Greater(t, r.Depth, 0.0)
			assert.Less(t, r.Depth, 25.0)
		}
	})
}

func TestSelectBlockAngleBeamFallback(t *testing.T) {
	t.Run("round part outside curved catalog falls back explicitly", func(t *testing.T) {
		rec := SelectBlock(Request{
			Material:      "carbon_steel",
			PartType:      "pipe",
			Standard:      "asme",
			Thickness:     30,
			OuterDiameter: f(800), // past every curved block's range
			BeamType:      AngleBeam,
			Angles:        []float64{60},
		})
		require.NotEmpty(t, rec.Reasoning)
		assert.Contains(t, rec.Reasoning[0], "falling back")
		assert.Equal(t, ASMEBasic, rec.Primary.Category)
	})

	t.Run("round part inside curved catalog gets geometry match", func(t *testing.T) {
		rec := SelectBlock(Request{
			Material:      "carbon_steel",
			PartType:      "tube",
			Standard:      "asme",
			Thickness:     6,
			OuterDiameter: f(100),
			BeamType:      AngleBeam,
			Angles:        []float64{45},
		})
		assert.Equal(t, CylinderNotched, rec.Primary.Category)
	})

	t.Run("no catalog match returns custom, never empty", func(t *testing.T) {
		rec := SelectBlock(Request{
			Material:  "carbon_steel",
			PartType:  "plate",
			Standard:  "aws",
			Thickness: 500,
			BeamType:  AngleBeam,
			Angles:    []float64{70},
		})
		assert.Equal(t, CustomBlock, rec.Primary.Category)
		require.NotEmpty(t, rec.Warnings)
		assert.Contains(t, rec.Warnings[0], "custom block required")
	})
}

func TestCodePreferenceOrder(t *testing.T) {
	base := Request{Material: "carbon_steel", PartType: "plate", Thickness: 20, BeamType: AngleBeam, Angles: []float64{45}}

	aws := base
	aws.Standard = "aws"
	assert.Equal(t, DSC, SelectBlock(aws).Primary.Category)

	asme := base
	asme.Standard = "asme"
	assert.Equal(t, ASMEBasic, SelectBlock(asme).Primary.Category)

	iso := base
	iso.Standard = "iso17640"
	assert.Equal(t, IIWV1, SelectBlock(iso).Primary.Category)
}

func TestConfidenceBounds(t *testing.T) {
	// Worst case: custom material, out-of-range thickness, complex
	// geometry, custom block. Score must floor at 50.
	rec := SelectBlock(Request{
		Material:  "unobtanium",
		PartType:  "widget",
		Standard:  "aws",
		Thickness: 500,
		BeamType:  AngleBeam,
		Angles:    []float64{70},
	})
	assert.Equal(t, 50, rec.Confidence)

	// Every combination stays in [50, 100].
	for _, m := range []string{"carbon_steel", "stainless_304", "unobtanium"} {
		for _, p := range []string{"plate", "blisk", "tube"} {
			for _, th := range []float64{3, 25, 500} {
				r := SelectBlock(Request{Material: m, PartType: p, Standard: "asme", Thickness: th})
				assert.GreaterOrEqual(t, r.Confidence, 50, "%s/%s/%v", m, p, th)
				assert.LessOrEqual(t, r.Confidence, 100, "%s/%s/%v", m, p, th)
			}
		}
	}
}

func TestConfidencePenalties(t *testing.T) {
	t.Run("austenitic stainless", func(t *testing.T) {
		rec := SelectBlock(Request{Material: "stainless_316", PartType: "plate", Standard: "asme", Thickness: 25})
		assert.Equal(t, 90, rec.Confidence)
	})
	t.Run("thin section", func(t *testing.T) {
		rec := SelectBlock(Request{Material: "carbon_steel", PartType: "plate", Standard: "asme", Thickness: 4})
		assert.Equal(t, 85, rec.Confidence)
	})
}

func TestMetalTravelBands(t *testing.T) {
	assert.Equal(t, []float64{20, 40, 60, 80}, MetalTravel(20)) // under 1 in
	assert.Equal(t, []float64{40, 80, 120}, MetalTravel(40))    // 1-2 in
	assert.Equal(t, []float64{80, 160}, MetalTravel(80))        // 2-4 in
	assert.Equal(t, []float64{150}, MetalTravel(150))           // over 4 in
}

func TestMaterialMatchFlag(t *testing.T) {
	steel := SelectBlock(Request{Material: "carbon_steel", PartType: "plate", Standard: "aws", Thickness: 25})
	assert.False(t, steel.Primary.MaterialMatch)
	assert.Equal(t, material.CarbonSteel, steel.Primary.Material)

	ti := SelectBlock(Request{Material: "titanium", PartType: "plate", Standard: "mil2154", Thickness: 25})
	assert.True(t, ti.Primary.MaterialMatch)
}

func TestCodeFromStandard(t *testing.T) {
	tests := []struct {
		standard string
		want     physics.Code
	}{
		{"aws", physics.CodeAWS},
		{"AWS D1.1", physics.CodeAWS},
		{"ASME Section V", physics.CodeASME},
		{"EN 1714", physics.CodeEN1714},
		{"ISO 17640", physics.CodeISO17640},
		{"MIL-STD-2154", physics.CodeMIL2154},
		{"", physics.CodeAWS},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codeFromStandard(tt.standard), "standard %q", tt.standard)
	}
}
