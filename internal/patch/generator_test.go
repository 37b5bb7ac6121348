package patch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ut-planner/internal/oemrules"
	"ut-planner/pkg/geometry"
)

func flatInput() Input {
	return Input{
		PartGeometry:    "plate",
		Dimensions:      Dimensions{Length: 300, Width: 100},
		Footprint:       Footprint{Width: 20, Length: 20},
		OverlapRequired: 15,
		MaxPatchSize:    150,
	}
}

func TestGenerateFlatGrid(t *testing.T) {
	// 300x100 with a 150 mm patch bound must tile exactly 2x1.
	plan := Generate(flatInput())

	require.Len(t, plan.Patches, 2)
	for _, p := range plan.Patches {
		require.Equal(t, ShapeRect, p.Shape)
		assert.InDelta(t, 150.0, p.Rect.Width, 1e-9)
		assert.InDelta(t, 100.0, p.Rect.Height, 1e-9)
		assert.InDelta(t, 17.0, p.ScanIndex, 1e-9) // 20 * (1 - 0.15)
		assert.Equal(t, 7, p.Passes)               // ceil(100/17) + 1
		assert.Equal(t, StatusPlanned, p.Status)
	}
	assert.True(t, plan.MeetsRequirements)
	assert.InDelta(t, 100.0, plan.TotalCoverage, 1e-9)
	assert.NotEmpty(t, plan.ID)
}

func TestGenerateOEMFloor(t *testing.T) {
	// A PW disk request with a lax user overlap must ratchet up to the
	// vendor's 20% category override.
	in := flatInput()
	in.OverlapRequired = 5
	in.Vendor = oemrules.PW
	in.PartCategory = oemrules.PartDisk
	plan := Generate(in)

	require.NotEmpty(t, plan.Patches)
	assert.InDelta(t, 20.0, plan.Patches[0].Overlap, 1e-9)
	assert.InDelta(t, 16.0, plan.Patches[0].ScanIndex, 1e-9) // 20 * 0.8
}

func TestGenerateCylindricalSectors(t *testing.T) {
	plan := Generate(Input{
		PartGeometry: "shaft",
		Dimensions:   Dimensions{OuterDiameter: 200, Length: 120},
		Footprint:    Footprint{Width: 20},
		MaxPatchSize: 150,
	})

	// Circumference pi*200 ~ 628 -> 5 sectors of 72 degrees.
	require.Len(t, plan.Patches, 5)
	for i, p := range plan.Patches {
		require.Equal(t, ShapeArc, p.Shape)
		assert.InDelta(t, 72.0, p.Arc.SpanDegrees(), 1e-9)
		assert.LessOrEqual(t, p.Arc.ArcLength(), 150.0+1e-9)
		want := "C"
		if i%2 == 1 {
			want = "D"
		}
		assert.Equal(t, want, p.Direction, "sector %d alternates by parity", i)
	}
}

func TestGenerateTubular(t *testing.T) {
	t.Run("accessible bore and heavy wall", func(t *testing.T) {
		plan := Generate(Input{
			PartGeometry: "tube",
			Dimensions:   Dimensions{OuterDiameter: 220, InnerDiameter: 180, Length: 100},
			Footprint:    Footprint{Width: 20},
			MaxPatchSize: 200,
		})

		var od, id, end int
		for _, p := range plan.Patches {
			switch p.Surface {
			case "od":
				od++
			case "id":
				id++
			case "end_a", "end_b":
				end++
				require.Equal(t, ShapeAnnular, p.Shape)
				assert.LessOrEqual(t, p.Annular.RadialWidth(), 50.0+1e-9)
			}
		}
		assert.Greater(t, od, 0)
		assert.Greater(t, id, 0, "180 mm bore is accessible")
		// Wall (220-180)/2 = 20 mm > 5 mm: one 20 mm zone per face.
		assert.Equal(t, 2, end)
	})

	t.Run("narrow bore skips ID with warning", func(t *testing.T) {
		plan := Generate(Input{
			PartGeometry: "pipe",
			Dimensions:   Dimensions{OuterDiameter: 60, InnerDiameter: 16, Length: 100},
			Footprint:    Footprint{Width: 10},
		})
		for _, p := range plan.Patches {
			assert.NotEqual(t, "id", p.Surface)
		}
		require.NotEmpty(t, plan.Warnings)
		assert.Contains(t, plan.Warnings[0], "access threshold")
	})

	t.Run("thin wall skips end faces", func(t *testing.T) {
		plan := Generate(Input{
			PartGeometry: "tube",
			Dimensions:   Dimensions{OuterDiameter: 60, InnerDiameter: 54, Length: 100},
			Footprint:    Footprint{Width: 10},
		})
		for _, p := range plan.Patches {
			assert.NotEqual(t, ShapeAnnular, p.Shape)
		}
	})
}

func TestExclusionZones(t *testing.T) {
	t.Run("rectangular overlap reduces coverage", func(t *testing.T) {
		in := flatInput()
		in.ExcludedZones = []geometry.Rect{geometry.NewRect(0, 0, 75, 100)}
		plan := Generate(in)

		require.Len(t, plan.Patches, 2)
		// First patch loses half its area, second is untouched.
		assert.InDelta(t, 50.0, plan.Patches[0].Coverage, 1e-9)
		assert.InDelta(t, 100.0, plan.Patches[1].Coverage, 1e-9)
		assert.InDelta(t, 75.0, plan.TotalCoverage, 1e-9)
	})

	t.Run("curved patches record the limitation", func(t *testing.T) {
		plan := Generate(Input{
			PartGeometry:  "shaft",
			Dimensions:    Dimensions{OuterDiameter: 100, Length: 100},
			Footprint:     Footprint{Width: 10},
			ExcludedZones: []geometry.Rect{geometry.NewRect(0, 0, 10, 10)},
		})
		require.NotEmpty(t, plan.Limitations)
		assert.Contains(t, plan.Limitations[0], "arc and annular")
	})
}

func TestValidatePatchSpeed(t *testing.T) {
	r := geometry.NewRect(0, 0, 100, 100)
	p := &Patch{ID: "P001", Shape: ShapeRect, Rect: &r, ScanSpeed: 250, ScanIndex: 10}
	v := ValidatePatch(p, Constraints{
		Kinematics: &Kinematics{MaxScanSpeed: 200},
		PRF:        1000,
	})
	assert.False(t, v.SpeedOK)
	require.NotEmpty(t, v.Errors)
	assert.Contains(t, v.Errors[0], "scan speed")
}

func TestValidatePatchDwell(t *testing.T) {
	r := geometry.NewRect(0, 0, 100, 100)

	t.Run("below one pulse per point is a hard error", func(t *testing.T) {
		p := &Patch{ID: "P001", Shape: ShapeRect, Rect: &r, ScanSpeed: 100, ScanIndex: 5}
		v := ValidatePatch(p, Constraints{PRF: 15}) // 15*5/100 = 0.75
		assert.False(t, v.DwellOK)
		assert.InDelta(t, 0.75, v.PulsesPerPoint, 1e-9)
		assert.NotEmpty(t, v.Errors)
	})

	t.Run("under three pulses is only a warning", func(t *testing.T) {
		p := &Patch{ID: "P001", Shape: ShapeRect, Rect: &r, ScanSpeed: 100, ScanIndex: 5}
		v := ValidatePatch(p, Constraints{PRF: 40}) // 2.0
		assert.True(t, v.DwellOK)
		assert.NotEmpty(t, v.Warnings)
	})
}

func TestValidatePatchIncidence(t *testing.T) {
	arc := geometry.Arc{Radius: 30, EndAngle: 90, AxialEnd: 100}
	p := &Patch{ID: "P001", Shape: ShapeArc, Arc: &arc, ScanSpeed: 100, ScanIndex: 10}

	t.Run("over the machine limit is an error", func(t *testing.T) {
		// asin(10/30) = 19.5 degrees.
		v := ValidatePatch(p, Constraints{PRF: 1000, ProbeWidth: 20,
			Incidence: &IncidenceConstraints{MaxAngle: 15, CriticalAngle: 10}})
		assert.False(t, v.IncidenceOK)
		assert.InDelta(t, math.Asin(10.0/30.0)*180/math.Pi, v.IncidenceAngle, 0.01)
		assert.NotEmpty(t, v.Errors)
	})

	t.Run("past the critical threshold is a warning", func(t *testing.T) {
		v := ValidatePatch(p, Constraints{PRF: 1000, ProbeWidth: 20,
			Incidence: &IncidenceConstraints{MaxAngle: 25, CriticalAngle: 15}})
		assert.True(t, v.IncidenceOK)
		assert.NotEmpty(t, v.Warnings)
	})

	t.Run("probe wider than the curvature cannot couple", func(t *testing.T) {
		v := ValidatePatch(p, Constraints{PRF: 1000, ProbeWidth: 80})
		assert.False(t, v.IncidenceOK)
	})
}

func TestValidatePatchTravel(t *testing.T) {
	r := geometry.NewRect(0, 0, 400, 100)
	p := &Patch{ID: "P001", Shape: ShapeRect, Rect: &r, ScanSpeed: 100, ScanIndex: 10}
	v := ValidatePatch(p, Constraints{PRF: 1000,
		Kinematics: &Kinematics{MaxScanSpeed: 200, TravelX: 300, TravelY: 300}})
	assert.False(t, v.TravelOK)
	assert.NotEmpty(t, v.Errors)
}

func TestPlanErrorsGateMeetsRequirements(t *testing.T) {
	in := flatInput()
	in.PRF = 10 // PPP = 10*17/100 = 1.7 -> warning; speed ok
	plan := Generate(in)
	assert.True(t, plan.MeetsRequirements, "warnings alone must not fail the plan")
	assert.NotEmpty(t, plan.Warnings)

	in.PRF = 5 // PPP = 0.85 -> hard error
	plan = Generate(in)
	assert.False(t, plan.MeetsRequirements)
	assert.NotEmpty(t, plan.Errors)
}

func TestOptimizationScore(t *testing.T) {
	t.Run("clean plan scores full marks", func(t *testing.T) {
		plan := Generate(flatInput())
		assert.Equal(t, 100, plan.OptimizationScore)
	})

	t.Run("warning patches cost five points each", func(t *testing.T) {
		in := flatInput()
		in.PRF = 10 // both patches warn on dwell
		plan := Generate(in)
		assert.Equal(t, 90, plan.OptimizationScore)
	})

	t.Run("patch count beyond twenty costs two points each", func(t *testing.T) {
		plan := &Plan{Patches: make([]Patch, 25)}
		for i := range plan.Patches {
			plan.Patches[i].Status = StatusPlanned
		}
		assert.Equal(t, 90, optimizationScore(plan))
	})

	t.Run("time overrun slides the score down", func(t *testing.T) {
		plan := &Plan{TotalTime: timeBudgetSeconds + 1500}
		assert.Equal(t, 95, optimizationScore(plan))
	})

	t.Run("score floors at zero", func(t *testing.T) {
		plan := &Plan{Patches: make([]Patch, 30), TotalTime: 1e6}
		for i := range plan.Patches {
			plan.Patches[i].Status = StatusWarning
		}
		assert.Equal(t, 0, optimizationScore(plan))
	})
}

func TestComplexGeometryDefaultsToFlat(t *testing.T) {
	plan := Generate(Input{
		PartGeometry: "bracket casting",
		Dimensions:   Dimensions{Length: 100, Width: 100},
		Footprint:    Footprint{Width: 10},
	})
	require.NotEmpty(t, plan.Patches)
	assert.Equal(t, ShapeRect, plan.Patches[0].Shape)
	require.NotEmpty(t, plan.Warnings)
	assert.Contains(t, plan.Warnings[0], "not tileable")
}
