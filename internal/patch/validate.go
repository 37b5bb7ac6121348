package patch

import (
	"fmt"
	"math"
)

// Validation defaults when the request carries no explicit constraints.
const (
	defaultMinPPP        = 1.0
	defaultWarnPPP       = 3.0
	defaultMaxIncidence  = 12.0
	defaultWarnIncidence = 8.0
)

// Validation holds the per-check outcome for one patch. Errors are hard
// violations; warnings are advisory and never block the plan.
type Validation struct {
	SpeedOK     bool `json:"speed_ok"`
	DwellOK     bool `json:"dwell_ok"`
	IncidenceOK bool `json:"incidence_ok"`
	CoverageOK  bool `json:"coverage_ok"`
	TravelOK    bool `json:"travel_ok"`

	PulsesPerPoint float64 `json:"pulses_per_point"`
	IncidenceAngle float64 `json:"incidence_angle,omitempty"`

	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Constraints bundles the machine and instrument limits a patch is checked
// against.
type Constraints struct {
	Kinematics     *Kinematics
	Dwell          *DwellConstraints
	Incidence      *IncidenceConstraints
	PRF            float64
	ProbeWidth     float64
	CoverageTarget float64 // percent
}

// ValidatePatch checks one patch against the scanner and instrument limits:
// scan speed, dwell time (pulses per point), incidence angle on curved
// surfaces, coverage, and travel envelope.
func ValidatePatch(p *Patch, c Constraints) Validation {
	v := Validation{SpeedOK: true, DwellOK: true, IncidenceOK: true, CoverageOK: true, TravelOK: true}

	if c.Kinematics != nil && c.Kinematics.MaxScanSpeed > 0 && p.ScanSpeed > c.Kinematics.MaxScanSpeed {
		v.SpeedOK = false
		v.Errors = append(v.Errors, fmt.Sprintf(
			"%s: scan speed %.1f mm/s exceeds machine limit %.1f mm/s", p.ID, p.ScanSpeed, c.Kinematics.MaxScanSpeed))
	}

	v.PulsesPerPoint = pulsesPerPoint(c.PRF, p.ScanIndex, p.ScanSpeed)
	minPPP, warnPPP := defaultMinPPP, defaultWarnPPP
	if c.Dwell != nil {
		if c.Dwell.MinPulsesPerPoint > 0 {
			minPPP = c.Dwell.MinPulsesPerPoint
		}
		if c.Dwell.WarnPulsesPerPoint > 0 {
			warnPPP = c.Dwell.WarnPulsesPerPoint
		}
	}
	if v.PulsesPerPoint < minPPP {
		v.DwellOK = false
		v.Errors = append(v.Errors, fmt.Sprintf(
			"%s: %.2f pulses per point is below the minimum %.0f; raise PRF or slow the scan", p.ID, v.PulsesPerPoint, minPPP))
	} else if v.PulsesPerPoint < warnPPP {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"%s: %.2f pulses per point is marginal (recommended at least %.0f)", p.ID, v.PulsesPerPoint, warnPPP))
	}

	if p.Shape == ShapeArc && c.ProbeWidth > 0 {
		maxAngle, warnAngle := defaultMaxIncidence, defaultWarnIncidence
		if c.Incidence != nil {
			if c.Incidence.MaxAngle > 0 {
				maxAngle = c.Incidence.MaxAngle
			}
			if c.Incidence.CriticalAngle > 0 {
				warnAngle = c.Incidence.CriticalAngle
			}
		}
		s := (c.ProbeWidth / 2) / p.Arc.Radius
		if s >= 1 {
			v.IncidenceOK = false
			v.IncidenceAngle = 90
			v.Errors = append(v.Errors, fmt.Sprintf(
				"%s: probe width %.1f mm cannot couple to radius %.1f mm", p.ID, c.ProbeWidth, p.Arc.Radius))
		} else {
			v.IncidenceAngle = math.Asin(s) * 180 / math.Pi
			if v.IncidenceAngle > maxAngle {
				v.IncidenceOK = false
				v.Errors = append(v.Errors, fmt.Sprintf(
					"%s: incidence angle %.1f° exceeds the machine limit %.1f°", p.ID, v.IncidenceAngle, maxAngle))
			} else if v.IncidenceAngle > warnAngle {
				v.Warnings = append(v.Warnings, fmt.Sprintf(
					"%s: incidence angle %.1f° is past the critical threshold %.1f°", p.ID, v.IncidenceAngle, warnAngle))
			}
		}
	}

	if c.CoverageTarget > 0 && p.Coverage < 0.95*c.CoverageTarget {
		v.CoverageOK = false
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"%s: patch coverage %.1f%% is below 95%% of the %.1f%% target", p.ID, p.Coverage, c.CoverageTarget))
	}

	if c.Kinematics != nil && !withinTravel(p, c.Kinematics) {
		v.TravelOK = false
		v.Errors = append(v.Errors, fmt.Sprintf("%s: patch extent exceeds machine travel limits", p.ID))
	}

	return v
}

// pulsesPerPoint is the number of pulses fired while the probe crosses one
// index step.
func pulsesPerPoint(prf, scanIndex, scanSpeed float64) float64 {
	if scanSpeed <= 0 {
		return 0
	}
	return prf * scanIndex / scanSpeed
}

// withinTravel checks the patch extent against the axis travel limits,
// unrolling curved patches onto the scan plane.
func withinTravel(p *Patch, k *Kinematics) bool {
	if k.TravelX <= 0 && k.TravelY <= 0 {
		return true
	}
	var extentX, extentY float64
	switch p.Shape {
	case ShapeArc:
		extentX = p.Arc.ArcLength()
		extentY = p.Arc.AxialLength()
	case ShapeAnnular:
		extentX = 2 * p.Annular.OuterRadius
		extentY = 2 * p.Annular.OuterRadius
	default:
		extentX = p.Rect.X + p.Rect.Width
		extentY = p.Rect.Y + p.Rect.Height
	}
	if k.TravelX > 0 && extentX > k.TravelX {
		return false
	}
	if k.TravelY > 0 && extentY > k.TravelY {
		return false
	}
	return true
}

// validateAll runs per-patch validation, folding errors and warnings into
// the plan and marking affected patches.
func (g *generator) validateAll() {
	c := Constraints{
		Kinematics:     g.in.Kinematics,
		Dwell:          g.in.Dwell,
		Incidence:      g.in.Incidence,
		PRF:            g.prf,
		ProbeWidth:     g.in.Footprint.Width,
		CoverageTarget: g.coverage,
	}
	for i := range g.plan.Patches {
		p := &g.plan.Patches[i]
		v := ValidatePatch(p, c)
		if len(v.Errors) > 0 {
			g.plan.Errors = append(g.plan.Errors, v.Errors...)
		}
		if len(v.Warnings) > 0 {
			p.Warnings = append(p.Warnings, v.Warnings...)
			g.plan.Warnings = append(g.plan.Warnings, v.Warnings...)
		}
		if len(v.Errors) > 0 || len(v.Warnings) > 0 {
			p.Status = StatusWarning
		}
	}
}
