// Package physics implements the acoustic beam calculations behind angle-beam
// planning: Snell's-law refraction, critical angles, skip/leg geometry, beam
// spread, and code-mandated reflector sizing. Every function is pure; angle
// arguments and results are in degrees, lengths in mm, velocities in m/s.
package physics

import (
	"math"

	"ut-planner/internal/material"
)

// WaveMode selects which wave velocity applies in the test material.
type WaveMode string

const (
	ModeLongitudinal WaveMode = "longitudinal"
	ModeShear        WaveMode = "shear"
)

// Velocity returns the wave velocity for the mode in the given material.
func (m WaveMode) Velocity(a material.Acoustics) float64 {
	if m == ModeShear {
		return a.VelocityShear
	}
	return a.VelocityLong
}

// RefractedAngle applies Snell's law sin(t2) = (v2/v1)*sin(t1).
// ok is false when the refracted sine exceeds 1 (total internal reflection);
// that is a normal outcome for angles past the critical angle, not an error.
func RefractedAngle(incidentDeg, v1, v2 float64) (float64, bool) {
	if v1 <= 0 || v2 <= 0 {
		return 0, false
	}
	s := (v2 / v1) * math.Sin(incidentDeg*math.Pi/180)
	if math.Abs(s) > 1 {
		return 0, false
	}
	return math.Asin(s) * 180 / math.Pi, true
}

// WedgeAngleFor computes the wedge (incident) angle that produces the desired
// refracted angle in the test material: the inverse Snell computation.
// Only the longitudinal wave propagates in the wedge. ok is false when no
// incident angle can produce the requested refraction.
func WedgeAngleFor(desiredRefractedDeg float64, wedge material.WedgeMaterial, test material.Material, mode WaveMode) (float64, bool) {
	vWedge := material.WedgeVelocity(wedge)
	vTest := mode.Velocity(material.Lookup(test))
	return RefractedAngle(desiredRefractedDeg, vTest, vWedge)
}

// CriticalAngles holds the two critical incident angles for a wedge/test pair.
// Ok flags are false when the test velocity is below the wedge velocity, in
// which case that critical angle does not exist.
type CriticalAngles struct {
	First    float64 `json:"first"` // longitudinal wave refracts to 90°
	FirstOK  bool    `json:"first_ok"`
	Second   float64 `json:"second"` // shear wave refracts to 90°
	SecondOK bool    `json:"second_ok"`
}

// ComputeCriticalAngles returns the first and second critical angles for a
// wedge material against a test material, each via asin(v_wedge / v_test).
func ComputeCriticalAngles(wedge material.WedgeMaterial, test material.Material) CriticalAngles {
	vWedge := material.WedgeVelocity(wedge)
	a := material.Lookup(test)

	var ca CriticalAngles
	if a.VelocityLong > vWedge {
		ca.First = math.Asin(vWedge/a.VelocityLong) * 180 / math.Pi
		ca.FirstOK = true
	}
	if a.VelocityShear > vWedge {
		ca.Second = math.Asin(vWedge/a.VelocityShear) * 180 / math.Pi
		ca.SecondOK = true
	}
	return ca
}
