package physics

import (
	"math"
)

// Wavelength returns the wavelength in mm for a velocity in m/s and a
// frequency in MHz.
func Wavelength(velocity, frequencyMHz float64) float64 {
	if frequencyMHz <= 0 {
		return 0
	}
	return velocity / (frequencyMHz * 1000)
}

// NearFieldLength returns the near-field (Fresnel) distance in mm:
// N = D^2*f/(4*v), equivalently D^2/(4*lambda).
func NearFieldLength(probeDiameter, frequencyMHz, velocity float64) float64 {
	lambda := Wavelength(velocity, frequencyMHz)
	if lambda <= 0 {
		return 0
	}
	return probeDiameter * probeDiameter / (4 * lambda)
}

// BeamDiameterAtDepth estimates the -6 dB beam diameter at a given depth.
//
// Inside the near field the beam converges from the probe diameter at the
// surface to a waist of half the probe diameter at N, modeled as a linear
// interpolation. Beyond N the beam diverges with the standard
// sin(half-angle) = 1.22*lambda/D far-field approximation. Downstream
// footprint sizing is calibrated against this model, so the 1.22 factor and
// the interpolation must stay as they are.
func BeamDiameterAtDepth(probeDiameter, frequencyMHz, depth, velocity float64) float64 {
	if probeDiameter <= 0 || depth < 0 {
		return probeDiameter
	}
	lambda := Wavelength(velocity, frequencyMHz)
	n := NearFieldLength(probeDiameter, frequencyMHz, velocity)
	if n <= 0 {
		return probeDiameter
	}

	waist := probeDiameter / 2
	if depth <= n {
		return probeDiameter + (waist-probeDiameter)*(depth/n)
	}

	s := 1.22 * lambda / probeDiameter
	if s > 1 {
		s = 1
	}
	halfAngle := math.Asin(s)
	return waist + 2*(depth-n)*math.Tan(halfAngle)
}
