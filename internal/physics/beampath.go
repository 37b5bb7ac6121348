package physics

import (
	"math"
)

// PathResult describes the zig-zag geometry of an angled beam in a plate of
// the given thickness. All distances in mm.
type PathResult struct {
	Thickness    float64 `json:"thickness"`
	Angle        float64 `json:"angle"` // refracted angle, degrees
	HalfSkip     float64 `json:"half_skip"`
	SkipDistance float64 `json:"skip_distance"`
	LegSoundPath float64 `json:"leg_sound_path"` // sound path of one full leg

	// Populated by BeamPathToDepth.
	TargetDepth     float64 `json:"target_depth,omitempty"`
	LegNumber       int     `json:"leg_number,omitempty"`
	DepthAtLeg      float64 `json:"depth_at_leg,omitempty"`
	SurfaceDistance float64 `json:"surface_distance,omitempty"`
	SoundPath       float64 `json:"sound_path,omitempty"` // total path to target
}

// BeamPath computes the skip geometry for a refracted angle in a plate:
// half skip = T*tan(a), full skip = 2*half skip, one-leg sound path =
// T/cos(a). Returns the zero value if thickness or angle is out of range.
func BeamPath(thickness, refractedDeg float64) PathResult {
	if thickness <= 0 || refractedDeg <= 0 || refractedDeg >= 90 {
		return PathResult{Thickness: thickness, Angle: refractedDeg}
	}
	rad := refractedDeg * math.Pi / 180
	half := thickness * math.Tan(rad)
	return PathResult{
		Thickness:    thickness,
		Angle:        refractedDeg,
		HalfSkip:     half,
		SkipDistance: 2 * half,
		LegSoundPath: thickness / math.Cos(rad),
	}
}

// BeamPathToDepth extends BeamPath with the leg geometry needed to place the
// probe for a reflector at targetDepth.
//
// The beam bounces between the surfaces, so the leg is found by dividing the
// accumulated vertical travel by the thickness: legNumber =
// floor(target/T)+1. Odd legs descend and measure depth directly from the
// within-leg remainder; even legs ascend and measure depth as T - remainder.
// A remainder of exactly zero belongs to the end of the previous leg, so the
// far surface at target == T is leg 1 with depth T.
func BeamPathToDepth(thickness, refractedDeg, targetDepth float64) PathResult {
	r := BeamPath(thickness, refractedDeg)
	if r.HalfSkip == 0 || targetDepth < 0 {
		return r
	}

	leg := int(math.Floor(targetDepth/thickness)) + 1
	remainder := targetDepth - float64(leg-1)*thickness
	if remainder == 0 && targetDepth > 0 {
		leg--
		remainder = thickness
	}

	depth := remainder
	if leg%2 == 0 {
		depth = thickness - remainder
	}

	rad := refractedDeg * math.Pi / 180
	r.TargetDepth = targetDepth
	r.LegNumber = leg
	r.DepthAtLeg = depth
	r.SurfaceDistance = float64(leg-1)*r.HalfSkip + remainder*math.Tan(rad)
	r.SoundPath = (float64(leg-1)*thickness + remainder) / math.Cos(rad)
	return r
}

// DepthFromSurfaceDistance inverts BeamPathToDepth: given the horizontal
// distance from the index point, it returns the depth the beam is at and
// which leg it is on. Round-trip stable with BeamPathToDepth for the same
// leg.
func DepthFromSurfaceDistance(surfaceDistance, refractedDeg, thickness float64) (depth float64, leg int) {
	if thickness <= 0 || refractedDeg <= 0 || refractedDeg >= 90 || surfaceDistance < 0 {
		return 0, 0
	}
	rad := refractedDeg * math.Pi / 180
	vertical := surfaceDistance / math.Tan(rad)

	leg = int(math.Floor(vertical/thickness)) + 1
	remainder := vertical - float64(leg-1)*thickness
	if remainder == 0 && vertical > 0 {
		leg--
		remainder = thickness
	}

	if leg%2 == 0 {
		return thickness - remainder, leg
	}
	return remainder, leg
}
