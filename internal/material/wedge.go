package material

// WedgeMaterial identifies the wedge (couplant path) material of an
// angle-beam probe assembly.
type WedgeMaterial string

const (
	WedgeRexolite WedgeMaterial = "rexolite"
	WedgeAcrylic  WedgeMaterial = "acrylic"
	WedgeWater    WedgeMaterial = "water" // immersion
)

// WedgeVelocity returns the longitudinal velocity (m/s) in a wedge material.
// Only longitudinal waves propagate in the plastic wedge.
func WedgeVelocity(w WedgeMaterial) float64 {
	switch w {
	case WedgeAcrylic:
		return 2730
	case WedgeWater:
		return 1480
	default:
		return 2337 // rexolite
	}
}

// WedgeSpec describes one standard wedge/transducer configuration.
// Dimensions in mm, frequency in MHz, angles in degrees.
type WedgeSpec struct {
	Name            string        `json:"name"`
	WedgeAngle      float64       `json:"wedge_angle"` // incident angle in the wedge
	WedgeMaterial   WedgeMaterial `json:"wedge_material"`
	TargetRefracted float64       `json:"target_refracted"` // refracted shear angle in steel
	Frequency       float64       `json:"frequency"`
	ElementSize     float64       `json:"element_size"`
	NearField       float64       `json:"near_field"`
}

// wedgeCatalog lists the standard shear-wave wedges stocked for contact
// testing of steel, plus a straight-beam entry. Wedge angles are the nominal
// rexolite-on-steel values.
var wedgeCatalog = []WedgeSpec{
	{Name: "Straight 0°", WedgeAngle: 0, WedgeMaterial: WedgeRexolite, TargetRefracted: 0, Frequency: 5.0, ElementSize: 12.7, NearField: 33.9},
	{Name: "SW45 2.25MHz", WedgeAngle: 30.7, WedgeMaterial: WedgeRexolite, TargetRefracted: 45, Frequency: 2.25, ElementSize: 12.7, NearField: 28.0},
	{Name: "SW45 5MHz", WedgeAngle: 30.7, WedgeMaterial: WedgeRexolite, TargetRefracted: 45, Frequency: 5.0, ElementSize: 9.5, NearField: 34.8},
	{Name: "SW60 2.25MHz", WedgeAngle: 38.6, WedgeMaterial: WedgeRexolite, TargetRefracted: 60, Frequency: 2.25, ElementSize: 12.7, NearField: 28.0},
	{Name: "SW60 5MHz", WedgeAngle: 38.6, WedgeMaterial: WedgeRexolite, TargetRefracted: 60, Frequency: 5.0, ElementSize: 9.5, NearField: 34.8},
	{Name: "SW70 2.25MHz", WedgeAngle: 43.1, WedgeMaterial: WedgeRexolite, TargetRefracted: 70, Frequency: 2.25, ElementSize: 12.7, NearField: 28.0},
	{Name: "SW70 5MHz", WedgeAngle: 43.1, WedgeMaterial: WedgeRexolite, TargetRefracted: 70, Frequency: 5.0, ElementSize: 9.5, NearField: 34.8},
	{Name: "SW45 10MHz", WedgeAngle: 30.7, WedgeMaterial: WedgeRexolite, TargetRefracted: 45, Frequency: 10.0, ElementSize: 6.35, NearField: 31.1},
}

// Wedges returns the standard wedge catalog.
func Wedges() []WedgeSpec {
	out := make([]WedgeSpec, len(wedgeCatalog))
	copy(out, wedgeCatalog)
	return out
}

// WedgeForAngle returns the catalog wedge whose target refracted angle is
// closest to the requested angle, preferring the requested frequency when
// more than one wedge hits the same angle.
func WedgeForAngle(refractedDeg, frequency float64) WedgeSpec {
	best := wedgeCatalog[0]
	bestDelta := -1.0
	for _, w := range wedgeCatalog {
		delta := abs(w.TargetRefracted - refractedDeg)
		if bestDelta < 0 || delta < bestDelta ||
			(delta == bestDelta && abs(w.Frequency-frequency) < abs(best.Frequency-frequency)) {
			best = w
			bestDelta = delta
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
