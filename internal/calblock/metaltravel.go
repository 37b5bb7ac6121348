package calblock

import (
	"ut-planner/pkg/units"
)

// travelBand is one row of the metal-travel table: parts up to
// maxThicknessIn get SDHs at the listed multiples of T. These are the
// published standard values; a band's multiples are looked up, never derived.
type travelBand struct {
	maxThicknessIn float64 // 0 = unbounded
	multiples      []float64
}

// Distance-amplitude sets shrink as sections get heavier: thin parts
// calibrate out to 4T, heavy forgings only to T.
var travelBands = []travelBand{
	{1, []float64{1, 2, 3, 4}},
	{2, []float64{1, 2, 3}},
	{4, []float64{1, 2}},
	{0, []float64{1}},
}

// MetalTravel returns the SDH metal-travel distances (mm) for a part
// thickness, banded by the thickness in inches.
func MetalTravel(thicknessMM float64) []float64 {
	tin := units.MMToInches(thicknessMM)
	for _, band := range travelBands {
		if band.maxThicknessIn == 0 || tin <= band.maxThicknessIn {
			out := make([]float64, len(band.multiples))
			for i, m := range band.multiples {
				out[i] = m * thicknessMM
			}
			return out
		}
	}
	return []float64{thicknessMM}
}
