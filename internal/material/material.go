// Package material provides the immutable acoustic reference tables used by
// the planning engine: per-material velocities and standard wedge
// configurations. Everything here is static data registered at init and never
// mutated afterwards.
package material

import (
	"strings"
)

// Material identifies a test material. The set is closed; free-form input is
// mapped onto it by Parse, falling back to Custom.
type Material string

const (
	CarbonSteel   Material = "carbon_steel"
	Stainless304  Material = "stainless_304"
	Stainless316  Material = "stainless_316"
	Aluminum6061  Material = "aluminum_6061"
	Aluminum7075  Material = "aluminum_7075"
	Titanium6Al4V Material = "titanium_6al4v"
	Inconel718    Material = "inconel_718"
	Copper        Material = "copper"
	Brass         Material = "brass"
	Magnesium     Material = "magnesium"
	Custom        Material = "custom"
)

// Acoustics holds the acoustic properties of a material.
// Velocities are in m/s, density in kg/m^3, impedance in MRayl.
type Acoustics struct {
	Name          string   `json:"name"`
	Material      Material `json:"material"`
	VelocityLong  float64  `json:"velocity_long"`  // longitudinal wave
	VelocityShear float64  `json:"velocity_shear"` // shear wave
	Density       float64  `json:"density"`
	Impedance     float64  `json:"impedance"`
}

// Registry of acoustic properties keyed by material.
var registry = map[Material]Acoustics{
	CarbonSteel:   {Name: "Carbon Steel", Material: CarbonSteel, VelocityLong: 5920, VelocityShear: 3240, Density: 7850, Impedance: 46.5},
	Stainless304:  {Name: "Stainless 304", Material: Stainless304, VelocityLong: 5790, VelocityShear: 3100, Density: 8000, Impedance: 45.7},
	Stainless316:  {Name: "Stainless 316", Material: Stainless316, VelocityLong: 5720, VelocityShear: 3070, Density: 8000, Impedance: 45.8},
	Aluminum6061:  {Name: "Aluminum 6061", Material: Aluminum6061, VelocityLong: 6320, VelocityShear: 3130, Density: 2700, Impedance: 17.1},
	Aluminum7075:  {Name: "Aluminum 7075", Material: Aluminum7075, VelocityLong: 6350, VelocityShear: 3100, Density: 2810, Impedance: 17.9},
	Titanium6Al4V: {Name: "Titanium 6Al-4V", Material: Titanium6Al4V, VelocityLong: 6100, VelocityShear: 3120, Density: 4420, Impedance: 27.0},
	Inconel718:    {Name: "Inconel 718", Material: Inconel718, VelocityLong: 5820, VelocityShear: 3020, Density: 8190, Impedance: 47.7},
	Copper:        {Name: "Copper", Material: Copper, VelocityLong: 4660, VelocityShear: 2330, Density: 8930, Impedance: 41.6},
	Brass:         {Name: "Brass", Material: Brass, VelocityLong: 4430, VelocityShear: 2120, Density: 8500, Impedance: 37.7},
	Magnesium:     {Name: "Magnesium", Material: Magnesium, VelocityLong: 5770, VelocityShear: 3050, Density: 1740, Impedance: 10.0},
	// Custom materials get steel-like defaults; the selector penalizes the
	// confidence score instead of refusing to plan.
	Custom: {Name: "Custom", Material: Custom, VelocityLong: 5920, VelocityShear: 3240, Density: 7850, Impedance: 46.5},
}

// aliases maps common free-form names onto the closed enumeration.
var aliases = map[string]Material{
	"steel":           CarbonSteel,
	"mild steel":      CarbonSteel,
	"cs":              CarbonSteel,
	"304":             Stainless304,
	"ss304":           Stainless304,
	"316":             Stainless316,
	"ss316":           Stainless316,
	"stainless":       Stainless304,
	"stainless steel": Stainless304,
	"aluminum":        Aluminum6061,
	"aluminium":       Aluminum6061,
	"al":              Aluminum6061,
	"6061":            Aluminum6061,
	"7075":            Aluminum7075,
	"titanium":        Titanium6Al4V,
	"ti":              Titanium6Al4V,
	"ti-6al-4v":       Titanium6Al4V,
	"inconel":         Inconel718,
	"in718":           Inconel718,
	"mag":             Magnesium,
}

// Parse maps a free-form material name onto the closed enumeration.
// Matching is case-insensitive: exact enum values first, then the alias
// table, then per-token alias matches and enum substrings. Anything
// unrecognized becomes Custom so that planning always proceeds.
func Parse(name string) Material {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Custom
	}
	key = strings.ReplaceAll(key, " ", "_")
	if _, ok := registry[Material(key)]; ok {
		return Material(key)
	}
	spaced := strings.ReplaceAll(key, "_", " ")
	if m, ok := aliases[spaced]; ok {
		return m
	}
	// Whole tokens only; substring hits on short aliases like "ti" or "al"
	// would misclassify arbitrary names.
	for _, tok := range strings.Fields(spaced) {
		if m, ok := aliases[tok]; ok {
			return m
		}
	}
	for m := range registry {
		if strings.Contains(string(m), key) || strings.Contains(key, string(m)) {
			return m
		}
	}
	return Custom
}

// Lookup returns the acoustic properties for a material. Unknown materials
// return the Custom entry.
func Lookup(m Material) Acoustics {
	if a, ok := registry[m]; ok {
		return a
	}
	return registry[Custom]
}

// IsAustenitic reports whether the material is an austenitic stainless
// steel. Coarse grain structure in austenitic welds scatters ultrasound, so
// the selector lowers its confidence for these.
func IsAustenitic(m Material) bool {
	return m == Stainless304 || m == Stainless316
}

// All returns every registered material in no particular order.
func All() []Acoustics {
	out := make([]Acoustics, 0, len(registry))
	for _, a := range registry {
		out = append(out, a)
	}
	return out
}
