package oemrules

import (
	"strings"
)

// standardVendors maps known governing-standard designations to the vendor
// whose overrides they carry. Designations not listed fall through to the
// prefix table, then to Generic.
var standardVendors = map[string]Vendor{
	// Pratt & Whitney nondestructive inspection procedures
	"NDIP-1101": PW,
	"NDIP-1102": PW,
	"NDIP-1220": PW,
	// GE Aviation process specifications
	"P3TF31": GE,
	"P3TF45": GE,
	// Rolls-Royce engineering specifications
	"RRES-90061": RR,
	"RRES-90062": RR,
}

// vendorPrefixes catches whole families of vendor documents.
var vendorPrefixes = []struct {
	prefix string
	vendor Vendor
}{
	{"NDIP", PW},
	{"PWA", PW},
	{"P3TF", GE},
	{"GEK", GE},
	{"RRES", RR},
	{"RPS", RR},
}

// VendorForStandard resolves the OEM vendor that governs a standard
// designation. Generic aerospace and structural standards (AMS, ASTM, AWS,
// ASME, ISO, EN, MIL) map to Generic.
func VendorForStandard(designation string) Vendor {
	key := strings.ToUpper(strings.TrimSpace(designation))
	key = strings.ReplaceAll(key, " ", "-")
	if v, ok := standardVendors[key]; ok {
		return v
	}
	for _, p := range vendorPrefixes {
		if strings.HasPrefix(key, p.prefix) {
			return p.vendor
		}
	}
	return Generic
}
