package explorer

import "slices"

var regionOrder = []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}

var regionSubregions = map[string][]string{
	"Africa":   {"Northern Africa", "Sub-Saharan Africa"},
	"Americas": {"Caribbean", "Central America", "South America", "North America"},
	"Asia":     {"Central Asia", "East Asia", "South-Eastern Asia", "Southern Asia", "Western Asia"},
	"Europe":   {"Eastern Europe", "Northern Europe", "Southern Europe", "Western Europe"},
	"Oceania":  {"Australia and New Zealand", "Melanesia", "Micronesia", "Polynesia"},
}

// Regions returns the selectable regions in display order.
func Regions() []string {
	return slices.Clone(regionOrder)
}

// Subregions returns the subregion options offered for region, or nil when region is unset or unknown.
func Subregions(region string) []string {
	return slices.Clone(regionSubregions[region])
}

func IsRegion(region string) bool {
	_, ok := regionSubregions[region]
	return ok
}
