package explorer

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"country-explorer/internal/model"
)

// Sort returns a sorted copy of countries. An empty or unknown key keeps input order.
func Sort(countries []model.Country, key model.SortKey) []model.Country {
	out := slices.Clone(countries)

	var compare func(a, b model.Country) int
	switch key {
	case model.SortNameAsc, model.SortNameDesc:
		// Collators keep internal buffers, so each call gets its own.
		col := collate.New(language.Und)
		compare = func(a, b model.Country) int {
			return col.CompareString(a.Name.Common, b.Name.Common)
		}
	case model.SortPopulationAsc, model.SortPopulationDesc:
		compare = func(a, b model.Country) int {
			return cmp.Compare(a.Population, b.Population)
		}
	case model.SortAreaAsc, model.SortAreaDesc:
		compare = func(a, b model.Country) int {
			return cmp.Compare(a.AreaOrZero(), b.AreaOrZero())
		}
	default:
		return out
	}

	if key == model.SortNameDesc || key == model.SortPopulationDesc || key == model.SortAreaDesc {
		asc := compare
		compare = func(a, b model.Country) int { return asc(b, a) }
	}

	slices.SortStableFunc(out, compare)
	return out
}
