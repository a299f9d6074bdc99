package explorer

import (
	"strings"

	"country-explorer/internal/model"
)

// Filter returns the countries matching every predicate of criteria, in their original order.
func Filter(countries []model.Country, criteria model.Criteria) []model.Country {
	search := strings.ToLower(criteria.Search)

	out := make([]model.Country, 0, len(countries))
	for _, c := range countries {
		if criteria.Region != "" && c.Region != criteria.Region {
			continue
		}
		if criteria.Subregion != "" && c.Subregion != criteria.Subregion {
			continue
		}
		if !criteria.Population.Contains(c.Population) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name.Common), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}
