package explorer

import "country-explorer/internal/model"

// PageSize is the number of items appended per page.
const PageSize = 20

// Page returns the cursor-th page of countries. Pages past the end are empty.
func Page(countries []model.Country, cursor int) []model.Country {
	if cursor < 0 {
		return nil
	}
	start := cursor * PageSize
	if start >= len(countries) {
		return nil
	}
	end := min(start+PageSize, len(countries))
	return countries[start:end]
}
