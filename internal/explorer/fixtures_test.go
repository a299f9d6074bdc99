package explorer

import (
	"fmt"

	"country-explorer/internal/model"
)

func country(name, region, subregion string, population int64) model.Country {
	return model.Country{
		Name:       model.CountryName{Common: name},
		Region:     region,
		Subregion:  subregion,
		Population: population,
		Flags:      model.Flags{PNG: "https://flagcdn.com/w320/" + name + ".png"},
	}
}

func withArea(c model.Country, area float64) model.Country {
	c.Area = &area
	return c
}

func names(countries []model.Country) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Name.Common)
	}
	return out
}

// numbered builds n countries named C000, C001, ... with distinct populations.
func numbered(n int) []model.Country {
	out := make([]model.Country, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, country(fmt.Sprintf("C%03d", i), "Europe", "Western Europe", int64(1000+i)))
	}
	return out
}

func sample() []model.Country {
	return []model.Country{
		withArea(country("Brazil", "Americas", "South America", 215_000_000), 8_515_767),
		withArea(country("Chile", "Americas", "South America", 19_000_000), 756_102),
		withArea(country("Chad", "Africa", "Middle Africa", 17_000_000), 1_284_000),
		withArea(country("Monaco", "Europe", "Western Europe", 39_000), 2.02),
		withArea(country("Norway", "Europe", "Northern Europe", 5_400_000), 323_802),
		country("Antarctica", "Antarctic", "", 1_000),
		withArea(country("Canada", "Americas", "North America", 38_000_000), 9_984_670),
		withArea(country("India", "Asia", "Southern Asia", 1_380_000_000), 3_287_590),
	}
}
