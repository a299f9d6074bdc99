// Package view turns countries into display-ready values for the list grid and the details page.
package view

import (
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"country-explorer/internal/model"
)

// NotAvailable is shown in place of any missing optional field.
const NotAvailable = "N/A"

// Item is one rendered card of the country grid.
type Item struct {
	Name       string `json:"name"`
	Flag       string `json:"flag,omitempty"`
	FlagURL    string `json:"flag_url"`
	FlagAlt    string `json:"flag_alt"`
	Capital    string `json:"capital"`
	Region     string `json:"region"`
	Subregion  string `json:"subregion"`
	Population string `json:"population"`
	Area       string `json:"area"`
}

func NewItem(c model.Country) Item {
	return Item{
		Name:       c.Name.Common,
		Flag:       c.Flag,
		FlagURL:    c.Flags.PNG,
		FlagAlt:    "Flag of " + c.Name.Common,
		Capital:    Capital(c),
		Region:     c.Region,
		Subregion:  c.Subregion,
		Population: Population(c),
		Area:       Area(c),
	}
}

func NewItems(countries []model.Country) []Item {
	items := make([]Item, 0, len(countries))
	for _, c := range countries {
		items = append(items, NewItem(c))
	}
	return items
}

func Capital(c model.Country) string {
	if len(c.Capital) == 0 || c.Capital[0] == "" {
		return NotAvailable
	}
	return c.Capital[0]
}

// Population formats with grouped digits, e.g. 215,000,000.
func Population(c model.Country) string {
	return humanize.Comma(c.Population)
}

// Area formats with grouped digits and a km² suffix. Zero counts as missing.
func Area(c model.Country) string {
	area := c.AreaOrZero()
	if area == 0 {
		return NotAvailable
	}
	return humanize.CommafWithDigits(area, 3) + " km²"
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, ", ")
}

// sortedKeys gives map-backed collections a stable display order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
