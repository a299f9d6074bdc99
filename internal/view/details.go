package view

import "country-explorer/internal/model"

// Details holds the labeled fields of the details page. Every field is populated,
// falling back to NotAvailable independently of the others.
type Details struct {
	Name       string `json:"name"`
	FlagURL    string `json:"flag_url"`
	Capital    string `json:"capital"`
	Region     string `json:"region"`
	Subregion  string `json:"subregion"`
	Population string `json:"population"`
	Area       string `json:"area"`
	Languages  string `json:"languages"`
	Currencies string `json:"currencies"`
	Timezones  string `json:"timezones"`
	TLD        string `json:"tld"`
	DialCodes  string `json:"dial_codes"`
}

func NewDetails(c model.Country) Details {
	languages := make([]string, 0, len(c.Languages))
	for _, code := range sortedKeys(c.Languages) {
		languages = append(languages, c.Languages[code])
	}

	currencies := make([]string, 0, len(c.Currencies))
	for _, code := range sortedKeys(c.Currencies) {
		currencies = append(currencies, c.Currencies[code].Name)
	}

	return Details{
		Name:       c.Name.Common,
		FlagURL:    c.Flags.SVG,
		Capital:    Capital(c),
		Region:     orNA(c.Region),
		Subregion:  orNA(c.Subregion),
		Population: Population(c),
		Area:       Area(c),
		Languages:  joinOrNA(languages),
		Currencies: joinOrNA(currencies),
		Timezones:  joinOrNA(c.Timezones),
		TLD:        joinOrNA(c.TLD),
		DialCodes:  joinOrNA(c.DialCodes()),
	}
}

// Fields returns label/value pairs in display order.
func (d Details) Fields() [][2]string {
	return [][2]string{
		{"Capital", d.Capital},
		{"Region", d.Region},
		{"Subregion", d.Subregion},
		{"Population", d.Population},
		{"Area", d.Area},
		{"Languages", d.Languages},
		{"Currencies", d.Currencies},
		{"Timezones", d.Timezones},
		{"Top-level domains", d.TLD},
		{"Dial codes", d.DialCodes},
	}
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
