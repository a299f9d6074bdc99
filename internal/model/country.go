package model

type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt,omitempty"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// IDD is the international direct dialing prefix, e.g. root "+5" with suffix "5" for Brazil.
type IDD struct {
	Root     string   `json:"root,omitempty"`
	Suffixes []string `json:"suffixes,omitempty"`
}

// Country mirrors a record of the REST Countries v3.1 API.
type Country struct {
	Name         CountryName         `json:"name"`
	CCA2         string              `json:"cca2,omitempty"`
	Flag         string              `json:"flag,omitempty"` // emoji
	Flags        Flags               `json:"flags"`
	Region       string              `json:"region"`
	Subregion    string              `json:"subregion,omitempty"`
	Population   int64               `json:"population"`
	Area         *float64            `json:"area,omitempty"`
	Capital      []string            `json:"capital,omitempty"`
	Languages    map[string]string   `json:"languages,omitempty"`
	Currencies   map[string]Currency `json:"currencies,omitempty"`
	Timezones    []string            `json:"timezones,omitempty"`
	TLD          []string            `json:"tld,omitempty"`
	CallingCodes []string            `json:"callingCodes,omitempty"`
	IDD          *IDD                `json:"idd,omitempty"`
}

// AreaOrZero returns the area in km², treating a missing value as 0.
func (c Country) AreaOrZero() float64 {
	if c.Area == nil {
		return 0
	}
	return *c.Area
}

// DialCodes returns callingCodes when present, otherwise codes derived from idd.
func (c Country) DialCodes() []string {
	if len(c.CallingCodes) > 0 {
		return c.CallingCodes
	}
	if c.IDD == nil || c.IDD.Root == "" {
		return nil
	}
	if len(c.IDD.Suffixes) == 0 {
		return []string{c.IDD.Root}
	}
	codes := make([]string, 0, len(c.IDD.Suffixes))
	for _, suffix := range c.IDD.Suffixes {
		codes = append(codes, c.IDD.Root+suffix)
	}
	return codes
}
