package model

import "fmt"

// Bracket is a population range used as a filter predicate. The empty bracket matches everything.
type Bracket string

const (
	BracketNone         Bracket = ""
	BracketLessThan1M   Bracket = "lessThan1M"
	Bracket1Mto10M      Bracket = "1Mto10M"
	Bracket10Mto100M    Bracket = "10Mto100M"
	BracketMoreThan100M Bracket = "moreThan100M"
)

// Brackets lists the selectable brackets in display order, starting with "none".
var Brackets = []Bracket{BracketNone, BracketLessThan1M, Bracket1Mto10M, Bracket10Mto100M, BracketMoreThan100M}

// Contains reports whether population falls in the bracket.
func (b Bracket) Contains(population int64) bool {
	switch b {
	case BracketLessThan1M:
		return population < 1_000_000
	case Bracket1Mto10M:
		return population >= 1_000_000 && population < 10_000_000
	case Bracket10Mto100M:
		return population >= 10_000_000 && population < 100_000_000
	case BracketMoreThan100M:
		return population >= 100_000_000
	default:
		return true
	}
}

func (b Bracket) Label() string {
	switch b {
	case BracketLessThan1M:
		return "< 1M"
	case Bracket1Mto10M:
		return "1M - 10M"
	case Bracket10Mto100M:
		return "10M - 100M"
	case BracketMoreThan100M:
		return ">= 100M"
	default:
		return "Any population"
	}
}

func ParseBracket(s string) (Bracket, error) {
	for _, b := range Brackets {
		if string(b) == s {
			return b, nil
		}
	}
	return BracketNone, fmt.Errorf("%w: unknown population bracket %q", ErrInvalidCriteria, s)
}

// SortKey selects one of the comparator strategies. The empty key keeps input order.
type SortKey string

const (
	SortNone           SortKey = ""
	SortNameAsc        SortKey = "nameAsc"
	SortNameDesc       SortKey = "nameDesc"
	SortPopulationAsc  SortKey = "populationAsc"
	SortPopulationDesc SortKey = "populationDesc"
	SortAreaAsc        SortKey = "areaAsc"
	SortAreaDesc       SortKey = "areaDesc"
)

var SortKeys = []SortKey{SortNone, SortNameAsc, SortNameDesc, SortPopulationAsc, SortPopulationDesc, SortAreaAsc, SortAreaDesc}

func (k SortKey) Label() string {
	switch k {
	case SortNameAsc:
		return "Name (A-Z)"
	case SortNameDesc:
		return "Name (Z-A)"
	case SortPopulationAsc:
		return "Population (low-high)"
	case SortPopulationDesc:
		return "Population (high-low)"
	case SortAreaAsc:
		return "Area (small-large)"
	case SortAreaDesc:
		return "Area (large-small)"
	default:
		return "Unsorted"
	}
}

func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("%w: unknown sort key %q", ErrInvalidCriteria, s)
}

// Criteria is the filter state derived from the UI controls. Empty strings mean "unset".
type Criteria struct {
	Region     string  `json:"region"`
	Subregion  string  `json:"subregion"`
	Population Bracket `json:"population"`
	Search     string  `json:"search"`
}
