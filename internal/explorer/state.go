package explorer

import (
	"fmt"
	"slices"

	"country-explorer/internal/model"
)

// State is the explorer's application state. Values are treated as immutable:
// Update returns a new State and never modifies the country slices it holds.
type State struct {
	Countries []model.Country
	Criteria  model.Criteria
	SortKey   model.SortKey
	Cursor    int
	Screen    Screen

	// visible is Countries after Filter and Sort for the current criteria.
	visible []model.Country
}

func NewState() State {
	return State{Screen: ScreenList}
}

// Visible returns the filtered and sorted list the pages are cut from.
func (s State) Visible() []model.Country {
	return s.visible
}

// Rendered is the number of items the render target holds after the pages up to Cursor.
func (s State) Rendered() int {
	return min((s.Cursor+1)*PageSize, len(s.visible))
}

// SubregionOptions returns the options for the subregion control; nil means the control is disabled.
func (s State) SubregionOptions() []string {
	return Subregions(s.Criteria.Region)
}

// Validate rejects control values the UI would never offer.
func (s State) Validate(ev Event) error {
	switch ev := ev.(type) {
	case RegionChanged:
		if ev.Region != "" && !IsRegion(ev.Region) {
			return fmt.Errorf("%w: unknown region %q", model.ErrInvalidCriteria, ev.Region)
		}
	case SubregionChanged:
		if ev.Subregion != "" && !slices.Contains(s.SubregionOptions(), ev.Subregion) {
			return fmt.Errorf("%w: subregion %q is not offered for region %q", model.ErrInvalidCriteria, ev.Subregion, s.Criteria.Region)
		}
	case CountrySelected:
		if ev.Name == "" {
			return fmt.Errorf("%w: empty country name", model.ErrInvalidCriteria)
		}
	}
	return nil
}

// Update applies ev to s and returns the next state with the effects to run, in order.
func Update(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Loaded:
		s.Countries = ev.Countries
		return s.rerender(PersistCountriesEffect{Countries: ev.Countries})
	case RegionChanged:
		s.Criteria.Region = ev.Region
		s.Criteria.Subregion = ""
		return s.rerender()
	case SubregionChanged:
		s.Criteria.Subregion = ev.Subregion
		return s.rerender()
	case PopulationChanged:
		s.Criteria.Population = ev.Bracket
		return s.rerender()
	case SortChanged:
		s.SortKey = ev.Key
		return s.rerender()
	case SearchChanged:
		s.Criteria.Search = ev.Term
		return s.rerender()
	case ScrolledToBottom:
		// Past the last page the cursor stays put and nothing is appended.
		page := Page(s.visible, s.Cursor+1)
		if len(page) == 0 {
			return s, nil
		}
		s.Cursor++
		return s, []Effect{AppendEffect{Countries: page}}
	case CountrySelected:
		s.Screen = ScreenDetails
		return s, []Effect{PersistSelectionEffect{Name: ev.Name}, NavigateEffect{To: ScreenDetails}}
	case BackRequested:
		s.Screen = ScreenList
		return s, []Effect{NavigateEffect{To: ScreenList}}
	}
	return s, nil
}

func (s State) rerender(pre ...Effect) (State, []Effect) {
	s.visible = Sort(Filter(s.Countries, s.Criteria), s.SortKey)
	s.Cursor = 0
	effects := append(pre, ClearEffect{}, AppendEffect{Countries: Page(s.visible, 0)})
	return s, effects
}
