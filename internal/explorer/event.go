package explorer

import "country-explorer/internal/model"

// Event is an input to Update: a finished fetch, a control change, a scroll, or a navigation.
type Event interface {
	event()
}

type (
	// Loaded carries the full country list after the initial fetch.
	Loaded struct{ Countries []model.Country }

	// RegionChanged also clears the subregion.
	RegionChanged     struct{ Region string }
	SubregionChanged  struct{ Subregion string }
	PopulationChanged struct{ Bracket model.Bracket }
	SortChanged       struct{ Key model.SortKey }
	SearchChanged     struct{ Term string }

	// ScrolledToBottom fires when the viewport reaches the end of the rendered items.
	ScrolledToBottom struct{}

	CountrySelected struct{ Name string }
	BackRequested   struct{}
)

func (Loaded) event()            {}
func (RegionChanged) event()     {}
func (SubregionChanged) event()  {}
func (PopulationChanged) event() {}
func (SortChanged) event()       {}
func (SearchChanged) event()     {}
func (ScrolledToBottom) event()  {}
func (CountrySelected) event()   {}
func (BackRequested) event()     {}

// Effect is an instruction produced by Update for the dispatcher to carry out.
type Effect interface {
	effect()
}

// Screen identifies which view is showing.
type Screen string

const (
	ScreenList    Screen = "list"
	ScreenDetails Screen = "details"
)

type (
	ClearEffect            struct{}
	AppendEffect           struct{ Countries []model.Country }
	PersistCountriesEffect struct{ Countries []model.Country }
	PersistSelectionEffect struct{ Name string }
	NavigateEffect         struct{ To Screen }
)

func (ClearEffect) effect()            {}
func (AppendEffect) effect()           {}
func (PersistCountriesEffect) effect() {}
func (PersistSelectionEffect) effect() {}
func (NavigateEffect) effect()         {}
