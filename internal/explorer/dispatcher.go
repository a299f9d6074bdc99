package explorer

import (
	"context"

	"go.uber.org/zap"

	"country-explorer/internal/model"
	"country-explorer/internal/view"
)

// Persister stores the country list and the selected country for one session.
type Persister interface {
	PutCountries(ctx context.Context, countries []model.Country) error
	PutSelected(ctx context.Context, name string) error
}

// Dispatcher owns a State and carries out the effects Update returns.
// It is not safe for concurrent use; callers serialize Dispatch.
type Dispatcher struct {
	state   State
	target  RenderTarget
	persist Persister
	logger  *zap.Logger
}

func NewDispatcher(target RenderTarget, persist Persister, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		state:   NewState(),
		target:  target,
		persist: persist,
		logger:  logger,
	}
}

func (d *Dispatcher) State() State {
	return d.state
}

// Dispatch validates ev, advances the state and applies the resulting effects.
// An invalid event leaves the state untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) error {
	if err := d.state.Validate(ev); err != nil {
		return err
	}

	next, effects := Update(d.state, ev)
	d.state = next
	for _, effect := range effects {
		d.apply(ctx, effect)
	}
	return nil
}

func (d *Dispatcher) apply(ctx context.Context, effect Effect) {
	switch e := effect.(type) {
	case ClearEffect:
		d.target.Clear()
	case AppendEffect:
		d.target.Append(view.NewItems(e.Countries)...)
	case PersistCountriesEffect:
		// Cache writes never block the flow.
		if err := d.persist.PutCountries(ctx, e.Countries); err != nil {
			d.logger.Warn("Failed to cache country list", zap.Int("count", len(e.Countries)), zap.Error(err))
		}
	case PersistSelectionEffect:
		if err := d.persist.PutSelected(ctx, e.Name); err != nil {
			d.logger.Warn("Failed to cache selected country", zap.String("country", e.Name), zap.Error(err))
		}
	case NavigateEffect:
		d.logger.Debug("Navigating", zap.String("screen", string(e.To)))
	}
}
