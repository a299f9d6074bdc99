// Package cache is the session-scoped key-value store behind the explorer: it keeps the fetched
// country list and the selected country name for each session.
package cache

import (
	"context"
	"errors"
	"fmt"

	"country-explorer/internal/model"
)

// ErrMiss is returned when a key is absent.
var ErrMiss = errors.New("cache miss")

type Store interface {
	PutCountries(ctx context.Context, session string, countries []model.Country) error
	PutSelected(ctx context.Context, session, name string) error
	Selected(ctx context.Context, session string) (string, error)
	Clear(ctx context.Context, session string) error
}

func countriesKey(session string) string {
	return fmt.Sprintf("session:%s:countries", session)
}

func selectedKey(session string) string {
	return fmt.Sprintf("session:%s:selectedCountry", session)
}

// SessionWriter binds a Store to one session.
type SessionWriter struct {
	store   Store
	session string
}

func Bind(store Store, session string) *SessionWriter {
	return &SessionWriter{store: store, session: session}
}

func (w *SessionWriter) PutCountries(ctx context.Context, countries []model.Country) error {
	return w.store.PutCountries(ctx, w.session, countries)
}

func (w *SessionWriter) PutSelected(ctx context.Context, name string) error {
	return w.store.PutSelected(ctx, w.session, name)
}
