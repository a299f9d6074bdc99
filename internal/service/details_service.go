package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"country-explorer/internal/cache"
	"country-explorer/internal/model"
	"country-explorer/internal/view"
)

type DetailsService interface {
	Load(ctx context.Context, sessionID string) (*view.Details, error)
}

type detailsService struct {
	source   CountrySource
	store    cache.Store
	sessions ExplorerService
	logger   *zap.Logger
}

func NewDetailsService(source CountrySource, store cache.Store, sessions ExplorerService, logger *zap.Logger) DetailsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &detailsService{
		source:   source,
		store:    store,
		sessions: sessions,
		logger:   logger,
	}
}

// Load reads the session's selected country from the cache and looks it up remotely.
// It never serves from the cached list.
func (d *detailsService) Load(ctx context.Context, sessionID string) (*view.Details, error) {
	if _, err := d.sessions.Snapshot(sessionID); err != nil {
		return nil, err
	}

	name, err := d.store.Selected(ctx, sessionID)
	if errors.Is(err, cache.ErrMiss) {
		d.logger.Warn("No country selected", zap.String("session", sessionID))
		return nil, model.ErrNoSelection
	}
	if err != nil {
		d.logger.Error("Failed to read selected country", zap.String("session", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	country, err := d.source.ByName(ctx, name)
	if err != nil {
		d.logger.Error("Failed to fetch country details",
			zap.String("session", sessionID),
			zap.String("country", name),
			zap.Error(err))
		return nil, err
	}

	details := view.NewDetails(*country)
	return &details, nil
}
