package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"country-explorer/internal/cache"
	"country-explorer/internal/explorer"
	"country-explorer/internal/model"
	"country-explorer/internal/view"
)

// CountrySource is the remote dataset, normally *restcountries.Client.
type CountrySource interface {
	All(ctx context.Context) ([]model.Country, error)
	ByName(ctx context.Context, name string) (*model.Country, error)
}

type ExplorerService interface {
	Open(ctx context.Context) (*Snapshot, error)
	Dispatch(ctx context.Context, sessionID string, ev explorer.Event) (*Snapshot, error)
	Snapshot(sessionID string) (*Snapshot, error)
	Close(ctx context.Context, sessionID string) error
	Expire(ctx context.Context, idle time.Duration) int
	SessionCount() int
}

// Snapshot is what a client sees of a session after an event.
type Snapshot struct {
	SessionID        string          `json:"session_id"`
	Screen           explorer.Screen `json:"screen"`
	Criteria         model.Criteria  `json:"criteria"`
	SortBy           model.SortKey   `json:"sort_by"`
	Page             int             `json:"page"`
	SubregionOptions []string        `json:"subregion_options"`
	Total            int             `json:"total"`
	Items            []view.Item     `json:"items"`
}

// session fields are guarded by mu. A closed session is no longer in the registry
// and rejects further events.
type session struct {
	mu         sync.Mutex
	id         string
	dispatcher *explorer.Dispatcher
	container  *explorer.Container
	lastUsed   time.Time
	closed     bool
}

func (s *session) snapshot() *Snapshot {
	state := s.dispatcher.State()
	return &Snapshot{
		SessionID:        s.id,
		Screen:           state.Screen,
		Criteria:         state.Criteria,
		SortBy:           state.SortKey,
		Page:             state.Cursor,
		SubregionOptions: state.SubregionOptions(),
		Total:            len(state.Visible()),
		Items:            s.container.Items(),
	}
}

type explorerService struct {
	source CountrySource
	store  cache.Store
	logger *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewExplorerService(source CountrySource, store cache.Store, logger *zap.Logger) ExplorerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &explorerService{
		source:   source,
		store:    store,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Open fetches the country list and starts a session on it. Nothing is kept when the fetch fails.
func (s *explorerService) Open(ctx context.Context) (*Snapshot, error) {
	countries, err := s.source.All(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch countries", zap.Error(err))
		return nil, fmt.Errorf("failed to load countries: %w", err)
	}

	id := uuid.NewString()
	container := explorer.NewContainer()
	sess := &session{
		id:         id,
		container:  container,
		lastUsed:   s.now(),
		dispatcher: explorer.NewDispatcher(container, cache.Bind(s.store, id), s.logger.With(zap.String("session", id))),
	}
	if err := sess.dispatcher.Dispatch(ctx, explorer.Loaded{Countries: countries}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Info("Session opened", zap.String("session", id), zap.Int("countries", len(countries)))
	return sess.snapshot(), nil
}

// Dispatch runs ev on the session. Events of one session run one at a time.
func (s *explorerService) Dispatch(ctx context.Context, sessionID string, ev explorer.Event) (*Snapshot, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, sessionID)
	}
	sess.lastUsed = s.now()
	if err := sess.dispatcher.Dispatch(ctx, ev); err != nil {
		return nil, err
	}
	return sess.snapshot(), nil
}

func (s *explorerService) Snapshot(sessionID string) (*Snapshot, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, sessionID)
	}
	sess.lastUsed = s.now()
	return sess.snapshot(), nil
}

// Close forgets the session and removes its cache entries. It waits for an event
// already running on the session, so nothing is written back after the keys are cleared.
func (s *explorerService) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", model.ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.release(ctx, sess)
	return nil
}

// Expire closes every session that has seen no event or snapshot for longer than idle
// and returns how many it closed.
func (s *explorerService) Expire(ctx context.Context, idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.RLock()
	open := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.RUnlock()

	expired := 0
	for _, sess := range open {
		sess.mu.Lock()
		if !sess.closed && sess.lastUsed.Before(cutoff) {
			s.mu.Lock()
			delete(s.sessions, sess.id)
			s.mu.Unlock()
			s.release(ctx, sess)
			expired++
		}
		sess.mu.Unlock()
	}

	if expired > 0 {
		s.logger.Info("Expired idle sessions", zap.Int("count", expired), zap.Duration("idle", idle))
	}
	return expired
}

// release marks sess closed and clears its cache keys. The caller holds sess.mu.
func (s *explorerService) release(ctx context.Context, sess *session) {
	if sess.closed {
		return
	}
	sess.closed = true
	if err := s.store.Clear(ctx, sess.id); err != nil {
		s.logger.Warn("Failed to clear session cache", zap.String("session", sess.id), zap.Error(err))
	}
}

func (s *explorerService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *explorerService) session(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}
	return sess, nil
}
