package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country-explorer/internal/cache"
	"country-explorer/internal/explorer"
	"country-explorer/internal/model"
)

type fakeSource struct {
	countries []model.Country
	allErr    error
	byNameErr error
	lookups   []string
}

func (f *fakeSource) All(context.Context) ([]model.Country, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.countries, nil
}

func (f *fakeSource) ByName(_ context.Context, name string) (*model.Country, error) {
	f.lookups = append(f.lookups, name)
	if f.byNameErr != nil {
		return nil, f.byNameErr
	}
	for _, c := range f.countries {
		if strings.Contains(strings.ToLower(c.Name.Common), strings.ToLower(name)) {
			return &c, nil
		}
	}
	return nil, model.ErrNotFound
}

func world(n int) []model.Country {
	out := make([]model.Country, 0, n)
	for i := 0; i < n; i++ {
		region := "Europe"
		if i%2 == 1 {
			region = "Asia"
		}
		out = append(out, model.Country{
			Name:       model.CountryName{Common: fmt.Sprintf("Country %02d", i)},
			Region:     region,
			Population: int64(i * 1_000_000),
			Capital:    []string{fmt.Sprintf("Capital %02d", i)},
		})
	}
	return out
}

func TestOpenRendersFirstPageAndCachesList(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc := NewExplorerService(&fakeSource{countries: world(50)}, store, nil)

	snap, err := svc.Open(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.SessionID)
	assert.Equal(t, explorer.ScreenList, snap.Screen)
	assert.Equal(t, 50, snap.Total)
	assert.Len(t, snap.Items, explorer.PageSize)
	assert.Equal(t, 1, svc.SessionCount())
}

func TestOpenFetchFailureCreatesNoSession(t *testing.T) {
	svc := NewExplorerService(&fakeSource{allErr: &model.StatusError{Code: 500}}, cache.NewMemoryStore(), nil)

	snap, err := svc.Open(context.Background())
	assert.Nil(t, snap)

	var statusErr *model.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Zero(t, svc.SessionCount())
}

func TestDispatchFlow(t *testing.T) {
	ctx := context.Background()
	svc := NewExplorerService(&fakeSource{countries: world(50)}, cache.NewMemoryStore(), nil)
	snap, err := svc.Open(ctx)
	require.NoError(t, err)
	id := snap.SessionID

	snap, err = svc.Dispatch(ctx, id, explorer.RegionChanged{Region: "Asia"})
	require.NoError(t, err)
	assert.Equal(t, 25, snap.Total)
	assert.Len(t, snap.Items, 20)
	assert.Contains(t, snap.SubregionOptions, "East Asia")

	snap, err = svc.Dispatch(ctx, id, explorer.ScrolledToBottom{})
	require.NoError(t, err)
	assert.Len(t, snap.Items, 25)
	assert.Equal(t, 1, snap.Page)

	snap, err = svc.Dispatch(ctx, id, explorer.SortChanged{Key: model.SortPopulationDesc})
	require.NoError(t, err)
	assert.Equal(t, "Country 49", snap.Items[0].Name)
	assert.Zero(t, snap.Page)

	_, err = svc.Dispatch(ctx, id, explorer.SubregionChanged{Subregion: "Caribbean"})
	assert.ErrorIs(t, err, model.ErrInvalidCriteria)

	_, err = svc.Dispatch(ctx, "missing", explorer.ScrolledToBottom{})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestDispatchIsSerializedPerSession(t *testing.T) {
	ctx := context.Background()
	svc := NewExplorerService(&fakeSource{countries: world(200)}, cache.NewMemoryStore(), nil)
	snap, err := svc.Open(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Dispatch(ctx, snap.SessionID, explorer.ScrolledToBottom{})
		}()
	}
	wg.Wait()

	snap, err = svc.Snapshot(snap.SessionID)
	require.NoError(t, err)
	assert.Len(t, snap.Items, 200)
	assert.Equal(t, 9, snap.Page)
}

func TestSelectThenLoadDetails(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{countries: world(5)}
	store := cache.NewMemoryStore()
	svc := NewExplorerService(source, store, nil)
	details := NewDetailsService(source, store, svc, nil)

	snap, err := svc.Open(ctx)
	require.NoError(t, err)

	_, err = details.Load(ctx, snap.SessionID)
	assert.ErrorIs(t, err, model.ErrNoSelection)

	snap, err = svc.Dispatch(ctx, snap.SessionID, explorer.CountrySelected{Name: "Country 03"})
	require.NoError(t, err)
	assert.Equal(t, explorer.ScreenDetails, snap.Screen)

	d, err := details.Load(ctx, snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Country 03", d.Name)
	assert.Equal(t, "Capital 03", d.Capital)
	assert.Equal(t, "N/A", d.Area)
	assert.Equal(t, []string{"Country 03"}, source.lookups)
}

// openWithSelection opens a session on source and selects name in it.
func openWithSelection(t *testing.T, source *fakeSource, store cache.Store, name string) (ExplorerService, string) {
	t.Helper()
	ctx := context.Background()
	svc := NewExplorerService(source, store, nil)
	snap, err := svc.Open(ctx)
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, snap.SessionID, explorer.CountrySelected{Name: name})
	require.NoError(t, err)
	return svc, snap.SessionID
}

func TestLoadDetailsUnknownCountry(t *testing.T) {
	source := &fakeSource{countries: world(3)}
	store := cache.NewMemoryStore()
	svc, id := openWithSelection(t, source, store, "Atlantis")

	d, err := NewDetailsService(source, store, svc, nil).Load(context.Background(), id)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLoadDetailsUpstreamFailure(t *testing.T) {
	source := &fakeSource{countries: world(3)}
	store := cache.NewMemoryStore()
	svc, id := openWithSelection(t, source, store, "Chile")
	source.byNameErr = errors.New("connection reset")

	_, err := NewDetailsService(source, store, svc, nil).Load(context.Background(), id)
	assert.ErrorContains(t, err, "connection reset")
}

func TestLoadDetailsNeedsOpenSession(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{countries: world(3)}
	store := cache.NewMemoryStore()
	svc, id := openWithSelection(t, source, store, "Country 01")
	details := NewDetailsService(source, store, svc, nil)

	_, err := details.Load(ctx, "never-opened")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	require.NoError(t, svc.Close(ctx, id))
	_, err = details.Load(ctx, id)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.Empty(t, source.lookups)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc := NewExplorerService(&fakeSource{countries: world(3)}, store, nil)
	snap, err := svc.Open(ctx)
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, snap.SessionID, explorer.CountrySelected{Name: "Country 01"})
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, snap.SessionID))
	assert.Zero(t, svc.SessionCount())
	_, err = store.Selected(ctx, snap.SessionID)
	assert.ErrorIs(t, err, cache.ErrMiss)

	assert.ErrorIs(t, svc.Close(ctx, snap.SessionID), model.ErrSessionNotFound)
}

// slowSelectStore holds PutSelected until release is closed.
type slowSelectStore struct {
	*cache.MemoryStore
	entered chan struct{}
	release chan struct{}
}

func (s *slowSelectStore) PutSelected(ctx context.Context, session, name string) error {
	close(s.entered)
	<-s.release
	return s.MemoryStore.PutSelected(ctx, session, name)
}

func TestCloseWaitsForRunningEvent(t *testing.T) {
	ctx := context.Background()
	store := &slowSelectStore{
		MemoryStore: cache.NewMemoryStore(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	svc := NewExplorerService(&fakeSource{countries: world(3)}, store, nil)
	snap, err := svc.Open(ctx)
	require.NoError(t, err)
	id := snap.SessionID

	dispatched := make(chan error, 1)
	go func() {
		_, err := svc.Dispatch(ctx, id, explorer.CountrySelected{Name: "Country 01"})
		dispatched <- err
	}()
	<-store.entered

	closed := make(chan error, 1)
	go func() { closed <- svc.Close(ctx, id) }()

	select {
	case <-closed:
		t.Fatal("Close returned while an event was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(store.release)
	require.NoError(t, <-dispatched)
	require.NoError(t, <-closed)

	_, err = store.Selected(ctx, id)
	assert.ErrorIs(t, err, cache.ErrMiss)

	_, err = svc.Dispatch(ctx, id, explorer.BackRequested{})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestExpireClosesIdleSessions(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc := NewExplorerService(&fakeSource{countries: world(3)}, store, nil).(*explorerService)

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	idle, err := svc.Open(ctx)
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, idle.SessionID, explorer.CountrySelected{Name: "Country 02"})
	require.NoError(t, err)
	active, err := svc.Open(ctx)
	require.NoError(t, err)

	clock = clock.Add(20 * time.Minute)
	_, err = svc.Snapshot(active.SessionID)
	require.NoError(t, err)

	clock = clock.Add(15 * time.Minute)
	assert.Equal(t, 1, svc.Expire(ctx, 30*time.Minute))
	assert.Equal(t, 1, svc.SessionCount())

	_, err = svc.Snapshot(idle.SessionID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	_, err = store.Selected(ctx, idle.SessionID)
	assert.ErrorIs(t, err, cache.ErrMiss)

	_, err = svc.Snapshot(active.SessionID)
	require.NoError(t, err)
	assert.Zero(t, svc.Expire(ctx, 30*time.Minute))
}
