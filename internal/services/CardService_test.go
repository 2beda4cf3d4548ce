package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drd/internal/models"
	"drd/internal/structures"
	"drd/internal/testutil"
)

type mockCatalog struct {
	events []models.Event
	err    error
	calls  int
}

func (m *mockCatalog) ListEvents(_ context.Context) ([]models.Event, error) {
	m.calls++
	return m.events, m.err
}

type mockValues struct {
	pages map[string]map[int]string
	err   error
	calls int
}

func (m *mockValues) DeclaredValues(_ context.Context, eventIDs []string, _ int, _ time.Month) (map[string]map[int]string, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	result := make(map[string]map[int]string)
	for _, id := range eventIDs {
		if page, ok := m.pages[id]; ok {
			result[id] = page
		}
	}
	return result, nil
}

type mockMetrics struct {
	fetchSources []string
}

func (m *mockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *mockMetrics) IncCacheHits()                                    {}
func (m *mockMetrics) IncCacheMisses()                                  {}
func (m *mockMetrics) ObserveFetchDuration(source string, _ time.Duration) {
	m.fetchSources = append(m.fetchSources, source)
}

func testConfig() *structures.Config {
	return &structures.Config{
		Engine: structures.EngineConfig{
			Timezone:            "Asia/Kolkata",
			RecentWindowMinutes: 120,
			SuppressionMinutes:  30,
			DefaultLimit:        3,
		},
		Catalog: structures.CatalogConfig{
			SnapshotPath:    "/tmp/catalog.zst",
			RefreshSchedule: "@every 5m",
			FetchTimeout:    5 * time.Second,
		},
	}
}

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return time.Date(2024, time.January, 15, 10, 5, 0, 0, loc)
}

func newTestService(t *testing.T, catalog *mockCatalog, values *mockValues, metrics *mockMetrics) *CardService {
	t.Helper()
	svc, err := NewCardService(testConfig(), &testutil.MockLogger{}, metrics, catalog, values)
	require.NoError(t, err)
	cs := svc.(*CardService)
	now := fixedNow(t)
	cs.nowFn = func() time.Time { return now }
	return cs
}

func TestNewCardService_BadTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Engine.Timezone = "Mars/Olympus"
	_, err := NewCardService(cfg, &testutil.MockLogger{}, &mockMetrics{}, &mockCatalog{}, &mockValues{})
	assert.Error(t, err)
}

func TestGetUpcomingCards_Reference(t *testing.T) {
	catalog := &mockCatalog{events: []models.Event{
		{ID: "a", Name: "Alpha", ResultTime: "10:00"},
		{ID: "b", Name: "Beta", ResultTime: "09:50"},
		{ID: "c", Name: "Gamma", ResultTime: "11:00"},
	}}
	values := &mockValues{pages: map[string]map[int]string{
		"a": {15: "42"},
		"b": {15: "17"},
	}}
	metrics := &mockMetrics{}
	cs := newTestService(t, catalog, values, metrics)

	resp, err := cs.GetUpcomingCards(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, resp.Cards, 3)
	assert.Equal(t, models.CardTypeRecent, resp.Cards[0].Type)
	assert.Equal(t, "Alpha", resp.Cards[0].Name)
	require.NotNil(t, resp.Cards[0].LatestResult)
	assert.Equal(t, "42", *resp.Cards[0].LatestResult)
	assert.Equal(t, "Beta", resp.Cards[1].Name)
	assert.Equal(t, models.CardTypeUpcoming, resp.Cards[2].Type)
	assert.Equal(t, "Gamma", resp.Cards[2].Name)
	assert.Nil(t, resp.Cards[2].LatestResult)

	assert.False(t, resp.Cached)
	assert.Equal(t, fixedNow(t), resp.ServerTimeInstant)
	assert.Equal(t, []string{"catalog", "values"}, metrics.fetchSources)
}

func TestGetUpcomingCards_DefaultAndClampedLimit(t *testing.T) {
	catalog := &mockCatalog{}
	cs := newTestService(t, catalog, &mockValues{}, &mockMetrics{})

	resp, err := cs.GetUpcomingCards(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, resp.Cards, 3)

	resp, err = cs.GetUpcomingCards(context.Background(), 99)
	require.NoError(t, err)
	assert.Len(t, resp.Cards, 10)

	resp, err = cs.GetUpcomingCards(context.Background(), -5)
	require.NoError(t, err)
	assert.Len(t, resp.Cards, 1)
}

func TestGetUpcomingCards_EmptyCatalogPads(t *testing.T) {
	cs := newTestService(t, &mockCatalog{}, &mockValues{}, &mockMetrics{})

	resp, err := cs.GetUpcomingCards(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, resp.Cards, 4)
	for _, card := range resp.Cards {
		assert.Equal(t, models.PlaceholderName, card.Name)
	}
}

func TestGetUpcomingCards_CatalogFailure(t *testing.T) {
	catalog := &mockCatalog{err: errors.New("snapshot gone")}
	values := &mockValues{}
	cs := newTestService(t, catalog, values, &mockMetrics{})

	_, err := cs.GetUpcomingCards(context.Background(), 3)
	assert.Error(t, err)
	assert.Zero(t, values.calls)
}

func TestGetUpcomingCards_ValueFailure(t *testing.T) {
	catalog := &mockCatalog{events: []models.Event{
		{ID: "a", Name: "Alpha", ResultTime: "10:00"},
	}}
	values := &mockValues{err: errors.New("page fetch failed")}
	cs := newTestService(t, catalog, values, &mockMetrics{})

	_, err := cs.GetUpcomingCards(context.Background(), 3)
	assert.Error(t, err)
}

func TestGetLatestResult_Published(t *testing.T) {
	catalog := &mockCatalog{events: []models.Event{
		{ID: "a", Name: "Alpha", ResultTime: "09:30"},
	}}
	values := &mockValues{pages: map[string]map[int]string{
		"a": {14: "88", 15: "42"},
	}}
	cs := newTestService(t, catalog, values, &mockMetrics{})

	resp, err := cs.GetLatestResult(context.Background(), "alpha")
	require.NoError(t, err)

	assert.Equal(t, "Alpha", resp.Game)
	assert.Equal(t, "09:30 AM", resp.ResultTime)
	require.NotNil(t, resp.LatestResult)
	assert.Equal(t, "42", *resp.LatestResult)
	require.NotNil(t, resp.PreviousResult)
	assert.Equal(t, "88", *resp.PreviousResult)
}

func TestGetLatestResult_SuppressedBeforePublish(t *testing.T) {
	// publishes at 18:30, now is 10:05: today's value stays hidden
	catalog := &mockCatalog{events: []models.Event{
		{ID: "a", Name: "Alpha", ResultTime: "18:30"},
	}}
	values := &mockValues{pages: map[string]map[int]string{
		"a": {14: "88", 15: "42"},
	}}
	cs := newTestService(t, catalog, values, &mockMetrics{})

	resp, err := cs.GetLatestResult(context.Background(), "Alpha")
	require.NoError(t, err)

	assert.Equal(t, "06:30 PM", resp.ResultTime)
	assert.Nil(t, resp.LatestResult)
	require.NotNil(t, resp.PreviousResult)
	assert.Equal(t, "88", *resp.PreviousResult)
}

func TestGetLatestResult_UntimedGame(t *testing.T) {
	catalog := &mockCatalog{events: []models.Event{
		{ID: "a", Name: "Alpha", ResultTime: "soon"},
	}}
	values := &mockValues{pages: map[string]map[int]string{
		"a": {14: "88", 15: "42"},
	}}
	cs := newTestService(t, catalog, values, &mockMetrics{})

	resp, err := cs.GetLatestResult(context.Background(), "Alpha")
	require.NoError(t, err)

	assert.Equal(t, models.TimeSentinel, resp.ResultTime)
	assert.Nil(t, resp.LatestResult)
	require.NotNil(t, resp.PreviousResult)
}

func TestGetLatestResult_UnknownGame(t *testing.T) {
	catalog := &mockCatalog{events: []models.Event{
		{ID: "a", Name: "Alpha", ResultTime: "10:00"},
	}}
	cs := newTestService(t, catalog, &mockValues{}, &mockMetrics{})

	_, err := cs.GetLatestResult(context.Background(), "Omega")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGetLatestResult_Midnight(t *testing.T) {
	catalog := &mockCatalog{events: []models.Event{
		{ID: "a", Name: "Alpha", ResultTime: "00:00"},
	}}
	values := &mockValues{pages: map[string]map[int]string{
		"a": {15: "7"},
	}}
	cs := newTestService(t, catalog, values, &mockMetrics{})

	resp, err := cs.GetLatestResult(context.Background(), "Alpha")
	require.NoError(t, err)
	assert.Equal(t, "12:00 AM", resp.ResultTime)
	require.NotNil(t, resp.LatestResult)
	assert.Equal(t, "7", *resp.LatestResult)
}

func TestCatalogCounts(t *testing.T) {
	catalog := &mockCatalog{events: []models.Event{
		{ID: "a", Name: "Alpha", ResultTime: "10:00"},
		{ID: "b", Name: "Beta", ResultTime: "closed"},
		{ID: "c", Name: "Gamma", ResultTime: ""},
	}}
	cs := newTestService(t, catalog, &mockValues{}, &mockMetrics{})

	assert.Equal(t, 3, cs.CatalogSize())
	assert.Equal(t, 2, cs.UntimedCount())

	catalog.err = errors.New("down")
	assert.Equal(t, 0, cs.CatalogSize())
	assert.Equal(t, 0, cs.UntimedCount())
}
