package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"drd/internal/models"
	"drd/internal/providers"
	"drd/internal/schedule"
	"drd/internal/store"
	"drd/internal/structures"
)

// ErrGameNotFound marks a single-game lookup for an unknown name.
var ErrGameNotFound = errors.New("game not found")

type CardServiceInterface interface {
	GetUpcomingCards(ctx context.Context, limit int) (*models.CardListResponse, error)
	GetLatestResult(ctx context.Context, gameName string) (*models.LatestResultResponse, error)
	CatalogSize() int
	UntimedCount() int
}

type CardService struct {
	config     *structures.Config
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	catalog    store.CatalogStore
	values     store.ValueStore
	classifier *schedule.Classifier
	loc        *time.Location
	nowFn      func() time.Time
}

func NewCardService(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, catalog store.CatalogStore, values store.ValueStore) (CardServiceInterface, error) {
	loc, err := time.LoadLocation(config.Engine.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", config.Engine.Timezone, err)
	}

	return &CardService{
		config:     config,
		logger:     logger,
		metrics:    metrics,
		catalog:    catalog,
		values:     values,
		classifier: schedule.NewClassifier(config.Engine, loc),
		loc:        loc,
		nowFn:      time.Now,
	}, nil
}

// GetUpcomingCards runs one classification call: a single captured now,
// one catalog fetch, one batched value fetch, pure computation. Any
// fetch failure aborts the call; no partial card list is returned.
func (cs *CardService) GetUpcomingCards(ctx context.Context, limit int) (*models.CardListResponse, error) {
	limit = schedule.ClampLimit(limit, cs.config.Engine.DefaultLimit)

	ctx, cancel := context.WithTimeout(ctx, cs.config.Catalog.FetchTimeout)
	defer cancel()

	now := cs.nowFn().In(cs.loc)

	start := time.Now()
	events, err := cs.catalog.ListEvents(ctx)
	if err != nil {
		cs.logger.Errorf(providers.TypeGet, "Catalog fetch failed: %s", err)
		return nil, fmt.Errorf("list events: %w", err)
	}
	cs.metrics.ObserveFetchDuration("catalog", time.Since(start))

	start = time.Now()
	cls, err := cs.classifier.Classify(ctx, now, events, limit, cs.values)
	if err != nil {
		cs.logger.Errorf(providers.TypeGet, "Classification failed: %s", err)
		return nil, err
	}
	cs.metrics.ObserveFetchDuration("values", time.Since(start))

	return &models.CardListResponse{
		Cards:             schedule.ComposeCards(cls, limit, now),
		ServerTimeInstant: now,
		Cached:            false,
	}, nil
}

// GetLatestResult resolves today's and yesterday's declared values for
// one game, looked up by name case-insensitively. Today's value is only
// surfaced once the scheduled publish instant has passed.
func (cs *CardService) GetLatestResult(ctx context.Context, gameName string) (*models.LatestResultResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, cs.config.Catalog.FetchTimeout)
	defer cancel()

	events, err := cs.catalog.ListEvents(ctx)
	if err != nil {
		cs.logger.Errorf(providers.TypeGet, "Catalog fetch failed: %s", err)
		return nil, fmt.Errorf("list events: %w", err)
	}

	var game *models.Event
	for i := range events {
		if strings.EqualFold(events[i].Name, gameName) {
			game = &events[i]
			break
		}
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	now := cs.nowFn().In(cs.loc)

	resp := &models.LatestResultResponse{
		Game:       game.Name,
		ResultTime: models.TimeSentinel,
	}

	ct, timed := schedule.ParseTimeOfDay(game.ResultTime)
	if timed {
		resp.ResultTime = formatTime12h(ct)
	}

	pages, err := cs.values.DeclaredValues(ctx, []string{game.ID}, now.Year(), now.Month())
	if err != nil {
		cs.logger.Errorf(providers.TypeGet, "Value fetch failed: %s", err)
		return nil, fmt.Errorf("declared values: %w", err)
	}
	page := pages[game.ID]

	if timed {
		sched := time.Date(now.Year(), now.Month(), now.Day(), ct.Hour, ct.Minute, 0, 0, cs.loc)
		if !now.Before(sched) {
			resp.LatestResult = models.NewDeclaredValue(page[now.Day()]).Ptr()
		}
	}
	if now.Day() > 1 {
		resp.PreviousResult = models.NewDeclaredValue(page[now.Day()-1]).Ptr()
	}

	return resp, nil
}

func (cs *CardService) CatalogSize() int {
	events, err := cs.catalog.ListEvents(context.Background())
	if err != nil {
		return 0
	}
	return len(events)
}

func (cs *CardService) UntimedCount() int {
	events, err := cs.catalog.ListEvents(context.Background())
	if err != nil {
		return 0
	}
	count := 0
	for _, ev := range events {
		if _, ok := schedule.ParseTimeOfDay(ev.ResultTime); !ok {
			count++
		}
	}
	return count
}

// formatTime12h renders a canonical time the way the public site shows
// it, e.g. "06:30 PM".
func formatTime12h(ct models.CanonicalTime) string {
	hour := ct.Hour % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if ct.Hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hour, ct.Minute, suffix)
}
