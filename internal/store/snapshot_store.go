package store

import (
	"context"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"drd/internal/models"
	"drd/internal/providers"
	"drd/internal/schedule"
	"drd/internal/store/interfaces"
	"drd/internal/structures"
)

type chartKey struct {
	eventID string
	year    int
	month   int
}

// SnapshotStore serves the catalog and declared values from an
// in-memory copy of a zstd-compressed JSON snapshot file. The file is
// produced by the data-entry side and reloaded by the Refresher; a
// missing file yields an empty catalog, not an error.
type SnapshotStore struct {
	config     *structures.Config
	compressor interfaces.CompressorInterface
	logger     providers.Logger

	mu     sync.RWMutex
	events []models.Event
	charts map[chartKey]map[int]string
}

func NewSnapshotStore(config *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *SnapshotStore {
	return &SnapshotStore{
		config:     config,
		compressor: compressor,
		logger:     logger,
		charts:     make(map[chartKey]map[int]string),
	}
}

// Load replaces the in-memory catalog with the snapshot file contents.
// Events without an id get one assigned, so charts exported before ids
// existed still resolve.
func (s *SnapshotStore) Load() error {
	data, err := os.ReadFile(s.config.Catalog.SnapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warnf(providers.TypeApp, "Snapshot file %s missing, serving empty catalog", s.config.Catalog.SnapshotPath)
			return nil
		}
		return err
	}

	decompressed, err := s.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(decompressed, &snapshot); err != nil {
		return err
	}

	events := make([]models.Event, len(snapshot.Events))
	for i, ev := range snapshot.Events {
		if ev.ID == "" {
			ev.ID = uuid.NewString()
		}
		events[i] = ev
	}

	charts := make(map[chartKey]map[int]string, len(snapshot.Charts))
	for _, chart := range snapshot.Charts {
		page := make(map[int]string, len(chart.Days))
		for i, slot := range chart.Days {
			if slot.Value == "" {
				continue
			}
			page[i+1] = slot.Value
		}
		charts[chartKey{eventID: chart.EventID, year: chart.Year, month: chart.Month}] = page
	}

	s.mu.Lock()
	s.events = events
	s.charts = charts
	s.mu.Unlock()

	s.logger.Infof(providers.TypeApp, "Snapshot loaded: %d events, %d chart pages", len(events), len(charts))
	return nil
}

func (s *SnapshotStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, len(s.events))
	copy(events, s.events)
	return events, nil
}

// EventCount reports the size of the loaded catalog.
func (s *SnapshotStore) EventCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// UntimedCount reports how many catalog events carry a publish time
// that does not normalize to a valid HH:MM.
func (s *SnapshotStore) UntimedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, ev := range s.events {
		if _, ok := schedule.ParseTimeOfDay(ev.ResultTime); !ok {
			count++
		}
	}
	return count
}

func (s *SnapshotStore) DeclaredValues(ctx context.Context, eventIDs []string, year int, month time.Month) (map[string]map[int]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]map[int]string, len(eventIDs))
	for _, id := range eventIDs {
		page, ok := s.charts[chartKey{eventID: id, year: year, month: int(month)}]
		if !ok {
			continue
		}
		out := make(map[int]string, len(page))
		for day, value := range page {
			out[day] = value
		}
		result[id] = out
	}
	return result, nil
}
