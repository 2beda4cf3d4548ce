package store

import (
	"context"
	"time"

	"drd/internal/models"
)

// CatalogStore lists the event catalog. Implementations must honor
// context cancellation and return an error rather than partial data.
type CatalogStore interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// ValueStore resolves declared values in month pages: event id -> day
// of month -> raw value. Events without a page for the month are simply
// absent from the result.
type ValueStore interface {
	DeclaredValues(ctx context.Context, eventIDs []string, year int, month time.Month) (map[string]map[int]string, error)
}
