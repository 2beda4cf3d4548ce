package store

import (
	"sync"

	"github.com/robfig/cron/v3"

	"drd/internal/providers"
	"drd/internal/store/interfaces"
	"drd/internal/structures"
)

// Refresher periodically reloads the snapshot file so declared values
// entered on the admin side become visible without a restart.
type Refresher struct {
	config *structures.Config
	logger providers.Logger
	store  *SnapshotStore
	cron   *cron.Cron
	opsMu  sync.Mutex
}

func (r *Refresher) Init() error {
	r.cron = cron.New()

	_, err := r.cron.AddFunc(r.config.Catalog.RefreshSchedule, func() {
		r.opsMu.Lock()
		defer r.opsMu.Unlock()

		if err := r.store.Load(); err != nil {
			r.logger.Errorf(providers.TypeApp, "Snapshot reload failed: %s", err)
			return
		}
		r.logger.Debugf(providers.TypeApp, "Snapshot reloaded from %s", r.config.Catalog.SnapshotPath)
	})
	if err != nil {
		return err
	}

	r.cron.Start()
	return nil
}

func (r *Refresher) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

func (r *Refresher) Restore() error {
	r.opsMu.Lock()
	defer r.opsMu.Unlock()
	return r.store.Load()
}

func NewRefresher(config *structures.Config, logger providers.Logger, store *SnapshotStore) interfaces.RefresherInterface {
	return &Refresher{
		config: config,
		logger: logger,
		store:  store,
	}
}
