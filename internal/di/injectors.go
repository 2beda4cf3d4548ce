//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"drd/internal"
	"drd/internal/controllers"
	"drd/internal/providers"
	"drd/internal/services"
	"drd/internal/store"
	"drd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		store.NewZstdCompressor,
		store.NewSnapshotStore,
		store.NewCachedValueStore,
		store.NewRefresher,
		wire.Bind(new(store.CatalogStore), new(*store.SnapshotStore)),
		wire.Bind(new(providers.CatalogStats), new(*store.SnapshotStore)),

		services.NewCardService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
