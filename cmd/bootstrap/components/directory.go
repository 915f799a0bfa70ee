package components

import (
	"context"

	"campfinder/internal/infra/directory"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"

	"go.uber.org/fx"
)

var DirectoryModule = fx.Module("directory",
	fx.Provide(
		directory.NewCampsiteStore,
		func(s *directory.CampsiteStore) shared.CampsiteDirectory { return s },
		func(s *directory.CampsiteStore) queries.CampsiteReader { return s },
		func(s *directory.CampsiteStore) queries.CampsiteLookup { return s },
		func(s *directory.CampsiteStore) queries.CampsiteFinder { return s },
	),
	fx.Invoke(ensureCampsiteIndexes),
)

func ensureCampsiteIndexes(lc fx.Lifecycle, store *directory.CampsiteStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsureIndexes(ctx)
		},
	})
}
