package bootstrap

import (
	"context"

	"campfinder/internal/infra/db"
	"campfinder/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

var MongoModule = fx.Module("mongo",
	fx.Provide(
		NewMongo,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewMongo(lc fx.Lifecycle, cfg config.Config) (*mongo.Database, error) {
	database, cleanup, err := db.ConnectMongo(context.Background(), cfg.Mongo)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return database, nil
}
