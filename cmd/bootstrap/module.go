package bootstrap

import (
	"campfinder/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything the use cases need: both stores, tokens and the
// command/query layer.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MongoModule,
	JWTModule,
	components.PersistenceModule,
	components.DirectoryModule,
	components.UseCaseModule,
)

// ServerModule adds the HTTP surface and the outbox relay.
var ServerModule = fx.Options(
	CoreModule,
	RateLimitModule,
	components.MessagingModule,
	components.HandlerModule,
)
