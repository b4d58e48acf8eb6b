//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mariemajor/looking-beyond-cosmos/internal/bootstrap"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/astro"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/auth"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/guidance"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/numerology"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/subscription"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/config"
	httpiface "github.com/mariemajor/looking-beyond-cosmos/internal/interface/http"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/logger"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideRegistry,
		wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		metrics.NewCollectors,
		wire.Bind(new(moderation.RejectionRecorder), new(*metrics.Collectors)),
		providePostgresPool,
		provideCosmicRepository,
		provideSubscriptionRepository,
		provideReportRepository,
		provideProfileRepository,
		provideWindowStore,
		provideArchive,
		provideChatClient,
		provideTokenizer,
		provideRateLimiter,
		provideAuthConfig,
		provideGuidanceConfig,
		provideGuidanceDependencies,
		provideScheduler,
		astro.NewService,
		numerology.NewService,
		cosmic.NewService,
		moderation.NewService,
		subscription.NewService,
		guidance.NewService,
		auth.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
