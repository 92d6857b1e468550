//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/vedicworks/muhurat-api/internal/bootstrap"
	"github.com/vedicworks/muhurat-api/internal/domain/astro"
	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
	"github.com/vedicworks/muhurat-api/internal/domain/names"
	"github.com/vedicworks/muhurat-api/internal/infra/config"
	httpiface "github.com/vedicworks/muhurat-api/internal/interface/http"
	"github.com/vedicworks/muhurat-api/pkg/logger"
	"github.com/vedicworks/muhurat-api/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.New,
		provideMuhuratConfig,
		provideEphemeris,
		provideOpenAIClient,
		provideTraitMapper,
		provideLocationResolver,
		provideSuggestionStore,
		provideAuditLog,
		astro.NewCalculator,
		muhurat.NewService,
		names.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
