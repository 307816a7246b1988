package main

import (
	"net/http"

	"github.com/boddenberg/startup-bot-go/internal/bot"
	"github.com/boddenberg/startup-bot-go/internal/config"
	"github.com/boddenberg/startup-bot-go/internal/infra/client"
	"github.com/boddenberg/startup-bot-go/internal/infra/observability"
	"github.com/boddenberg/startup-bot-go/internal/infra/resilience"
	"github.com/boddenberg/startup-bot-go/internal/port"
	"github.com/boddenberg/startup-bot-go/internal/service"

	"go.uber.org/zap"
)

// newDispatcher wires the command handlers around the given sender.
func newDispatcher(cfg *config.Config, sender port.Sender, metrics *observability.Metrics, logger *zap.Logger) *bot.Dispatcher {
	// --- Resilience ---
	cb := resilience.NewCircuitBreaker("anthropic")

	// --- Clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	advisorClient := client.NewAdvisorClient(
		httpClient,
		cfg.AnthropicAPIURL,
		cfg.AnthropicAPIKey,
		cfg.AnthropicModel,
		cb,
	)

	// --- Services ---
	contentSvc := service.NewContentService(cfg.CommandPrefix)
	advisorSvc := service.NewAdvisorService(advisorClient, metrics, logger)

	return bot.NewDispatcher(cfg.CommandPrefix, contentSvc, advisorSvc, sender, metrics, logger)
}
