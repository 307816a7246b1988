package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/config"
	"github.com/boddenberg/startup-bot-go/internal/handler"
	"github.com/boddenberg/startup-bot-go/internal/infra/discord"
	"github.com/boddenberg/startup-bot-go/internal/infra/observability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and serve commands until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runBot(ctx)
		},
	}
}

func runBot(ctx context.Context) error {
	// --- Load .env file (for local development) ---
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: .env not loaded: %v\n", err)
	}

	// --- Config ---
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("command_prefix", cfg.CommandPrefix),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("advisor_enabled", cfg.AdvisorEnabled()),
		zap.String("advisor_model", cfg.AnthropicModel),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Int("ops_port", cfg.OpsPort),
	)
	if !cfg.AdvisorEnabled() {
		logger.Warn("ANTHROPIC_API_KEY not set, !ask will reply with a setup notice")
	}

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "startupbot")
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Discord ---
	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}
	dispatcher := newDispatcher(cfg, discord.NewSender(session), metrics, logger)
	discordBot := discord.NewBot(session, dispatcher, logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return discordBot.Run(ctx)
	})

	// --- Ops server ---
	if cfg.OpsPort > 0 {
		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.OpsPort),
			Handler:      handler.NewRouter(discordBot, cfg.AdvisorEnabled(), metrics, logger),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		g.Go(func() error {
			logger.Info("ops server starting", zap.Int("port", cfg.OpsPort))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	logger.Info("bot stopped")
	return err
}
