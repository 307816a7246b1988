package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/boddenberg/startup-bot-go/internal/bot"
	"github.com/boddenberg/startup-bot-go/internal/config"
	"github.com/boddenberg/startup-bot-go/internal/infra/console"
	"github.com/boddenberg/startup-bot-go/internal/infra/observability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   `render "<message>"`,
		Short: "Run one command locally and print its replies",
		Example: `  startupbot render "!tip funding"
  startupbot render "!ask how do I price a B2B SaaS?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = config.LoadDotEnv(".env")
			cfg := config.Load()

			logger := zap.NewNop()
			if verbose {
				logger = observability.NewLogger("debug")
			}
			defer logger.Sync()

			dispatcher := newDispatcher(cfg, console.NewSender(cmd.OutOrStdout()), observability.NewMetrics(), logger)

			text := strings.Join(args, " ")
			if !dispatcher.HandleEvent(context.Background(), bot.Event{ChannelID: "console", AuthorID: "console", Content: text}) {
				return fmt.Errorf("%q is not a command (prefix %q)", text, cfg.CommandPrefix)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	return cmd
}
