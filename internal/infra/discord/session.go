// Package discord connects the command dispatcher to a Discord bot session.
package discord

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/boddenberg/startup-bot-go/internal/bot"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// PresenceText is shown as the bot's "Watching ..." activity.
const PresenceText = "startups grow 🚀"

// EventHandler receives inbound chat messages.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev bot.Event) bool
}

// NewSession creates a Discord session with the intents needed to read
// guild and direct messages.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
	return session, nil
}

// Bot owns the session lifecycle and forwards messages to the handler.
// discordgo runs every event handler in its own goroutine, so slow
// commands never block the gateway loop.
type Bot struct {
	session *discordgo.Session
	handler EventHandler
	logger  *zap.Logger

	ctx   context.Context
	ready atomic.Bool
}

// NewBot creates the Bot.
func NewBot(session *discordgo.Session, handler EventHandler, logger *zap.Logger) *Bot {
	return &Bot{
		session: session,
		handler: handler,
		logger:  logger,
		ctx:     context.Background(),
	}
}

// Run opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onMessageCreate)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	b.logger.Info("discord session opened")

	<-ctx.Done()

	b.ready.Store(false)
	if err := b.session.Close(); err != nil {
		b.logger.Warn("discord close failed", zap.Error(err))
	}
	b.logger.Info("discord session closed")
	return nil
}

// Ready reports whether the gateway handshake completed.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.ready.Store(true)
	b.logger.Info("connected to discord",
		zap.String("user", r.User.Username),
		zap.Int("guilds", len(r.Guilds)),
	)

	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{{
			Name: PresenceText,
			Type: discordgo.ActivityTypeWatching,
		}},
	})
	if err != nil {
		b.logger.Warn("set presence failed", zap.Error(err))
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	b.handler.HandleEvent(b.ctx, bot.Event{
		ChannelID: m.ChannelID,
		AuthorID:  m.Author.ID,
		Content:   m.Content,
	})
}
