// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service and
// dispatch layers from the chat platform and the AI provider.
package port

import (
	"context"

	"github.com/boddenberg/startup-bot-go/internal/domain"
)

// AdvisorCaller sends one question to the text-generation provider and
// returns the answer text.
type AdvisorCaller interface {
	Ask(ctx context.Context, question string) (string, error)
	// Configured reports whether the provider credential is present.
	Configured() bool
}

// Sender delivers replies to a chat channel.
type Sender interface {
	SendText(ctx context.Context, channelID, text string) error
	SendMessage(ctx context.Context, channelID string, msg *domain.Message) error
	// Typing shows a "bot is typing" hint while a slow reply is prepared.
	Typing(ctx context.Context, channelID string) error
}
