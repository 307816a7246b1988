package discord

import (
	"context"
	"fmt"

	"github.com/boddenberg/startup-bot-go/internal/domain"

	"github.com/bwmarrin/discordgo"
)

// channelAPI is the subset of *discordgo.Session used to reply.
type channelAPI interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
}

// Sender posts replies to Discord channels.
type Sender struct {
	api channelAPI
}

// NewSender wraps a Discord session (or any compatible channel API).
func NewSender(api channelAPI) *Sender {
	return &Sender{api: api}
}

// SendText posts a plain text message.
func (s *Sender) SendText(ctx context.Context, channelID, text string) error {
	if _, err := s.api.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord send text: %w", err)
	}
	return nil
}

// SendMessage posts a structured message as an embed.
func (s *Sender) SendMessage(ctx context.Context, channelID string, msg *domain.Message) error {
	if _, err := s.api.ChannelMessageSendEmbed(channelID, ToEmbed(msg), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord send embed: %w", err)
	}
	return nil
}

// Typing shows the typing indicator in the channel.
func (s *Sender) Typing(ctx context.Context, channelID string) error {
	return s.api.ChannelTyping(channelID, discordgo.WithContext(ctx))
}
