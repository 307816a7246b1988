package discord

import (
	"time"

	"github.com/boddenberg/startup-bot-go/internal/domain"

	"github.com/bwmarrin/discordgo"
)

// ToEmbed converts a domain message into a Discord embed.
// Sections become non-inline fields in their original order.
func ToEmbed(msg *domain.Message) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Description,
		Color:       int(msg.Color),
	}

	for _, s := range msg.Sections {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   s.Name,
			Value:  s.Value,
			Inline: false,
		})
	}

	if msg.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: msg.Footer}
	}
	if !msg.Timestamp.IsZero() {
		embed.Timestamp = msg.Timestamp.Format(time.RFC3339)
	}

	return embed
}
