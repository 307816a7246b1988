package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/bot"
	"github.com/boddenberg/startup-bot-go/internal/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- Fakes ---

type fakeChannelAPI struct {
	texts  []string
	embeds []*discordgo.MessageEmbed
	typing []string
	err    error
}

func (f *fakeChannelAPI) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.texts = append(f.texts, channelID+":"+content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeChannelAPI) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeChannelAPI) ChannelTyping(channelID string, _ ...discordgo.RequestOption) error {
	f.typing = append(f.typing, channelID)
	return nil
}

type recordingHandler struct {
	events []bot.Event
}

func (h *recordingHandler) HandleEvent(_ context.Context, ev bot.Event) bool {
	h.events = append(h.events, ev)
	return true
}

// --- Tests ---

func TestToEmbed(t *testing.T) {
	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	msg := &domain.Message{
		Title:       "💼 Seed Investors",
		Description: "Top firms",
		Color:       domain.ColorGold,
		Sections: []domain.Section{
			{Name: "Top Firms", Value: "a\nb"},
			{Name: "Finding Angels", Value: "c"},
		},
		Footer:    "foot",
		Timestamp: ts,
	}

	embed := ToEmbed(msg)

	assert.Equal(t, "💼 Seed Investors", embed.Title)
	assert.Equal(t, "Top firms", embed.Description)
	assert.Equal(t, 0xf1c40f, embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Top Firms", embed.Fields[0].Name)
	assert.Equal(t, "a\nb", embed.Fields[0].Value)
	assert.False(t, embed.Fields[0].Inline)
	assert.Equal(t, "Finding Angels", embed.Fields[1].Name)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "foot", embed.Footer.Text)
	assert.Equal(t, "2025-03-04T05:06:07Z", embed.Timestamp)
}

func TestToEmbed_Minimal(t *testing.T) {
	embed := ToEmbed(&domain.Message{Description: "chunk", Color: domain.ColorPurple})

	assert.Empty(t, embed.Title)
	assert.Empty(t, embed.Fields)
	assert.Nil(t, embed.Footer)
	assert.Empty(t, embed.Timestamp)
}

func TestSender(t *testing.T) {
	api := &fakeChannelAPI{}
	s := NewSender(api)
	ctx := context.Background()

	require.NoError(t, s.SendText(ctx, "c1", "hello"))
	require.NoError(t, s.SendMessage(ctx, "c1", &domain.Message{Title: "t"}))
	require.NoError(t, s.Typing(ctx, "c1"))

	assert.Equal(t, []string{"c1:hello"}, api.texts)
	require.Len(t, api.embeds, 1)
	assert.Equal(t, "t", api.embeds[0].Title)
	assert.Equal(t, []string{"c1"}, api.typing)
}

func TestSender_WrapsErrors(t *testing.T) {
	cause := errors.New("rate limited")
	s := NewSender(&fakeChannelAPI{err: cause})

	err := s.SendText(context.Background(), "c1", "x")

	assert.ErrorIs(t, err, cause)
}

func TestOnMessageCreate_FiltersBots(t *testing.T) {
	h := &recordingHandler{}
	b := NewBot(nil, h, zap.NewNop())

	state := discordgo.NewState()
	state.User = &discordgo.User{ID: "self"}
	s := &discordgo.Session{State: state}

	b.onMessageCreate(s, &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "c1", Content: "!tip", Author: &discordgo.User{ID: "self"},
	}})
	b.onMessageCreate(s, &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "c1", Content: "!tip", Author: &discordgo.User{ID: "other-bot", Bot: true},
	}})
	b.onMessageCreate(s, &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "c1", Content: "!tip funding", Author: &discordgo.User{ID: "u1"},
	}})

	require.Len(t, h.events, 1)
	assert.Equal(t, bot.Event{ChannelID: "c1", AuthorID: "u1", Content: "!tip funding"}, h.events[0])
	assert.False(t, b.Ready())
}
