package format_test

import (
	"strings"
	"testing"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/domain"
	"github.com/boddenberg/startup-bot-go/internal/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_PreservesSectionOrder(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	msg := format.New("Title", "desc", domain.ColorGold).
		AddSection("b", "2").
		AddSection("a", "1").
		AddList("c", []string{"x", "y"}).
		Footer("foot").
		Stamp(ts).
		Build()

	assert.Equal(t, "Title", msg.Title)
	assert.Equal(t, "desc", msg.Description)
	assert.Equal(t, domain.ColorGold, msg.Color)
	assert.Equal(t, "foot", msg.Footer)
	assert.Equal(t, ts, msg.Timestamp)
	assert.Equal(t, []domain.Section{
		{Name: "b", Value: "2"},
		{Name: "a", Value: "1"},
		{Name: "c", Value: "x\ny"},
	}, msg.Sections)
}

func TestChunk_ShortTextIsSingleChunk(t *testing.T) {
	assert.Equal(t, []string{"hello"}, format.Chunk("hello", format.ChunkSize))
	assert.Equal(t, []string{""}, format.Chunk("", format.ChunkSize))

	exact := strings.Repeat("a", format.ChunkSize)
	assert.Equal(t, []string{exact}, format.Chunk(exact, format.ChunkSize))
}

func TestChunk_4500Characters(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 4500; i++ {
		sb.WriteByte(byte('a' + i%26))
	}
	text := sb.String()

	chunks := format.Chunk(text, format.ChunkSize)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 1900)
	assert.Len(t, chunks[1], 1900)
	assert.Len(t, chunks[2], 700)
	assert.Equal(t, text[:1900], chunks[0])
	assert.Equal(t, text[1900:3800], chunks[1])
	assert.Equal(t, text[3800:], chunks[2])
}

func TestChunk_CountsRunes(t *testing.T) {
	text := strings.Repeat("🚀", 5)

	chunks := format.Chunk(text, 2)

	assert.Equal(t, []string{"🚀🚀", "🚀🚀", "🚀"}, chunks)
}

func TestAnswer_SingleMessageHasTitle(t *testing.T) {
	msgs := format.Answer("short answer")

	require.Len(t, msgs, 1)
	assert.Equal(t, format.AdvisorTitle, msgs[0].Title)
	assert.Equal(t, "short answer", msgs[0].Description)
	assert.Equal(t, domain.ColorPurple, msgs[0].Color)
}

func TestAnswer_ChunkedMessagesAreUntitled(t *testing.T) {
	msgs := format.Answer(strings.Repeat("z", 2000))

	require.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.Empty(t, m.Title)
		assert.Equal(t, domain.ColorPurple, m.Color)
	}
	assert.Len(t, msgs[0].Description, 1900)
	assert.Len(t, msgs[1].Description, 100)
}
