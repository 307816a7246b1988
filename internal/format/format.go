// Package format turns handler output into structured messages and splits
// oversized text into chunks that fit the chat platform's message ceiling.
package format

import (
	"strings"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/domain"
)

// ChunkSize is the largest slice of text sent in one message.
// Discord rejects messages above 2000 characters.
const ChunkSize = 1900

// Builder assembles a domain.Message. Sections keep insertion order.
type Builder struct {
	msg domain.Message
}

// New starts a message with a title, optional description and accent color.
func New(title, description string, color domain.Color) *Builder {
	return &Builder{msg: domain.Message{
		Title:       title,
		Description: description,
		Color:       color,
	}}
}

// AddSection appends a named section.
func (b *Builder) AddSection(name, value string) *Builder {
	b.msg.Sections = append(b.msg.Sections, domain.Section{Name: name, Value: value})
	return b
}

// AddList appends a section whose value is the newline-joined lines.
func (b *Builder) AddList(name string, lines []string) *Builder {
	return b.AddSection(name, List(lines...))
}

// Footer sets the footer text.
func (b *Builder) Footer(text string) *Builder {
	b.msg.Footer = text
	return b
}

// Stamp sets the message timestamp.
func (b *Builder) Stamp(t time.Time) *Builder {
	b.msg.Timestamp = t.UTC()
	return b
}

// Build returns the assembled message.
func (b *Builder) Build() *domain.Message {
	msg := b.msg
	msg.Sections = append([]domain.Section(nil), b.msg.Sections...)
	return &msg
}

// List joins lines with newlines.
func List(lines ...string) string {
	return strings.Join(lines, "\n")
}
