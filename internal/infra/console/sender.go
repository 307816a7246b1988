// Package console renders replies as plain text, for offline previews.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/domain"
)

const rule = "────────────────────────────────────────"

// Sender writes replies to an io.Writer instead of a chat channel.
type Sender struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSender creates a Sender writing to w.
func NewSender(w io.Writer) *Sender {
	return &Sender{w: w}
}

// SendText prints a plain text reply.
func (s *Sender) SendText(_ context.Context, _ string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// SendMessage prints a structured message between horizontal rules.
func (s *Sender) SendMessage(_ context.Context, _ string, msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, Render(msg))
	return err
}

// Typing is a no-op on the console.
func (s *Sender) Typing(context.Context, string) error { return nil }

// Render formats a message as text.
func Render(msg *domain.Message) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	if msg.Title != "" {
		fmt.Fprintf(&b, "%s  [#%06x]\n", msg.Title, uint32(msg.Color))
	}
	if msg.Description != "" {
		b.WriteString(msg.Description + "\n")
	}
	for _, sec := range msg.Sections {
		fmt.Fprintf(&b, "\n%s\n%s\n", sec.Name, sec.Value)
	}
	if msg.Footer != "" || !msg.Timestamp.IsZero() {
		b.WriteString("\n")
		parts := make([]string, 0, 2)
		if msg.Footer != "" {
			parts = append(parts, msg.Footer)
		}
		if !msg.Timestamp.IsZero() {
			parts = append(parts, msg.Timestamp.UTC().Format(time.RFC3339))
		}
		b.WriteString(strings.Join(parts, " • ") + "\n")
	}
	b.WriteString(rule + "\n")
	return b.String()
}
