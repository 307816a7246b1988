// Package command is the registry of bot commands and the parser that
// turns a chat message into an Invocation.
package command

import (
	"strings"

	"github.com/boddenberg/startup-bot-go/internal/content"

	"github.com/google/uuid"
)

// Command enumerates every supported command.
type Command int

const (
	Tip Command = iota
	Resources
	Investors
	Ask
	Pitch
	Metrics
	Help
)

// Spec describes a command for parsing and for the help listing.
type Spec struct {
	Command     Command
	Name        string
	Usage       string // argument syntax shown after the name
	Description string
	DefaultArg  string
	ArgRequired bool
}

// registry is ordered as the help listing.
var registry = []Spec{
	{Command: Tip, Name: "tip", Usage: "[category]", Description: "Get startup tips (funding, marketing, product, legal, hiring, general)", DefaultArg: content.DefaultTipCategory},
	{Command: Resources, Name: "resources", Description: "Essential tools and platforms"},
	{Command: Investors, Name: "investors", Usage: "[stage]", Description: "Find investors by stage (pre-seed, seed, series-a, series-b)", DefaultArg: content.DefaultInvestorStage},
	{Command: Ask, Name: "ask", Usage: "<question>", Description: "Ask AI for startup advice", ArgRequired: true},
	{Command: Pitch, Name: "pitch", Description: "Get pitch deck template"},
	{Command: Metrics, Name: "metrics", Description: "Key metrics to track"},
	{Command: Help, Name: "help", Description: "Show this message"},
}

var byName = func() map[string]Spec {
	m := make(map[string]Spec, len(registry))
	for _, s := range registry {
		m[s.Name] = s
	}
	return m
}()

// All returns every command spec in help order.
func All() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a command by its exact, case-sensitive name.
func Lookup(name string) (Spec, bool) {
	s, ok := byName[name]
	return s, ok
}

// String returns the command name.
func (c Command) String() string {
	if int(c) >= 0 && int(c) < len(registry) {
		return registry[c].Name
	}
	return "unknown"
}

// Syntax renders the full command syntax, e.g. "!tip [category]".
func (s Spec) Syntax(prefix string) string {
	if s.Usage == "" {
		return prefix + s.Name
	}
	return prefix + s.Name + " " + s.Usage
}

// Invocation is one parsed command message. It lives only while handled.
type Invocation struct {
	ID        string
	Spec      Spec
	Arg       string
	ChannelID string
	AuthorID  string
}

// Command returns the invoked command.
func (inv Invocation) Command() Command { return inv.Spec.Command }

// ArgOrDefault returns the argument, falling back to the command default.
func (inv Invocation) ArgOrDefault() string {
	if inv.Arg == "" {
		return inv.Spec.DefaultArg
	}
	return inv.Arg
}

// Parse recognises "<prefix><name>[ <argument>]". The argument is the
// trimmed remainder of the text. Unknown names are not commands.
func Parse(prefix, text string) (Invocation, bool) {
	if prefix == "" || !strings.HasPrefix(text, prefix) {
		return Invocation{}, false
	}
	rest := text[len(prefix):]

	name, arg := rest, ""
	if i := strings.IndexFunc(rest, isSpace); i >= 0 {
		name, arg = rest[:i], strings.TrimSpace(rest[i:])
	}

	spec, ok := Lookup(name)
	if !ok {
		return Invocation{}, false
	}
	return Invocation{
		ID:   uuid.NewString(),
		Spec: spec,
		Arg:  arg,
	}, true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
