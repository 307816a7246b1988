// Package service implements the command handlers: static startup content
// and the AI advisor front.
package service

import (
	"math/rand"
	"strings"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/command"
	"github.com/boddenberg/startup-bot-go/internal/content"
	"github.com/boddenberg/startup-bot-go/internal/domain"
	"github.com/boddenberg/startup-bot-go/internal/format"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentService formats the curated startup material.
// It holds no mutable state and is safe for concurrent use.
type ContentService struct {
	prefix string
	intn   func(n int) int
	now    func() time.Time
}

// ContentOption customizes a ContentService.
type ContentOption func(*ContentService)

// WithRandom replaces the uniform random source used to pick tips.
func WithRandom(intn func(n int) int) ContentOption {
	return func(s *ContentService) { s.intn = intn }
}

// WithClock replaces the clock used for message timestamps.
func WithClock(now func() time.Time) ContentOption {
	return func(s *ContentService) { s.now = now }
}

// NewContentService creates the content handlers. prefix is the command
// prefix shown in footers and the help listing.
func NewContentService(prefix string, opts ...ContentOption) *ContentService {
	s := &ContentService{
		prefix: prefix,
		intn:   rand.Intn,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tip returns a random tip from the category. Unknown categories yield
// *domain.ErrNotFound listing the valid ones.
func (s *ContentService) Tip(category string) (*domain.Message, error) {
	cat := strings.ToLower(category)
	tips, ok := content.Tips(cat)
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "Category", ID: category, Valid: content.TipCategories()}
	}

	return format.New("💡 Startup Tip - "+titleCase(cat), tips[s.intn(len(tips))], domain.ColorBlue).
		Footer("Use " + s.prefix + "tip <category> for more tips").
		Stamp(s.now()).
		Build(), nil
}

// Resources lists learning, funding, tooling and community resources.
func (s *ContentService) Resources() *domain.Message {
	b := format.New("🚀 Essential Startup Resources", "Curated tools and platforms to help your startup succeed", domain.ColorGreen)
	return addBlocks(b, content.Resources()).Build()
}

// Investors returns the firms and angel guidance for a funding stage.
// Unknown stages yield *domain.ErrNotFound listing the valid ones.
func (s *ContentService) Investors(stage string) (*domain.Message, error) {
	st := strings.ToLower(stage)
	inv, ok := content.Investors(st)
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "Stage", ID: stage, Valid: content.InvestorStages()}
	}

	return format.New("💼 "+titleCase(st)+" Investors", "Top firms and platforms for your stage", domain.ColorGold).
		AddList("Top Firms", inv.Firms).
		AddSection("Finding Angels", inv.Angels).
		AddSection("💡 Pro Tip", content.InvestorProTip).
		Build(), nil
}

// Pitch returns the pitch deck template.
func (s *ContentService) Pitch() *domain.Message {
	b := format.New("📊 Pitch Deck Template (10-15 slides)", "Essential slides every investor pitch needs", domain.ColorRed)
	return addBlocks(b, content.Pitch()).Build()
}

// Metrics returns the key startup metrics to track.
func (s *ContentService) Metrics() *domain.Message {
	b := format.New("📈 Key Startup Metrics", "Track these to understand your business health", domain.ColorOrange)
	return addBlocks(b, content.Metrics()).Build()
}

// Help lists every command with its usage.
func (s *ContentService) Help() *domain.Message {
	specs := command.All()
	lines := make([]string, 0, len(specs))
	for _, spec := range specs {
		lines = append(lines, "**"+spec.Syntax(s.prefix)+"** - "+spec.Description)
	}

	examples := []string{
		"`" + s.prefix + "tip funding` - Get funding tips",
		"`" + s.prefix + "investors seed` - Find seed investors",
		"`" + s.prefix + "ask How do I validate my idea?` - AI advice",
	}

	return format.New("🚀 Startup Helper Bot - Commands", "Your AI-powered startup assistant", domain.ColorBlue).
		AddList("📋 Available Commands", lines).
		AddList("💡 Examples", examples).
		Footer("Built for startups by startups 🚀").
		Build()
}

func addBlocks(b *format.Builder, blocks []content.Block) *format.Builder {
	for _, blk := range blocks {
		b.AddList(blk.Name, blk.Lines)
	}
	return b
}

// titleCase upper-cases the first letter of every word, e.g. "series-a" → "Series-A".
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
