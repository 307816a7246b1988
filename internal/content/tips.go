// Package content holds the bot's curated, read-only startup material.
// Tables are built once at init and never mutated; lookups hand out copies.
package content

var tipCategories = []string{"funding", "marketing", "product", "legal", "hiring", "general"}

// TipCategories lists the tip categories in display order.
func TipCategories() []string { return clone(tipCategories) }

// DefaultTipCategory is used when !tip is called without an argument.
const DefaultTipCategory = "general"

var tips = map[string][]string{
	"funding": {
		"💰 Bootstrap first - prove your concept before seeking investment",
		"📊 Know your numbers cold - investors will ask about unit economics",
		"🎯 Target investors who understand your industry and stage",
		"📈 Show traction - revenue, users, or meaningful metrics matter most",
		"🤝 Warm introductions work better than cold emails",
	},
	"marketing": {
		"🎯 Focus on one channel at a time until you master it",
		"👥 Build in public - share your journey on social media",
		"📝 Content marketing: Start a blog addressing customer pain points",
		"🔄 Product-led growth: Make your product easy to try and share",
		"💬 Community building beats paid ads in early stages",
	},
	"product": {
		"🎨 Start with MVP - ship fast, iterate based on feedback",
		"👂 Talk to users weekly - understanding problems > building features",
		"📱 Mobile-first design is crucial in 2025",
		"⚡ Page load speed impacts conversion - optimize ruthlessly",
		"🔐 Build security and privacy in from day one",
	},
	"legal": {
		"📄 Incorporate early - LLC or C-Corp depending on goals",
		"🤝 Always use written contracts and agreements",
		"💼 Vesting schedules protect co-founder equity",
		"™️ Trademark your brand name and logo early",
		"📋 Keep clean cap tables from the start",
	},
	"hiring": {
		"🎯 Hire for culture fit and learning ability over experience",
		"💡 First 10 hires define your company culture",
		"🔍 Use trial projects to assess skills before hiring",
		"📈 Equity can attract talent when cash is limited",
		"🤝 Hire people who've built things, not just worked places",
	},
	"general": {
		"🚀 Launch before you're ready - feedback beats perfection",
		"💪 Founder mental health is crucial - take breaks",
		"📊 Track metrics that matter: CAC, LTV, churn, MRR",
		"🔄 Pivot quickly when data shows you're wrong",
		"🎓 Learn from failures fast and move on",
	},
}

// Tips returns the tips of a category. The key must already be normalized.
func Tips(category string) ([]string, bool) {
	list, ok := tips[category]
	if !ok {
		return nil, false
	}
	return clone(list), true
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
