package content

// Investor groups the firms and angel-finding guidance for a funding stage.
type Investor struct {
	Firms  []string
	Angels string
}

var investorStages = []string{"pre-seed", "seed", "series-a", "series-b"}

// InvestorStages lists the funding stages in display order.
func InvestorStages() []string { return clone(investorStages) }

// DefaultInvestorStage is used when !investors is called without an argument.
const DefaultInvestorStage = "seed"

// InvestorProTip closes every investors reply.
const InvestorProTip = "Warm introductions have 10x higher success rate. Use LinkedIn to find connections."

var investors = map[string]Investor{
	"pre-seed": {
		Firms: []string{
			"🏢 Y Combinator - batch program",
			"🏢 Hustle Fund - $25K-$150K checks",
			"🏢 Boost VC - pre-seed crypto/sci-fi",
			"🏢 Antler - pre-seed global",
			"🏢 On Deck - community + funding",
		},
		Angels: "AngelList, Angel Investment Network, Gust",
	},
	"seed": {
		Firms: []string{
			"🏢 Sequoia Arc - $500K-$1M",
			"🏢 a16z - varies by vertical",
			"🏢 First Round Capital",
			"🏢 Initialized Capital",
			"🏢 Founder Collective",
		},
		Angels: "Seek warm intros via LinkedIn",
	},
	"series-a": {
		Firms: []string{
			"🏢 Sequoia Capital",
			"🏢 Accel Partners",
			"🏢 Benchmark",
			"🏢 Greylock Partners",
			"🏢 Lightspeed Venture",
		},
		Angels: "Focus on institutional VCs",
	},
	"series-b": {
		Firms: []string{
			"🏢 Tiger Global",
			"🏢 Coatue Management",
			"🏢 Insight Partners",
			"🏢 General Catalyst",
			"🏢 Index Ventures",
		},
		Angels: "Growth-stage institutional only",
	},
}

// Investors returns the record for a stage. The key must already be normalized.
func Investors(stage string) (Investor, bool) {
	inv, ok := investors[stage]
	if !ok {
		return Investor{}, false
	}
	return Investor{Firms: clone(inv.Firms), Angels: inv.Angels}, true
}
