package content

// Block is a named, ordered list of lines rendered as one message section.
type Block struct {
	Name  string
	Lines []string
}

var resources = []Block{
	{Name: "📚 Learning", Lines: []string{
		"• Y Combinator Startup School (free)",
		"• How to Start a Startup (YC course)",
		"• The Lean Startup by Eric Ries",
		"• Zero to One by Peter Thiel",
	}},
	{Name: "💰 Funding", Lines: []string{
		"• YC Combinator",
		"• TechStars",
		"• AngelList",
		"• Crunchbase (research)",
		"• Product Hunt (launches)",
	}},
	{Name: "🛠️ Tools", Lines: []string{
		"• Notion (docs)",
		"• Figma (design)",
		"• Vercel/Replit (hosting)",
		"• Stripe (payments)",
		"• PostHog (analytics)",
	}},
	{Name: "👥 Community", Lines: []string{
		"• Indie Hackers",
		"• Reddit r/startups",
		"• Twitter startup community",
		"• Local startup meetups",
		"• Slack communities",
	}},
}

var pitch = []Block{
	{Name: "📝 Slide Structure", Lines: []string{
		"1️⃣ **Cover**: Company name, tagline, contact",
		"2️⃣ **Problem**: What pain point are you solving?",
		"3️⃣ **Solution**: Your product/service",
		"4️⃣ **Market Size**: TAM/SAM/SOM breakdown",
		"5️⃣ **Product Demo**: Screenshots or video",
		"6️⃣ **Traction**: Users, revenue, growth metrics",
		"7️⃣ **Business Model**: How you make money",
		"8️⃣ **Competition**: Competitive landscape",
		"9️⃣ **Go-to-Market**: Customer acquisition strategy",
		"🔟 **Team**: Founders and key hires",
		"1️⃣1️⃣ **Financials**: 3-year projections",
		"1️⃣2️⃣ **Ask**: How much, use of funds, timeline",
	}},
	{Name: "⏱️ Timing", Lines: []string{
		"Aim for 10-15 minutes. Leave 10+ minutes for Q&A.",
	}},
	{Name: "🎨 Design Tips", Lines: []string{
		"• Use Pitch, Canva, or Google Slides",
		"• Keep it simple and visual",
		"• One idea per slide",
		"• Large fonts (30pt minimum)",
	}},
}

var metrics = []Block{
	{Name: "💰 Financial", Lines: []string{
		"• **MRR/ARR**: Monthly/Annual Recurring Revenue",
		"• **Burn Rate**: Cash spent per month",
		"• **Runway**: Months until out of cash",
		"• **Revenue Growth**: Month-over-month %",
	}},
	{Name: "👥 Customer", Lines: []string{
		"• **CAC**: Customer Acquisition Cost",
		"• **LTV**: Lifetime Value",
		"• **LTV:CAC Ratio**: Should be 3:1 or better",
		"• **Churn Rate**: % customers lost per month",
	}},
	{Name: "📊 Product", Lines: []string{
		"• **DAU/MAU**: Daily/Monthly Active Users",
		"• **Activation Rate**: % completing key action",
		"• **Retention**: % users returning",
		"• **NPS**: Net Promoter Score",
	}},
	{Name: "🎯 Growth", Lines: []string{
		"• **Viral Coefficient**: Users referred per user",
		"• **Conversion Rate**: % visitors to customers",
		"• **Payback Period**: Time to recover CAC",
	}},
}

// Resources returns the resource sections in display order.
func Resources() []Block { return cloneBlocks(resources) }

// Pitch returns the pitch deck template sections in display order.
func Pitch() []Block { return cloneBlocks(pitch) }

// Metrics returns the key metrics sections in display order.
func Metrics() []Block { return cloneBlocks(metrics) }

func cloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = Block{Name: b.Name, Lines: clone(b.Lines)}
	}
	return out
}
