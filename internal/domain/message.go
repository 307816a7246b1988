package domain

import "time"

// ============================================================
// Structured replies: platform-agnostic view of a bot answer
// ============================================================

// Color is an RGB accent color for a structured message.
type Color int

// Palette used by the bot. Values match Discord's named colors.
const (
	ColorBlue   Color = 0x3498db
	ColorGreen  Color = 0x2ecc71
	ColorGold   Color = 0xf1c40f
	ColorPurple Color = 0x9b59b6
	ColorRed    Color = 0xe74c3c
	ColorOrange Color = 0xe67e22
)

// Section is a named block of text inside a Message.
type Section struct {
	Name  string
	Value string
}

// Message is a structured reply with optional title, description,
// accent color and ordered sections.
type Message struct {
	Title       string
	Description string
	Color       Color
	Sections    []Section
	Footer      string
	Timestamp   time.Time
}

// Reply is one outbound message: either plain text or a structured Message.
type Reply struct {
	Text    string
	Message *Message
}

// TextReply wraps plain text.
func TextReply(text string) Reply {
	return Reply{Text: text}
}

// MessageReply wraps a structured message.
func MessageReply(msg *Message) Reply {
	return Reply{Message: msg}
}

// IsText reports whether the reply carries plain text only.
func (r Reply) IsText() bool {
	return r.Message == nil
}
