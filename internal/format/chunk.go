package format

import "github.com/boddenberg/startup-bot-go/internal/domain"

// AdvisorTitle heads a single-message advisor answer.
const AdvisorTitle = "🤖 AI Startup Advisor"

// Chunk splits text into consecutive slices of at most size characters.
// Slicing is positional and ignores word boundaries. Characters are
// counted as runes so multi-byte emoji are never cut in half.
func Chunk(text string, size int) []string {
	runes := []rune(text)
	if size <= 0 || len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// Answer renders an advisor answer. A short answer becomes one titled
// message; a long one becomes title-less messages, one per chunk, in order.
func Answer(text string) []*domain.Message {
	chunks := Chunk(text, ChunkSize)
	if len(chunks) == 1 {
		return []*domain.Message{New(AdvisorTitle, text, domain.ColorPurple).Build()}
	}

	msgs := make([]*domain.Message, 0, len(chunks))
	for _, c := range chunks {
		msgs = append(msgs, New("", c, domain.ColorPurple).Build())
	}
	return msgs
}
