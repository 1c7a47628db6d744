package conversation

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSummaryLength bounds the digest attached to a scheduled contact.
	DefaultSummaryLength = 500

	summaryWindow     = 6
	summarySnippetLen = 100

	// minSummaryLength is the smallest usable bound: anything below cannot
	// even hold the ellipsis, so such values fall back to the default.
	minSummaryLength = 3
)

// SummarizeConversation renders a bounded digest of the most recent turns,
// suitable for attaching as free-text notes to an appointment. Only the last
// few messages are included; earlier turns are dropped, not summarized.
func SummarizeConversation(messages []ChatMessage, maxLength int) string {
	if len(messages) == 0 {
		return "No conversation data available."
	}
	if maxLength < minSummaryLength {
		maxLength = DefaultSummaryLength
	}

	recent := messages
	if len(recent) > summaryWindow {
		recent = recent[len(recent)-summaryWindow:]
	}

	parts := make([]string, 0, len(recent))
	for _, msg := range recent {
		role := "Assistant"
		if msg.Role == ChatRoleUser {
			role = "Customer"
		}
		parts = append(parts, role+": "+truncateRunes(msg.Content, summarySnippetLen))
	}

	summary := strings.Join(parts, " | ")
	if len(summary) > maxLength {
		summary = truncateRunes(summary, maxLength-3) + "..."
	}
	return "Conversation Summary: " + summary
}

// truncateRunes cuts s to at most n bytes without splitting a multi-byte
// rune; the digest travels to the scheduling backend and must stay valid
// UTF-8.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
