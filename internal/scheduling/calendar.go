package scheduling

import (
	"strings"

	"github.com/jewelryboxai/assistant/internal/ghl"
)

// keywordBucket ties a calendar category to the conversation vocabulary that
// selects it.
type keywordBucket struct {
	category string
	keywords []string
}

// calendarBuckets are evaluated in strict priority order: the first bucket
// with any keyword present in the context wins. The buckets are not mutually
// exclusive by vocabulary, so the order itself is the tie-break — a message
// mentioning both "custom" and "appraisal" resolves to appraisals.
var calendarBuckets = []keywordBucket{
	{
		category: ghl.CalendarAppraisals,
		keywords: []string{"appraisal", "appraise", "appraised", "valuation", "evaluation", "assessment", "audit"},
	},
	{
		category: ghl.CalendarCustomJewelry,
		keywords: []string{"custom", "bespoke", "design consultation", "custom design", "made to order", "one of a kind"},
	},
	{
		category: ghl.CalendarCampaign,
		keywords: []string{"campaign", "promotion", "promo", "offer", "event", "sale"},
	},
}

// SelectCalendar maps free-text conversation context to a calendar id.
// It always returns a valid configured id, falling back to the demo calendar
// when nothing matches.
func SelectCalendar(calendars ghl.CalendarMapping, context string) string {
	lower := strings.ToLower(context)
	for _, bucket := range calendarBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return calendars.ID(bucket.category)
			}
		}
	}
	return calendars.Demo
}
