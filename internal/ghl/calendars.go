package ghl

// Calendar category names. Each maps to an opaque backend calendar id.
const (
	CalendarAppraisals    = "appraisals"
	CalendarCustomJewelry = "custom_jewelry"
	CalendarCampaign      = "campaign"
	CalendarDemo          = "demo"
)

// CalendarMapping is the static category → calendar id mapping, configured
// once at startup and shared read-only for the process lifetime.
type CalendarMapping struct {
	Appraisals    string
	CustomJewelry string
	Campaign      string
	Demo          string
}

// ID returns the calendar id for a category name, falling back to the demo
// calendar for unknown categories.
func (m CalendarMapping) ID(category string) string {
	switch category {
	case CalendarAppraisals:
		return m.Appraisals
	case CalendarCustomJewelry:
		return m.CustomJewelry
	case CalendarCampaign:
		return m.Campaign
	default:
		return m.Demo
	}
}

// TypeOf reverse-maps a calendar id to its human-readable category name.
// Unknown ids yield the "Unknown" sentinel, never an error.
func (m CalendarMapping) TypeOf(calendarID string) string {
	switch calendarID {
	case m.Appraisals:
		return CalendarAppraisals
	case m.CustomJewelry:
		return CalendarCustomJewelry
	case m.Campaign:
		return CalendarCampaign
	case m.Demo:
		return CalendarDemo
	default:
		return "Unknown"
	}
}

// Contains reports whether id is one of the configured calendar ids.
func (m CalendarMapping) Contains(id string) bool {
	return m.TypeOf(id) != "Unknown"
}
