package conversation

import (
	"regexp"
	"strings"
)

// appointmentPatterns matches customer messages showing scheduling intent.
var appointmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(book|schedule|set\s*up|arrange)\s*(an?\s*)?(appointment|consultation|meeting|visit)\b`),
	regexp.MustCompile(`(?i)\bappointment\b`),
	regexp.MustCompile(`(?i)\bcome\s*(in|by)\b.*\b(see|look|discuss)\b`),
	regexp.MustCompile(`(?i)\b(meet|speak|talk)\s*(to|with)\s*(someone|a\s*(jeweler|specialist|consultant))\b`),
	regexp.MustCompile(`(?i)\bschedule\b`),
	regexp.MustCompile(`(?i)\bbook\s*(a|some)?\s*time\b`),
}

// IsAppointmentRequest returns true if the message indicates the customer
// wants to schedule a visit rather than keep chatting.
func IsAppointmentRequest(message string) bool {
	message = strings.TrimSpace(message)
	if message == "" {
		return false
	}
	for _, pat := range appointmentPatterns {
		if pat.MatchString(message) {
			return true
		}
	}
	return false
}
