package scheduling

import "time"

// defaultAppointmentHour is the time of day used when the customer states no
// preference.
const defaultAppointmentHour = 14

// SuggestAppointmentTime picks an appointment start time. A non-empty
// preferred time is passed through unmodified; otherwise the next business
// day at 2 PM local time is suggested. This is a fixed heuristic, not an
// availability query against the scheduling backend.
func SuggestAppointmentTime(preferred string) string {
	return suggestAppointmentTimeAt(preferred, time.Now())
}

func suggestAppointmentTimeAt(preferred string, now time.Time) string {
	if preferred != "" {
		return preferred
	}

	day := now.AddDate(0, 0, 1)
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}

	suggested := time.Date(day.Year(), day.Month(), day.Day(), defaultAppointmentHour, 0, 0, 0, day.Location())
	return suggested.Format("2006-01-02T15:04:05")
}
