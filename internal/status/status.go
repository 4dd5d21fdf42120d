// Package status derives time-dependent policy state from stored expiry
// dates. Everything here is a pure function of (expiry, today): the result is
// recomputed on every read and must never be cached or persisted, since
// "today" advances independently of record mutation.
package status

import "github.com/MrK0xGT/insurance-crm/models"

// UrgentWindowDays is the inclusive day-count threshold below which an
// unexpired policy is classified urgent.
const UrgentWindowDays = 30

// DaysLeft returns the whole number of calendar days from today until
// expiry. The result is negative when the policy has already expired.
func DaysLeft(expiry, today models.Date) int {
	return today.DaysUntil(expiry)
}

// Classify maps a day-count to the three-way urgency classification:
//
//	daysLeft < 0            → StatusExpired
//	0 <= daysLeft <= 30     → StatusUrgent (boundary inclusive at 0 and 30)
//	daysLeft > 30           → StatusOK
func Classify(daysLeft int) models.PolicyStatus {
	switch {
	case daysLeft < 0:
		return models.StatusExpired
	case daysLeft <= UrgentWindowDays:
		return models.StatusUrgent
	default:
		return models.StatusOK
	}
}

// Evaluate combines DaysLeft and Classify for one expiry date.
func Evaluate(expiry, today models.Date) (int, models.PolicyStatus) {
	daysLeft := DaysLeft(expiry, today)
	return daysLeft, Classify(daysLeft)
}
