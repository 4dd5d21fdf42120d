// Package calendar builds external calendar deep-links for policy renewal
// reminders. It is pure string formatting with no side effects; the client
// service attaches a link to every listed record.
package calendar

import (
	"fmt"
	"net/url"

	"github.com/MrK0xGT/insurance-crm/models"
)

const (
	renderBaseURL = "https://calendar.google.com/calendar/render"

	// reminderLeadDays is how many days before expiry the reminder lands,
	// matching the urgency window of the status component.
	reminderLeadDays = 30

	stampLayout = "20060102"
)

// RenewalReminderLink returns a Google Calendar event-template URL for a
// renewal reminder: an all-day event one day long, placed 30 days before the
// policy expiry, naming the client and the coverage type.
//
// The decrypted client name is embedded in the link; callers hand the result
// straight to the UI and must not log or persist it.
func RenewalReminderLink(clientName string, expiry models.Date, insuranceType models.InsuranceType) string {
	reminder := expiry.Time.AddDate(0, 0, -reminderLeadDays)

	start := reminder.Format(stampLayout)
	end := reminder.AddDate(0, 0, 1).Format(stampLayout)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", fmt.Sprintf("Renewal reminder: %s", clientName))
	params.Set("dates", fmt.Sprintf("%s/%s", start, end))
	params.Set("details", fmt.Sprintf(
		"Client %s: %s insurance expires on %s. Prepare the renewal paperwork.",
		clientName, coverageLabel(insuranceType), expiry.String(),
	))

	return renderBaseURL + "?" + params.Encode()
}

func coverageLabel(t models.InsuranceType) string {
	switch t {
	case models.InsuranceMandatory:
		return "mandatory"
	case models.InsuranceVoluntary:
		return "voluntary"
	case models.InsuranceBoth:
		return "mandatory and voluntary"
	default:
		return string(t)
	}
}
