package models

// PolicyStatus is the three-way urgency classification derived from the
// day-count to expiry. It is recomputed on every read and never persisted.
type PolicyStatus string

const (
	// StatusOK means the policy expires in more than 30 days.
	StatusOK PolicyStatus = "ok"

	// StatusUrgent means the policy expires within the next 30 days
	// (today included).
	StatusUrgent PolicyStatus = "urgent"

	// StatusExpired means the expiry date has already passed.
	StatusExpired PolicyStatus = "expired"
)

// ClientView is the decrypted, status-annotated representation of one client
// record as handed to the UI layer. Name and Plate are plaintext here; a
// record whose ciphertext failed integrity checks carries the decryption
// sentinel instead.
type ClientView struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Plate         string        `json:"plate"`
	Phone         string        `json:"phone"`
	InsuranceType InsuranceType `json:"insurance_type"`
	ExpiryDate    Date          `json:"expiry_date"`
	Notes         string        `json:"notes"`

	// DaysLeft is the whole number of days until expiry, negative when the
	// policy has already expired.
	DaysLeft int `json:"days_left"`

	// Status is the urgency classification derived from DaysLeft.
	Status PolicyStatus `json:"status"`

	// RenewalReminderURL is a calendar event-template link for a renewal
	// reminder placed ahead of the expiry date. It embeds the decrypted
	// name and must not be logged or persisted.
	RenewalReminderURL string `json:"renewal_reminder_url"`
}

// ListClientsResponse is the body of GET /api/clients.
type ListClientsResponse struct {
	// Clients is the decrypted record set, sorted by expiry date ascending.
	Clients []ClientView `json:"clients"`

	// ExpiringSoon is the number of records classified urgent or expired,
	// shown by the UI as a renewal-reminder banner.
	ExpiringSoon int `json:"expiring_soon"`

	// Warning carries a human-readable notice when the backing store could
	// not be reached and the listing degraded to an empty set.
	Warning string `json:"warning,omitempty"`
}

// CreateClientResponse is the body of POST /api/clients.
type CreateClientResponse struct {
	ID int64 `json:"id"`
}

// LoginResponse is the body of a successful register or login call.
// The session token itself travels in the Authorization response header.
type LoginResponse struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}
