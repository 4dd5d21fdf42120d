package models

import "time"

// InsuranceType is the enumerated coverage tag attached to a client record.
type InsuranceType string

const (
	// InsuranceMandatory marks compulsory (liability) coverage only.
	InsuranceMandatory InsuranceType = "mandatory"

	// InsuranceVoluntary marks optional (comprehensive) coverage only.
	InsuranceVoluntary InsuranceType = "voluntary"

	// InsuranceBoth marks a policy where a single shared expiry date covers
	// both the compulsory and the optional coverage.
	InsuranceBoth InsuranceType = "both"
)

// Valid reports whether t is one of the known coverage tags.
func (t InsuranceType) Valid() bool {
	switch t {
	case InsuranceMandatory, InsuranceVoluntary, InsuranceBoth:
		return true
	}
	return false
}

// ClientRecord is one policy entry owned by exactly one agent.
//
// Name and Plate are stored encrypted; the plaintext exists only transiently
// in memory while a record is being created or read. AgentUsername is the sole
// tenant-isolation key: it is set at creation from a verified authentication
// result and never changed.
type ClientRecord struct {
	// ID is the store-assigned unique identifier of the record.
	ID int64 `json:"id"`

	// AgentUsername is the username of the owning agent.
	// Every read, write, and delete is scoped by this field.
	AgentUsername string `json:"-"`

	// EncryptedName is the ciphertext blob of the client's name.
	EncryptedName string `json:"-"`

	// EncryptedPlate is the ciphertext blob of the vehicle plate.
	EncryptedPlate string `json:"-"`

	// Phone is the client's phone number, stored in plaintext.
	Phone string `json:"phone"`

	// InsuranceType tags which coverage the stored expiry date applies to.
	InsuranceType InsuranceType `json:"insurance_type"`

	// ExpiryDate is the policy expiry calendar date.
	ExpiryDate Date `json:"expiry_date"`

	// Notes is free-text commentary (vehicle model, coverage wishes, ...).
	Notes string `json:"notes"`

	// CreatedAt is the timestamp when the record was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ClientRecord model.
func (c ClientRecord) TableName() string {
	return "clients"
}
