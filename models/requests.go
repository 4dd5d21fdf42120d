package models

// RegisterRequest is the payload of POST /api/auth/register.
//
// PasswordConfirm must match Password and Password must be at least six
// characters long; both rules are checked at the transport boundary before
// the auth service is invoked.
type RegisterRequest struct {
	Username        string `json:"username"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateClientRequest is the payload of POST /api/clients.
//
// Name and Plate arrive in plaintext over the authenticated channel and are
// encrypted by the service before anything is persisted. Both are required.
type CreateClientRequest struct {
	Name          string        `json:"name"`
	Plate         string        `json:"plate"`
	Phone         string        `json:"phone"`
	InsuranceType InsuranceType `json:"insurance_type"`
	ExpiryDate    Date          `json:"expiry_date"`
	Notes         string        `json:"notes"`
}
