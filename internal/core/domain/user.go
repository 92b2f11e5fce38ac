package domain

// User is read-only reference data from the user directory. Phone, Address and
// IdentityNumber are optional; the gateway request builder substitutes
// placeholder defaults when they are empty.
type User struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	City           string
	IdentityNumber string
}
