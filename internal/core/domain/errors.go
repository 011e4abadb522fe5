package domain

import "errors"

var (
	ErrMissingFields          = errors.New("missing required fields")
	ErrPasswordMismatch       = errors.New("passwords do not match")
	ErrPasswordTooShort       = errors.New("password too short")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrSignUpFailed           = errors.New("sign up failed")
	ErrSignInFailed           = errors.New("sign in failed")
	ErrProfileUpdateFailed    = errors.New("profile update failed")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutStarted  = errors.New("checkout already started")
	ErrCartNotPersisted = errors.New("cart not persisted")
	ErrEventNotFound    = errors.New("event not found")

	ErrLedgerUnavailable  = errors.New("booking ledger unavailable")
	ErrHistoryUnavailable = errors.New("booking history unavailable")
)

const MinPasswordLength = 6

var userMessages = []struct {
	err error
	msg string
}{
	{ErrMissingFields, "Please fill in all fields"},
	{ErrPasswordMismatch, "Passwords do not match"},
	{ErrPasswordTooShort, "Password must be at least 6 characters"},
	{ErrEmailAlreadyRegistered, "This email is already registered"},
	{ErrInvalidCredentials, "Failed to log in. Please enter your credentials."},
	{ErrSignUpFailed, "Failed to create an account. Please try again."},
	{ErrSignInFailed, "Failed to log in. Please try again."},
	{ErrProfileUpdateFailed, "Failed to update name."},
	{ErrNotAuthenticated, "Please log in to continue"},
	{ErrEmptyCart, "Your cart is empty"},
	{ErrCheckoutStarted, "Your booking is already being processed"},
	{ErrEventNotFound, "Event not found"},
	{ErrLedgerUnavailable, "We could not save your booking. Please try again."},
	{ErrHistoryUnavailable, "Failed to load booking history"},
}

// UserMessage maps an error to the text shown next to the form or page that caused it.
func UserMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return "Something went wrong. Please try again."
}
