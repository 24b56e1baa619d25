package ports

import "context"

// AuthService orchestrates login validation, token issuance and user
// registration.
type AuthService interface {
	// ValidateLogin reports whether the credentials identify an account.
	// Unknown email and wrong password are indistinguishable to the caller.
	ValidateLogin(ctx context.Context, email, password string) bool
	// GenerateToken issues a signed token for a known identity. A missing
	// identity returns domain.ErrUserNotFound, not a fault.
	GenerateToken(ctx context.Context, email string) (string, error)
	// Register creates a new system user. It performs no duplicate-email
	// check; preventing duplicates is the caller's concern.
	Register(ctx context.Context, firstName, lastName, email, password string, role int) error
}

// LoginThrottle limits consecutive failed login attempts per account.
type LoginThrottle interface {
	// Allowed reports whether a login attempt for the email may proceed.
	Allowed(ctx context.Context, email string) (bool, error)
	// RecordFailure counts a failed attempt, arming the block once the
	// failure budget is exhausted.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}
