package identity

import "context"

// VerificationRepository defines the persistence contract for the
// verification ledger. The ledger holds at most one record per
// (email, purpose); Replace enforces that by deleting before inserting.
type VerificationRepository interface {
	// Replace deletes any existing record for the verification's
	// (email, purpose) pair and inserts the new one atomically.
	Replace(ctx context.Context, v *EmailVerification) error

	// Update persists in-place mutations (the verify transition)
	Update(ctx context.Context, v *EmailVerification) error

	// FindLatest returns the most recently created record for the pair
	FindLatest(ctx context.Context, email string, purpose VerificationPurpose) (*EmailVerification, error)

	// Delete removes the record for the pair (the consume transition)
	Delete(ctx context.Context, email string, purpose VerificationPurpose) error
}
