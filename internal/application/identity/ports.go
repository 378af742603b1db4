package identity

import (
	"context"

	"github.com/koreat/backend/internal/domain/identity"
)

// Mailer delivers verification codes to users. The SMTP implementation
// lives in infrastructure; tests substitute an in-process fake.
type Mailer interface {
	// SendVerificationCode mails a code for the given flow
	SendVerificationCode(ctx context.Context, to, code string, purpose identity.VerificationPurpose) error
}
