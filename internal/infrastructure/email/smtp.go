// Package email delivers verification mail over SMTP.
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	identityapp "github.com/koreat/backend/internal/application/identity"
	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure SMTPMailer implements Mailer
var _ identityapp.Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends verification codes through a plain SMTP relay
type SMTPMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *zap.Logger
}

// NewSMTPMailer creates a mailer from SMTP configuration
func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth:   auth,
		from:   cfg.From,
		logger: logger,
	}
}

// SendVerificationCode mails a 6-digit code for the given flow.
// The context deadline is not honored by net/smtp itself; delivery
// failures surface as errors for the caller to map.
func (m *SMTPMailer) SendVerificationCode(_ context.Context, to, code string, purpose identity.VerificationPurpose) error {
	subject, intro := subjectFor(purpose)

	var b strings.Builder
	fmt.Fprintf(&b, "From: KOREAT <%s>\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, `<html><body>
<p>%s</p>
<p style="font-size:24px;font-weight:bold;letter-spacing:4px">%s</p>
<p>The code expires in 5 minutes. If you did not request it, you can ignore this mail.</p>
</body></html>`, intro, code)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(b.String())); err != nil {
		m.logger.Warn("Verification mail delivery failed",
			zap.String("to", to),
			zap.String("purpose", string(purpose)),
			zap.Error(err))
		return fmt.Errorf("failed to send verification mail: %w", err)
	}

	return nil
}

func subjectFor(purpose identity.VerificationPurpose) (subject, intro string) {
	if purpose == identity.PurposeReset {
		return "KOREAT password reset code", "Use this code to reset your KOREAT password:"
	}
	return "KOREAT signup verification code", "Welcome to KOREAT! Your verification code is:"
}
