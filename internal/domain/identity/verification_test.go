package identity

import (
	"testing"
	"time"

	"github.com/koreat/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailVerification(t *testing.T) {
	t.Run("issues a six digit code", func(t *testing.T) {
		v, err := NewEmailVerification("a@example.com", PurposeRegister)
		require.NoError(t, err)

		assert.Len(t, v.Code, 6)
		assert.GreaterOrEqual(t, v.Code, "100000")
		assert.LessOrEqual(t, v.Code, "999999")
		assert.Equal(t, VerificationIssued, v.State)
		assert.Empty(t, v.Token)
	})

	t.Run("rejects unknown purpose", func(t *testing.T) {
		_, err := NewEmailVerification("a@example.com", VerificationPurpose("other"))
		assert.Error(t, err)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewEmailVerification("nope", PurposeReset)
		assert.Error(t, err)
	})
}

func TestEmailVerification_Verify(t *testing.T) {
	t.Run("correct code yields token and verified state", func(t *testing.T) {
		v, err := NewEmailVerification("a@example.com", PurposeRegister)
		require.NoError(t, err)

		token, err := v.Verify(v.Code, time.Now())
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, VerificationVerified, v.State)
		assert.Equal(t, token, v.Token)
	})

	t.Run("wrong code fails with mismatch", func(t *testing.T) {
		v, err := NewEmailVerification("a@example.com", PurposeRegister)
		require.NoError(t, err)

		_, err = v.Verify("000000", time.Now())
		assert.Equal(t, shared.ErrCodeMismatch, err)
		assert.Equal(t, VerificationIssued, v.State)
	})

	t.Run("expired record fails regardless of code", func(t *testing.T) {
		v, err := NewEmailVerification("a@example.com", PurposeReset)
		require.NoError(t, err)
		v.CreatedAt = time.Now().Add(-CodeTTL - time.Second)

		_, err = v.Verify(v.Code, time.Now())
		assert.Equal(t, shared.ErrCodeExpired, err)
	})

	t.Run("boundary: exactly at the window edge is still valid", func(t *testing.T) {
		v, err := NewEmailVerification("a@example.com", PurposeRegister)
		require.NoError(t, err)

		assert.False(t, v.IsExpired(v.CreatedAt.Add(CodeTTL)))
		assert.True(t, v.IsExpired(v.CreatedAt.Add(CodeTTL+time.Nanosecond)))
	})

	t.Run("verify twice fails on state", func(t *testing.T) {
		v, err := NewEmailVerification("a@example.com", PurposeRegister)
		require.NoError(t, err)

		_, err = v.Verify(v.Code, time.Now())
		require.NoError(t, err)

		_, err = v.Verify(v.Code, time.Now())
		assert.Equal(t, shared.ErrInvalidState, err)
	})
}

func TestEmailVerification_CheckToken(t *testing.T) {
	v, err := NewEmailVerification("a@example.com", PurposeRegister)
	require.NoError(t, err)

	t.Run("token check before verify fails", func(t *testing.T) {
		assert.Equal(t, shared.ErrCodeMismatch, v.CheckToken("anything"))
	})

	token, err := v.Verify(v.Code, time.Now())
	require.NoError(t, err)

	t.Run("matching token passes", func(t *testing.T) {
		assert.NoError(t, v.CheckToken(token))
	})

	t.Run("wrong token fails", func(t *testing.T) {
		assert.Equal(t, shared.ErrCodeMismatch, v.CheckToken("bogus"))
	})
}

func TestGenerateCodeRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
