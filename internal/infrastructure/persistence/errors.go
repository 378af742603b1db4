package persistence

import (
	"errors"
	"strings"

	"github.com/koreat/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// isDuplicateKey reports whether err is a unique constraint violation.
// GORM translates driver errors when TranslateError is on; the string
// checks cover drivers that bypass the translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// translateCreateError maps unique violations to shared.ErrAlreadyExists
func translateCreateError(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return shared.ErrAlreadyExists
	}
	return err
}
