// Package repository holds the gorm data access for matches, feedback,
// the daily quota ledger, daily views and the user read model.
//
// Repositories never decide business outcomes. Unique-index violations come
// back as apperr.ErrConflict so callers can re-read and reconcile.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperr "github.com/oggyb/interview-match/internal/errors"
)

// IsDuplicate reports a unique-constraint violation. TranslateError covers
// the three drivers; the message check catches untranslated driver errors.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, apperr.ErrConflict) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}

// translate normalizes storage errors into the shared taxonomy.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	case IsDuplicate(err):
		return fmt.Errorf("%s: %w", op, apperr.ErrConflict)
	case apperr.IsStorageUnavailable(err):
		return fmt.Errorf("%s: %w: %v", op, apperr.ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
