package store

import (
	"errors"
	"strings"
)

// Sentinel errors for uniqueness conflicts so handlers can pick the right
// redirect tag without parsing driver error strings themselves.
var (
	ErrDuplicateEmail    = errors.New("user with this email already exists")
	ErrDuplicateUsername = errors.New("user with this username already exists")
)

// classifyUserConflict maps a SQLite UNIQUE violation on the users table to
// the matching sentinel. Returns the original error when it is anything else.
func classifyUserConflict(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return err
	}
	switch {
	case strings.Contains(msg, "users.email"):
		return ErrDuplicateEmail
	case strings.Contains(msg, "users.username"):
		return ErrDuplicateUsername
	}
	return err
}
