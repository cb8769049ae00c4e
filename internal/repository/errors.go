// Package repository implements the data access layer over MySQL.  The
// sentinel errors defined here let handlers distinguish failure modes
// without inspecting driver error strings themselves.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when an insert hits the users.email unique key.
var ErrEmailExists = errors.New("email already exists")

// ErrGarageNotFound is returned when a referenced garage id does not exist.
var ErrGarageNotFound = errors.New("garage not found")

// isDuplicateKey reports whether err is a MySQL 1062 duplicate-entry error.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// isFKViolation reports whether err is a MySQL 1452 foreign-key error
// (referenced row missing on insert/update).
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1452")
}
