// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Not-found conditions
var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrHardwareNotFound = errors.New("hardware not found")
	ErrLoanNotFound     = errors.New("loan not found")
	ErrEventNotFound    = errors.New("event not found")
)

// Business-rule violations
var (
	ErrHardwareUnavailable = errors.New("no hardware available")
	ErrLoanAlreadyReturned = errors.New("loan already returned")
	ErrScanAlreadyRecorded = errors.New("scan already recorded")
	ErrInvalidField        = errors.New("field cannot be updated")
)

const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique or primary key
// constraint failure from either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(liteErr.Error(), "UNIQUE")
	}

	return false
}
