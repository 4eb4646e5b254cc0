// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the hackathon registry API.

# Handler Types

Each handler is a struct holding the store and an optional metrics manager:

  - UserHandler: Listing, profile updates, check-in
  - SkillHandler: Skill frequency search
  - HardwareHandler: Inventory, checkout and return
  - EventHandler: Attendance scans and event listings

	userHandler := handlers.NewUserHandler(store, metricsManager)

# Error Mapping

Store errors are translated in one place (writeStoreError):

	ErrPersonNotFound, ErrHardwareNotFound,
	ErrLoanNotFound, ErrEventNotFound      → 404
	ErrHardwareUnavailable,
	ErrLoanAlreadyReturned, ErrInvalidField → 400
	ErrScanAlreadyRecorded                  → 409
	anything else                           → 500, logged with the request id

Malformed ids, bodies and ratings are rejected with 400 before the store is
called.
*/
package handlers
