// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/danielhkuo/hackathon-registry/metrics"
	"github.com/danielhkuo/hackathon-registry/middleware"
	"github.com/danielhkuo/hackathon-registry/store"
)

// pathID parses a positive numeric path parameter. It writes a 400 and
// returns false if the value is missing or malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid "+name+": "+raw)
		return 0, false
	}
	return id, true
}

// writeStoreError maps store errors onto HTTP statuses. Anything the store
// did not classify is logged and reported as a 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, m *metrics.Manager, op string, err error) {
	switch {
	case errors.Is(err, store.ErrPersonNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Person not found")
	case errors.Is(err, store.ErrHardwareNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Hardware not found")
	case errors.Is(err, store.ErrLoanNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Loan not found")
	case errors.Is(err, store.ErrEventNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, store.ErrHardwareUnavailable):
		middleware.ErrorResponse(w, http.StatusBadRequest, "No hardware available")
	case errors.Is(err, store.ErrLoanAlreadyReturned):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Loan already returned")
	case errors.Is(err, store.ErrInvalidField):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrScanAlreadyRecorded):
		middleware.ErrorResponse(w, http.StatusConflict, "Scan already recorded")
	default:
		slog.Error("store operation failed",
			"operation", op,
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		m.StoreError(op)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// outcome labels a failed operation for metrics.
func outcome(err error) string {
	switch {
	case errors.Is(err, store.ErrPersonNotFound),
		errors.Is(err, store.ErrHardwareNotFound),
		errors.Is(err, store.ErrLoanNotFound),
		errors.Is(err, store.ErrEventNotFound):
		return "not_found"
	case errors.Is(err, store.ErrHardwareUnavailable):
		return "unavailable"
	case errors.Is(err, store.ErrLoanAlreadyReturned):
		return "already_returned"
	case errors.Is(err, store.ErrScanAlreadyRecorded):
		return "duplicate"
	default:
		return "error"
	}
}
