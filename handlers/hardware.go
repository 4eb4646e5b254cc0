// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hackathon-registry/metrics"
	"github.com/danielhkuo/hackathon-registry/middleware"
	"github.com/danielhkuo/hackathon-registry/models"
	"github.com/danielhkuo/hackathon-registry/store"
)

type HardwareHandler struct {
	store   *store.Store
	metrics *metrics.Manager
}

func NewHardwareHandler(s *store.Store, m *metrics.Manager) *HardwareHandler {
	return &HardwareHandler{store: s, metrics: m}
}

// ListHardware handles GET /hardware
func (h *HardwareHandler) ListHardware(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListHardware(r.Context())
	if err != nil {
		writeStoreError(w, r, h.metrics, "list_hardware", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, items)
}

// Checkout handles POST /hardware/checkout
func (h *HardwareHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PersonID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "person_id is required")
		return
	}
	if req.HardwareID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "hardware_id is required")
		return
	}

	loan, err := h.store.CheckoutHardware(r.Context(), req.PersonID, req.HardwareID)
	if err != nil {
		h.metrics.HardwareOperation("checkout", outcome(err))
		writeStoreError(w, r, h.metrics, "checkout_hardware", err)
		return
	}

	h.metrics.HardwareOperation("checkout", "ok")
	slog.Info("hardware checked out", "loan_id", loan.ID, "hardware_id", loan.HardwareID, "person_id", loan.PersonID)

	middleware.JSONResponse(w, http.StatusCreated, loan)
}

// Return handles POST /hardware/return
func (h *HardwareHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req models.ReturnRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.LoanID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "loan_id is required")
		return
	}

	loan, err := h.store.ReturnHardware(r.Context(), req.LoanID)
	if err != nil {
		h.metrics.HardwareOperation("return", outcome(err))
		writeStoreError(w, r, h.metrics, "return_hardware", err)
		return
	}

	h.metrics.HardwareOperation("return", "ok")
	slog.Info("hardware returned", "loan_id", loan.ID, "hardware_id", loan.HardwareID)

	middleware.JSONResponse(w, http.StatusOK, loan)
}
