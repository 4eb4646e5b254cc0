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

type EventHandler struct {
	store   *store.Store
	metrics *metrics.Manager
}

func NewEventHandler(s *store.Store, m *metrics.Manager) *EventHandler {
	return &EventHandler{store: s, metrics: m}
}

// Scan handles POST /scan
// Records attendance; a repeat scan of the same person and event is a 409
func (h *EventHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PersonID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "person_id is required")
		return
	}
	if req.EventID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_id is required")
		return
	}

	scan, err := h.store.RecordScan(r.Context(), req.PersonID, req.EventID)
	if err != nil {
		h.metrics.Scan(outcome(err))
		writeStoreError(w, r, h.metrics, "record_scan", err)
		return
	}

	h.metrics.Scan("ok")
	slog.Info("scan recorded", "scan_id", scan.ID, "person_id", scan.PersonID, "event_id", scan.EventID)

	middleware.JSONResponse(w, http.StatusCreated, scan)
}

// ListUserEvents handles GET /user/events/{id}
func (h *EventHandler) ListUserEvents(w http.ResponseWriter, r *http.Request) {
	personID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	scans, err := h.store.ListPersonEvents(r.Context(), personID)
	if err != nil {
		writeStoreError(w, r, h.metrics, "list_user_events", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scans)
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		writeStoreError(w, r, h.metrics, "list_events", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}
