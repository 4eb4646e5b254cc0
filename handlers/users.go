// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/hackathon-registry/metrics"
	"github.com/danielhkuo/hackathon-registry/middleware"
	"github.com/danielhkuo/hackathon-registry/models"
	"github.com/danielhkuo/hackathon-registry/store"
)

type UserHandler struct {
	store   *store.Store
	metrics *metrics.Manager
}

func NewUserHandler(s *store.Store, m *metrics.Manager) *UserHandler {
	return &UserHandler{store: s, metrics: m}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	persons, err := h.store.ListPersons(r.Context())
	if err != nil {
		writeStoreError(w, r, h.metrics, "list_users", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, persons)
}

// GetUser handles GET /user/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	personID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	person, err := h.store.GetPerson(r.Context(), personID)
	if err != nil {
		writeStoreError(w, r, h.metrics, "get_user", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, person)
}

// GetUserInfo handles GET /user/info/{id}
// Returns the person with skills, hardware loans and scanned events
func (h *UserHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	personID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	info, err := h.store.GetPersonInfo(r.Context(), personID)
	if err != nil {
		writeStoreError(w, r, h.metrics, "get_user_info", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}

// UpdateUser handles PUT /user/{id}
// Applies the supplied person fields and skill ratings in one transaction
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	personID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePersonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name cannot be empty")
		return
	}
	for _, s := range req.Skills {
		if strings.TrimSpace(s.Skill) == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "skill name is required")
			return
		}
		if s.Rating == nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "rating for "+s.Skill+" is required")
			return
		}
		if *s.Rating < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "rating for "+s.Skill+" must not be negative")
			return
		}
	}

	fields := req.Fields()
	person, err := h.store.UpdatePerson(r.Context(), personID, fields, req.Ratings())
	if err != nil {
		writeStoreError(w, r, h.metrics, "update_user", err)
		return
	}

	h.metrics.PersonUpdated(len(req.Skills))
	slog.Info("person updated", "person_id", personID, "fields", len(fields), "skills", len(req.Skills))

	middleware.JSONResponse(w, http.StatusOK, person)
}

// GetCheckedIn handles GET /checked-in/{id}
func (h *UserHandler) GetCheckedIn(w http.ResponseWriter, r *http.Request) {
	personID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	status, err := h.store.GetCheckIn(r.Context(), personID)
	if err != nil {
		writeStoreError(w, r, h.metrics, "get_check_in", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// CheckIn handles PUT /check-in/{id}
// An empty body checks the person in; {"checked_in": false} undoes it
func (h *UserHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	personID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	checkedIn := true
	var req models.CheckInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && err != io.EOF {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CheckedIn != nil {
		checkedIn = *req.CheckedIn
	}

	status, err := h.store.SetCheckIn(r.Context(), personID, checkedIn)
	if err != nil {
		writeStoreError(w, r, h.metrics, "check_in", err)
		return
	}

	slog.Info("check-in updated", "person_id", personID, "checked_in", checkedIn)

	middleware.JSONResponse(w, http.StatusOK, status)
}
