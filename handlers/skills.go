// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/hackathon-registry/metrics"
	"github.com/danielhkuo/hackathon-registry/middleware"
	"github.com/danielhkuo/hackathon-registry/store"
)

type SkillHandler struct {
	store   *store.Store
	metrics *metrics.Manager
}

func NewSkillHandler(s *store.Store, m *metrics.Manager) *SkillHandler {
	return &SkillHandler{store: s, metrics: m}
}

// ListSkills handles GET /skills?min_frequency=&max_frequency=
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	minFrequency, err := optionalCount(r, "min_frequency")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "min_frequency must be a non-negative integer")
		return
	}
	maxFrequency, err := optionalCount(r, "max_frequency")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "max_frequency must be a non-negative integer")
		return
	}
	if minFrequency != nil && maxFrequency != nil && *minFrequency > *maxFrequency {
		middleware.ErrorResponse(w, http.StatusBadRequest, "min_frequency cannot exceed max_frequency")
		return
	}

	freqs, err := h.store.SkillFrequencies(r.Context(), minFrequency, maxFrequency)
	if err != nil {
		writeStoreError(w, r, h.metrics, "list_skills", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, freqs)
}

func optionalCount(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, strconv.ErrRange
	}
	return &n, nil
}
