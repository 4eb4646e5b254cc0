// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/hackathon-registry/handlers"
	"github.com/danielhkuo/hackathon-registry/metrics"
	"github.com/danielhkuo/hackathon-registry/middleware"
	"github.com/danielhkuo/hackathon-registry/store"
)

// NewRouter builds the route table. m may be nil, in which case requests are
// not instrumented and /metrics is not mounted.
func NewRouter(s *store.Store, m *metrics.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(s, m)
	skillHandler := handlers.NewSkillHandler(s, m)
	hardwareHandler := handlers.NewHardwareHandler(s, m)
	eventHandler := handlers.NewEventHandler(s, m)

	handle := func(pattern string, h http.HandlerFunc) {
		// "GET /user/{id}" is recorded under route "/user/{id}"
		route := pattern[strings.IndexByte(pattern, ' ')+1:]
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(m, route, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Participants
	handle("GET /users", userHandler.ListUsers)
	handle("GET /user/{id}", userHandler.GetUser)
	handle("PUT /user/{id}", userHandler.UpdateUser)
	handle("GET /user/info/{id}", userHandler.GetUserInfo)
	handle("GET /checked-in/{id}", userHandler.GetCheckedIn)
	handle("PUT /check-in/{id}", userHandler.CheckIn)

	// Skills
	handle("GET /skills", skillHandler.ListSkills)

	// Hardware loans
	handle("GET /hardware", hardwareHandler.ListHardware)
	handle("POST /hardware/checkout", hardwareHandler.Checkout)
	handle("POST /hardware/return", hardwareHandler.Return)

	// Attendance
	handle("POST /scan", eventHandler.Scan)
	handle("GET /events", eventHandler.ListEvents)
	handle("GET /user/events/{id}", eventHandler.ListUserEvents)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			middleware.ErrorResponse(w, http.StatusNotFound, "Route not found")
			return
		}
		w.Write([]byte("hackathon-registry API v1"))
	})

	return mux
}
