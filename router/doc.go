// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the hackathon registry API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, metricsManager)

Passing a nil metrics manager leaves requests uninstrumented and does not
mount /metrics.

# Endpoints

Operational:

	GET /health  - Database ping
	GET /metrics - Prometheus exposition
	GET /        - Banner

Participants:

	GET /users             - Everyone with their skills
	GET /user/{id}         - One person with skills
	PUT /user/{id}         - Partial update plus skill ratings
	GET /user/info/{id}    - Person, skills, loans and scans
	GET /checked-in/{id}   - Check-in flag
	PUT /check-in/{id}     - Set check-in flag

Skills, hardware and attendance:

	GET  /skills?min_frequency=&max_frequency=
	GET  /hardware
	POST /hardware/checkout
	POST /hardware/return
	POST /scan
	GET  /events
	GET  /user/events/{id}

Every API route is wrapped with request logging and, when enabled, metrics
recorded under its pattern.
*/
package router
