// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /users", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request id comes from X-Request-ID when the
client sends one, otherwise a UUID is generated. It is echoed in the
response header and available to handlers:

	slog.Error("failed to update person", "request_id", middleware.RequestID(r.Context()))

# Metrics

WithMetrics counts requests and observes latency under the route pattern:

	middleware.WithMetrics(manager, "PUT /user/{id}", handler)

# CORS Middleware

Enable cross-origin requests for the check-in frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.ScanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
