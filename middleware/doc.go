// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /api/ingest/{$}", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request_id is a UUID minted per request so
the two lines correlate under concurrent ingest.

# CORS Middleware

Enable cross-origin requests for the dashboard:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type and
Authorization. Only the configured origin is granted.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "message")

ErrorResponse maps the HTTP status to a stable machine code in the
"error" field (validation_error, not_found, storage_error,
method_not_allowed) so clients never parse prose.

Parse JSON request bodies:

	var req models.IngestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs to identify acquisition devices behind a proxy.
*/
package middleware
