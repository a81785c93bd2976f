// Package middleware provides HTTP middleware for the Stevedore API.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HeaderGateSecret is the header the API gateway injects in front of the
// service. When a shared secret is configured, requests without it are
// rejected before reaching any handler.
const HeaderGateSecret = "X-Gate-Secret"

// =============================================================================
// Gate Configuration
// =============================================================================

// GateConfig holds configuration for the gate middleware.
type GateConfig struct {
	// SharedSecret validates the X-Gate-Secret header.
	// If empty, secret validation is skipped.
	SharedSecret string

	// Logger for gate middleware logging.
	Logger *slog.Logger
}

// =============================================================================
// Gate Middleware
// =============================================================================

// Gate rejects requests that do not carry the gateway's shared secret.
// Probe and metrics endpoints are expected to be mounted outside the
// gated subtree; the gate only guards the operation surface.
type Gate struct {
	config GateConfig
}

// NewGate creates a new gate middleware with the given config.
func NewGate(cfg GateConfig) *Gate {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Gate{config: cfg}
}

// Handler returns the middleware handler function.
func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.config.SharedSecret != "" {
			if r.Header.Get(HeaderGateSecret) != g.config.SharedSecret {
				g.config.Logger.Warn("invalid gate secret",
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
				)
				writeJSONError(w, http.StatusForbidden, "invalid gateway secret", "forbidden")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// JSON Error Response
// =============================================================================

// errorBody mirrors the API's error envelope so gated responses look the
// same as handler errors.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSONError writes a JSON formatted error response.
func writeJSONError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{
		Error: message,
		Code:  code,
	})
}
