package api

import (
	"log/slog"
	"net/http"

	"github.com/artpar/stevedore/internal/core/account"
	"github.com/artpar/stevedore/internal/core/validation"
	"github.com/artpar/stevedore/internal/shell/api/middleware"
)

// =============================================================================
// API Setup
// =============================================================================

// APIConfig holds configuration for the API setup.
type APIConfig struct {
	// Validator runs the description rules. Nil builds the default engine
	// with credentials resolved against Accounts.
	Validator *validation.ServerGroupValidator

	// Accounts backs the credentials check and the accounts listing.
	Accounts *account.Registry

	// Logger for request logging.
	Logger *slog.Logger

	// GateSecret, when set, requires the X-Gate-Secret header on every
	// /api/v1 request. Probes and metrics stay open.
	GateSecret string
}

// SetupAPI creates the complete API router.
// Returns an http.Handler that can be used as the server's main handler.
func SetupAPI(cfg APIConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	handler := NewHandler(cfg.Validator, cfg.Accounts, cfg.Logger)

	if cfg.GateSecret == "" {
		return handler.Routes()
	}

	gate := middleware.NewGate(middleware.GateConfig{
		SharedSecret: cfg.GateSecret,
		Logger:       cfg.Logger,
	})
	return handler.routes(gate.Handler)
}
