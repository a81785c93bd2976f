// Package api provides HTTP handlers for the validation API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artpar/stevedore/internal/core/account"
	"github.com/artpar/stevedore/internal/core/description"
	"github.com/artpar/stevedore/internal/core/validation"
	"github.com/artpar/stevedore/internal/metrics"
	"github.com/artpar/stevedore/internal/shell/api/openapi"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the API.
type Handler struct {
	validator *validation.ServerGroupValidator
	accounts  *account.Registry
	spec      *openapi.Generator
	logger    *slog.Logger
}

// NewHandler creates a new API handler. A nil accounts registry means
// credentials resolve against nothing and only presence is checked.
func NewHandler(v *validation.ServerGroupValidator, accounts *account.Registry, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	if accounts == nil {
		accounts, _ = account.NewRegistry(nil)
	}
	if v == nil {
		v = validation.NewServerGroupValidator(
			validation.DefaultCredentialsValidator{Accounts: accounts}, nil)
	}

	spec := openapi.NewGenerator(
		openapi.WithTitle("Stevedore API"),
		openapi.WithDescription("Validates ECS create-server-group deployment descriptions."),
		openapi.WithVersion("1.0.0"),
	)
	spec.RegisterOperation(openapi.OperationInfo{
		Name:     "createServerGroup",
		Summary:  "Validate a create-server-group description",
		Request:  description.CreateServerGroup{},
		Response: ValidateServerGroupResponse{},
	})
	spec.RegisterListing(openapi.ListingInfo{
		Name:     "accounts",
		Summary:  "List registered deployment accounts",
		Response: ListAccountsResponse{},
	})

	return &Handler{
		validator: v,
		accounts:  accounts,
		spec:      spec,
		logger:    l,
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	return h.routes(nil)
}

// routes builds the router. A non-nil gate middleware guards the /api/v1
// subtree; probes, metrics and the OpenAPI document stay open so load
// balancers and scrapers work without the gateway secret.
func (h *Handler) routes(gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)
	r.Use(h.requestIDHeader)

	// Health endpoints
	r.Get("/health", h.handleHealth)
	r.Get("/ready", h.handleReady)

	// Observability
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/openapi.json", h.spec.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		if gate != nil {
			r.Use(gate)
		}
		r.Route("/ops", func(r chi.Router) {
			r.Post("/createServerGroup", h.handleCreateServerGroupOp)
		})
		r.Get("/accounts", h.handleListAccounts)
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Health Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	// Everything is in memory; once the handler exists the engine and the
	// account registry are usable.
	h.writeJSON(w, http.StatusOK, ReadyResponse{
		Status: "ready",
		Checks: map[string]string{
			"validator": "ok",
			"accounts":  "ok",
		},
	})
}

// =============================================================================
// Operation Handlers
// =============================================================================

func (h *Handler) handleCreateServerGroupOp(w http.ResponseWriter, r *http.Request) {
	var desc description.CreateServerGroup
	if err := json.NewDecoder(r.Body).Decode(&desc); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "malformed_description")
		return
	}

	start := time.Now()
	findings := h.validator.Validate(&desc)
	metrics.ValidationDuration.Observe(time.Since(start).Seconds())

	resp := ValidateServerGroupResponse{
		ID:       uuid.New().String(),
		Valid:    len(findings) == 0,
		Findings: make([]FindingResponse, 0, len(findings)),
	}
	for _, f := range findings {
		metrics.FindingsTotal.WithLabelValues(f.Code).Inc()
		resp.Findings = append(resp.Findings, FindingResponse{
			Field:   f.Field,
			Code:    f.Code,
			Key:     f.Key(),
			Message: f.Message,
		})
	}

	if resp.Valid {
		metrics.ValidationsTotal.WithLabelValues("accepted").Inc()
		h.logger.Info("description accepted",
			"id", resp.ID,
			"request_id", middleware.GetReqID(r.Context()),
		)
		h.writeJSON(w, http.StatusOK, resp)
		return
	}

	metrics.ValidationsTotal.WithLabelValues("rejected").Inc()
	h.logger.Info("description rejected",
		"id", resp.ID,
		"request_id", middleware.GetReqID(r.Context()),
		"findings", len(resp.Findings),
	)
	for _, f := range resp.Findings {
		h.logger.Debug("finding", "id", resp.ID, "field", f.Field, "code", f.Code)
	}

	h.writeJSON(w, http.StatusUnprocessableEntity, resp)
}

// =============================================================================
// Account Handlers
// =============================================================================

func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.accounts.List()

	resp := ListAccountsResponse{
		Accounts: make([]AccountResponse, 0, len(accounts)),
		Total:    len(accounts),
	}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, AccountResponse{
			Name:        a.Name,
			Environment: a.Environment,
			Regions:     a.Regions,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Helpers
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
