package api

// =============================================================================
// Request Types
// =============================================================================

// The createServerGroup operation decodes its request body directly into
// description.CreateServerGroup; there is no separate request DTO to keep
// in sync with the description fields.

// =============================================================================
// Response Types
// =============================================================================

// ValidateServerGroupResponse is the response for the createServerGroup
// operation. Valid descriptions answer 200, rejected ones 422 with the
// full findings list.
type ValidateServerGroupResponse struct {
	ID       string            `json:"id"`
	Valid    bool              `json:"valid"`
	Findings []FindingResponse `json:"findings"`
}

// FindingResponse is one validation finding plus the message key under
// which callers resolve user-facing text.
type FindingResponse struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Key     string `json:"key"`
	Message string `json:"message,omitempty"`
}

// AccountResponse describes one registered deployment account.
type AccountResponse struct {
	Name        string   `json:"name"`
	Environment string   `json:"environment,omitempty"`
	Regions     []string `json:"regions"`
}

// ListAccountsResponse is the response for listing accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// HealthResponse is the response for health checks.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the response for readiness checks.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ErrorResponse is the response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
