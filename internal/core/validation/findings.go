package validation

// =============================================================================
// Error Codes
// =============================================================================

// Codes carried by findings. Two value codes (a required value is
// missing, a supplied value violates a constraint) and two collection
// shape codes.
const (
	CodeNotNullable     = "not.nullable"
	CodeInvalid         = "invalid"
	CodeMustHaveOnlyOne = "must.have.only.one"
	CodeItemInvalid     = "item.invalid"
)

// errorKey prefixes the message keys under which user-facing text for
// findings is resolved.
const errorKey = "createServerGroupDescription"

// =============================================================================
// Findings
// =============================================================================

// Finding records one violated rule: which field, which code, and an
// optional message for findings that need more context than the code.
type Finding struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// Key returns the message key for this finding, e.g.
// "createServerGroupDescription.capacity.not.nullable".
func (f Finding) Key() string {
	return errorKey + "." + f.Field + "." + f.Code
}

// =============================================================================
// Errors Accumulator
// =============================================================================

// Errors accumulates findings in encounter order. Recording never fails
// and never deduplicates: a field legitimately collects one finding per
// violated rule. Rules communicate failure exclusively through this
// accumulator, so a validation pass always runs to completion.
type Errors struct {
	findings []Finding
}

// NewErrors returns an empty accumulator.
func NewErrors() *Errors {
	return &Errors{}
}

// Reject appends a finding for field with the given code.
func (e *Errors) Reject(field, code string) {
	e.findings = append(e.findings, Finding{Field: field, Code: code})
}

// RejectWithMessage appends a finding that carries explanatory text.
func (e *Errors) RejectWithMessage(field, code, message string) {
	e.findings = append(e.findings, Finding{Field: field, Code: code, Message: message})
}

// Findings returns the accumulated findings in the order recorded.
func (e *Errors) Findings() []Finding {
	return e.findings
}

// Empty reports whether no rule was violated.
func (e *Errors) Empty() bool {
	return len(e.findings) == 0
}
