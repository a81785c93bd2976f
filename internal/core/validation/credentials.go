package validation

import "fmt"

// =============================================================================
// Credentials Validation
// =============================================================================

// AccountResolver reports whether a named account is registered. The
// shell's account registry implements it; the engine itself never does
// I/O to resolve a name.
type AccountResolver interface {
	HasAccount(name string) bool
}

// CredentialsValidator checks the account reference on a description.
// Like CapacityValidator it writes findings to the shared accumulator.
type CredentialsValidator interface {
	ValidateCredentials(name, field string, errs *Errors)
}

// DefaultCredentialsValidator resolves the account name against an
// AccountResolver. With a nil resolver only presence is checked.
type DefaultCredentialsValidator struct {
	Accounts AccountResolver
}

// ValidateCredentials implements CredentialsValidator.
func (v DefaultCredentialsValidator) ValidateCredentials(name, field string, errs *Errors) {
	if !RequireNonBlank(name, field, errs) {
		return
	}
	if v.Accounts != nil && !v.Accounts.HasAccount(name) {
		errs.RejectWithMessage(field, CodeInvalid,
			fmt.Sprintf("account %q is not a registered ECS account", name))
	}
}
