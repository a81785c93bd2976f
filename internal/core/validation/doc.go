// Package validation checks create-server-group descriptions before the
// orchestration layer acts on them.
//
// This package is the functional core of the service. All functions are
// pure apart from writes to the Errors accumulator (no I/O, no shared
// state) and comply with ADR-002 "Values as Boundaries". A validation
// pass never throws and never stops early: every rule runs, every
// violation becomes a Finding, and the caller owns the accept/reject
// decision based on whether the result is empty.
//
// # Components
//
//   - Errors: Ordered findings accumulator (Reject, RejectWithMessage)
//   - Primitive checks: RequireNonNull, RequireInRange, RequireMember, ...
//   - CredentialsValidator, CapacityValidator: Swappable collaborators
//   - ServerGroupValidator: The rule tree entry point
//
// # Usage
//
// The API handlers and the lint tool build one validator and reuse it
// for every description; a pass allocates nothing shared:
//
//	validator := validation.NewServerGroupValidator(creds, nil)
//	findings := validator.Validate(desc)
//	if len(findings) == 0 {
//	    // accept
//	}
package validation
