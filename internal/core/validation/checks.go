package validation

import "strings"

// =============================================================================
// Primitive Checks
// =============================================================================
//
// Each check is pure apart from writes to the Errors accumulator and
// takes an explicit field path so error attribution stays unambiguous.
// Absence and invalidity are separate concerns: range and membership
// checks ignore absent values so callers can pair them with a presence
// check only where the field is actually mandatory.

// RequireNonNull records not.nullable when v is nil. It reports whether
// the value is present so dependent checks can be chained.
func RequireNonNull[T any](v *T, field string, errs *Errors) bool {
	if v == nil {
		errs.Reject(field, CodeNotNullable)
		return false
	}
	return true
}

// RequireNonBlank records not.nullable when s is empty or whitespace.
func RequireNonBlank(s, field string, errs *Errors) bool {
	if strings.TrimSpace(s) == "" {
		errs.Reject(field, CodeNotNullable)
		return false
	}
	return true
}

// RequireInRange records invalid when v is present and outside [lo, hi].
func RequireInRange(v *int, lo, hi int, field string, errs *Errors) {
	if v != nil && (*v < lo || *v > hi) {
		errs.Reject(field, CodeInvalid)
	}
}

// RequireNonNegative records invalid when v is present and negative.
func RequireNonNegative(v *int, field string, errs *Errors) {
	if v != nil && *v < 0 {
		errs.Reject(field, CodeInvalid)
	}
}

// RequireMember records invalid when value is not in the allowed set.
func RequireMember(value string, allowed map[string]bool, field string, errs *Errors) {
	if !allowed[value] {
		errs.Reject(field, CodeInvalid)
	}
}

// RequireDisjointKeys records a single invalid finding when any key of m
// appears in the reserved set. One finding covers all collisions.
func RequireDisjointKeys(m map[string]string, reserved map[string]bool, field string, errs *Errors) {
	for k := range m {
		if reserved[k] {
			errs.Reject(field, CodeInvalid)
			return
		}
	}
}

// RequireTogether records not.nullable on the unset side when exactly
// one of two paired fields is set. Both set or both unset pass.
func RequireTogether(hasA, hasB bool, fieldA, fieldB string, errs *Errors) {
	if hasA && !hasB {
		errs.Reject(fieldB, CodeNotNullable)
	} else if !hasA && hasB {
		errs.Reject(fieldA, CodeNotNullable)
	}
}
