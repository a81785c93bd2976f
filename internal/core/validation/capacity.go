package validation

import (
	"fmt"

	"github.com/artpar/stevedore/internal/core/description"
)

// =============================================================================
// Capacity Validation
// =============================================================================

// CapacityValidator checks the scaling bounds of a description. It is a
// collaborator of the server group validator: implementations write to
// the same accumulator and must never panic or return early on the
// first violation.
type CapacityValidator interface {
	ValidateCapacity(c *description.Capacity, errs *Errors)
}

// DefaultCapacityValidator enforces presence of min, desired and max
// and the ordering min <= desired <= max.
type DefaultCapacityValidator struct{}

// ValidateCapacity implements CapacityValidator.
func (DefaultCapacityValidator) ValidateCapacity(c *description.Capacity, errs *Errors) {
	if c == nil {
		errs.Reject("capacity", CodeNotNullable)
		return
	}

	ok := RequireNonNull(c.Min, "capacity.min", errs)
	ok = RequireNonNull(c.Desired, "capacity.desired", errs) && ok
	ok = RequireNonNull(c.Max, "capacity.max", errs) && ok
	if !ok {
		return
	}

	min, desired, max := *c.Min, *c.Desired, *c.Max
	if min > max {
		errs.RejectWithMessage("capacity", CodeInvalid,
			fmt.Sprintf("capacity min (%d) cannot exceed max (%d)", min, max))
	}
	if desired < min || desired > max {
		errs.RejectWithMessage("capacity.desired", CodeInvalid,
			fmt.Sprintf("capacity desired (%d) must be between min (%d) and max (%d)", desired, min, max))
	}
}
