package validation

import (
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// =============================================================================
// Placement Strategies
// =============================================================================

// Field values accepted per placement strategy type. Fixed by the ECS
// scheduler, never configuration.
var (
	spreadFields = map[string]bool{
		"instanceId":                      true,
		"attribute:ecs.availability-zone": true,
		"attribute:ecs.instance-type":     true,
		"attribute:ecs.os-type":           true,
		"attribute:ecs.ami-id":            true,
	}

	binpackFields = map[string]bool{
		"cpu":    true,
		"memory": true,
	}
)

// ParsePlacementStrategyType matches raw against the ECS wire values
// ("random", "spread", "binpack"). The match is exact and case
// sensitive; anything else reports false.
func ParsePlacementStrategyType(raw string) (ecstypes.PlacementStrategyType, bool) {
	for _, t := range ecstypes.PlacementStrategyType("").Values() {
		if string(t) == raw {
			return t, true
		}
	}
	return "", false
}
