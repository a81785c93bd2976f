package validation

import (
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"

	"github.com/artpar/stevedore/internal/core/description"
)

// =============================================================================
// Server Group Validator
// =============================================================================

// Environment variable names the deployment pipeline injects into every
// task. User supplied variables must not collide with them.
var reservedEnvironmentVariables = map[string]bool{
	"SERVER_GROUP": true,
	"CLOUD_STACK":  true,
	"CLOUD_DETAIL": true,
}

const maxContainerPort = 65535

const targetGroupConflictMessage = "TargetGroup cannot be specified when " +
	"TargetGroupMapping.TargetGroup is specified. Please use TargetGroupMapping"

// ServerGroupValidator checks a create-server-group description against
// every rule and reports all violations at once. Credentials and
// capacity checks are delegated to collaborators so callers can swap in
// their own account resolution or scaling policy.
type ServerGroupValidator struct {
	credentials CredentialsValidator
	capacity    CapacityValidator
}

// NewServerGroupValidator builds a validator with the given
// collaborators. Nil collaborators fall back to the defaults.
func NewServerGroupValidator(credentials CredentialsValidator, capacity CapacityValidator) *ServerGroupValidator {
	if credentials == nil {
		credentials = DefaultCredentialsValidator{}
	}
	if capacity == nil {
		capacity = DefaultCapacityValidator{}
	}
	return &ServerGroupValidator{credentials: credentials, capacity: capacity}
}

// Validate runs every rule group in order and returns the findings in
// the order they were recorded. Groups never short-circuit each other:
// a malformed value in one group still lets every later group run, so
// the caller sees all problems in a single pass. An empty result means
// the description is acceptable.
func (v *ServerGroupValidator) Validate(d *description.CreateServerGroup) []Finding {
	errs := NewErrors()

	v.credentials.ValidateCredentials(d.Credentials, "credentials", errs)
	v.capacity.ValidateCapacity(d.Capacity, errs)

	validateAvailabilityZones(d, errs)
	validatePlacementStrategies(d, errs)

	RequireNonNull(d.Application, "application", errs)
	RequireNonNull(d.EcsClusterName, "ecsClusterName", errs)

	validateServiceDiscovery(d, errs)
	validateMode(d, errs)
	validateContainerPort(d, errs)
	validateTargetGroupMappings(d, errs)

	RequireDisjointKeys(d.EnvironmentVariables, reservedEnvironmentVariables, "environmentVariables", errs)

	return errs.Findings()
}

// =============================================================================
// Rule Groups
// =============================================================================

func validateAvailabilityZones(d *description.CreateServerGroup, errs *Errors) {
	if d.AvailabilityZones == nil {
		errs.Reject("availabilityZones", CodeNotNullable)
		return
	}
	if len(d.AvailabilityZones) != 1 {
		errs.Reject("availabilityZones", CodeMustHaveOnlyOne)
	}
}

func validatePlacementStrategies(d *description.CreateServerGroup, errs *Errors) {
	if d.PlacementStrategySequence == nil {
		errs.Reject("placementStrategySequence", CodeNotNullable)
		return
	}
	for _, s := range d.PlacementStrategySequence {
		t, ok := ParsePlacementStrategyType(s.Type)
		if !ok {
			// Unknown type is one finding; the entry's field is not
			// checkable without a type, so move to the next entry.
			errs.Reject("placementStrategySequence.type", CodeInvalid)
			continue
		}
		switch t {
		case ecstypes.PlacementStrategyTypeRandom:
			// No field constraint.
		case ecstypes.PlacementStrategyTypeSpread:
			RequireMember(s.Field, spreadFields, "placementStrategySequence.spread", errs)
		case ecstypes.PlacementStrategyTypeBinpack:
			RequireMember(s.Field, binpackFields, "placementStrategySequence.binpack", errs)
		}
	}
}

func validateServiceDiscovery(d *description.CreateServerGroup, errs *Errors) {
	for _, a := range d.ServiceDiscoveryAssociations {
		if a.Registry == nil {
			errs.Reject("serviceDiscoveryAssociations", CodeItemInvalid)
		}
	}
}

func validateMode(d *description.CreateServerGroup, errs *Errors) {
	switch d.Mode() {
	case description.ModeImage:
		RequireNonNull(d.DockerImageAddress, "dockerImageAddress", errs)
		RequireNonNull(d.ComputeUnits, "computeUnits", errs)
		RequireNonNegative(d.ComputeUnits, "computeUnits", errs)
		RequireNonNull(d.ReservedMemory, "reservedMemory", errs)
		RequireNonNegative(d.ReservedMemory, "reservedMemory", errs)
	case description.ModeArtifact:
		// The artifact supplies image and sizing; what must line up here
		// is the load balancer wiring.
		RequireTogether(d.HasTargetGroup(), d.HasLoadBalancedContainer(),
			"targetGroup", "loadBalancedContainer", errs)
	}
}

func validateContainerPort(d *description.CreateServerGroup, errs *Errors) {
	if d.ContainerPort != nil {
		RequireInRange(d.ContainerPort, 0, maxContainerPort, "containerPort", errs)
	} else if d.HasTargetGroup() {
		// A target group cannot route without a port.
		errs.Reject("containerPort", CodeNotNullable)
	}
}

func validateTargetGroupMappings(d *description.CreateServerGroup, errs *Errors) {
	if len(d.TargetGroupMappings) == 0 {
		return
	}

	if d.TargetGroupChoice() == description.TargetGroupConflicting {
		errs.RejectWithMessage("targetGroup", CodeInvalid, targetGroupConflictMessage)
	}

	for _, m := range d.TargetGroupMappings {
		if d.UseTaskDefinitionArtifact {
			RequireTogether(m.HasTargetGroup(), m.HasContainerName(),
				"targetGroupMappings.targetGroup", "targetGroupMappings.containerName", errs)
		}

		if m.ContainerPort != nil {
			RequireInRange(m.ContainerPort, 0, maxContainerPort, "targetGroupMappings.containerPort", errs)
		} else if m.HasTargetGroup() {
			errs.Reject("targetGroupMappings.containerPort", CodeNotNullable)
		}
	}
}
