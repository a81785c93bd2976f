package description

import "strings"

// =============================================================================
// Deploy Mode
// =============================================================================

// DeployMode names the two mutually exclusive ways a task definition is
// produced for the server group.
type DeployMode string

const (
	// ModeImage synthesizes the task definition from DockerImageAddress,
	// ComputeUnits and ReservedMemory.
	ModeImage DeployMode = "image"
	// ModeArtifact resolves the task definition from an external artifact.
	ModeArtifact DeployMode = "artifact"
)

// Mode returns the deploy mode selected by the description.
func (d *CreateServerGroup) Mode() DeployMode {
	if d.UseTaskDefinitionArtifact {
		return ModeArtifact
	}
	return ModeImage
}

// =============================================================================
// Target Group Choice
// =============================================================================

// TargetGroupChoice classifies how the description attaches to load
// balancer target groups.
type TargetGroupChoice string

const (
	// TargetGroupNone means no load balancer integration was requested.
	TargetGroupNone TargetGroupChoice = "none"
	// TargetGroupSingle means the top-level TargetGroup field is used.
	TargetGroupSingle TargetGroupChoice = "single"
	// TargetGroupMapped means per-container TargetGroupMappings are used.
	TargetGroupMapped TargetGroupChoice = "mapped"
	// TargetGroupConflicting means both mechanisms were supplied at once.
	TargetGroupConflicting TargetGroupChoice = "conflicting"
)

// TargetGroupChoice reports which target group mechanism the description
// uses. Mappings win over the single field; a non-empty TargetGroup next
// to mappings is a conflict even when it is only whitespace, matching how
// submitted descriptions have historically been interpreted.
func (d *CreateServerGroup) TargetGroupChoice() TargetGroupChoice {
	mapped := len(d.TargetGroupMappings) > 0
	switch {
	case mapped && d.TargetGroup != "":
		return TargetGroupConflicting
	case mapped:
		return TargetGroupMapped
	case d.HasTargetGroup():
		return TargetGroupSingle
	default:
		return TargetGroupNone
	}
}

// HasTargetGroup reports whether the single target group field carries a
// usable value. Whitespace-only values count as absent.
func (d *CreateServerGroup) HasTargetGroup() bool {
	return strings.TrimSpace(d.TargetGroup) != ""
}

// HasLoadBalancedContainer reports whether a load balanced container name
// was supplied. Whitespace-only values count as absent.
func (d *CreateServerGroup) HasLoadBalancedContainer() bool {
	return strings.TrimSpace(d.LoadBalancedContainer) != ""
}

// HasTargetGroup reports whether the mapping names a target group.
func (m TargetGroupMapping) HasTargetGroup() bool {
	return strings.TrimSpace(m.TargetGroup) != ""
}

// HasContainerName reports whether the mapping names a container.
func (m TargetGroupMapping) HasContainerName() bool {
	return strings.TrimSpace(m.ContainerName) != ""
}
