package description

// =============================================================================
// Create Server Group Description
// =============================================================================

// CreateServerGroup describes one requested ECS server group.
//
// Pointer fields distinguish "absent" from zero values: a nil pointer means
// the caller never supplied the field. String fields treat "" as absent
// unless noted otherwise. The struct is immutable for the duration of a
// validation pass.
type CreateServerGroup struct {
	Credentials string  `json:"credentials,omitempty" yaml:"credentials,omitempty"`
	Application *string `json:"application,omitempty" yaml:"application,omitempty"`
	Stack       string  `json:"stack,omitempty" yaml:"stack,omitempty"`
	Detail      string  `json:"freeFormDetails,omitempty" yaml:"freeFormDetails,omitempty"`
	Region      string  `json:"region,omitempty" yaml:"region,omitempty"`

	EcsClusterName    *string   `json:"ecsClusterName,omitempty" yaml:"ecsClusterName,omitempty"`
	AvailabilityZones []string  `json:"availabilityZones,omitempty" yaml:"availabilityZones,omitempty"`
	Capacity          *Capacity `json:"capacity,omitempty" yaml:"capacity,omitempty"`

	PlacementStrategySequence []PlacementStrategy `json:"placementStrategySequence" yaml:"placementStrategySequence,omitempty"`

	ServiceDiscoveryAssociations []ServiceDiscoveryAssociation `json:"serviceDiscoveryAssociations,omitempty" yaml:"serviceDiscoveryAssociations,omitempty"`

	// UseTaskDefinitionArtifact selects artifact mode: the task definition
	// comes from an external artifact instead of being synthesized from
	// DockerImageAddress, ComputeUnits and ReservedMemory.
	UseTaskDefinitionArtifact bool    `json:"useTaskDefinitionArtifact,omitempty" yaml:"useTaskDefinitionArtifact,omitempty"`
	DockerImageAddress        *string `json:"dockerImageAddress,omitempty" yaml:"dockerImageAddress,omitempty"`
	ComputeUnits              *int    `json:"computeUnits,omitempty" yaml:"computeUnits,omitempty"`
	ReservedMemory            *int    `json:"reservedMemory,omitempty" yaml:"reservedMemory,omitempty"`

	TargetGroup           string               `json:"targetGroup,omitempty" yaml:"targetGroup,omitempty"`
	LoadBalancedContainer string               `json:"loadBalancedContainer,omitempty" yaml:"loadBalancedContainer,omitempty"`
	ContainerPort         *int                 `json:"containerPort,omitempty" yaml:"containerPort,omitempty"`
	TargetGroupMappings   []TargetGroupMapping `json:"targetGroupMappings,omitempty" yaml:"targetGroupMappings,omitempty"`

	EnvironmentVariables map[string]string `json:"environmentVariables,omitempty" yaml:"environmentVariables,omitempty"`

	// Passed through to the orchestration layer unvalidated.
	IamRole                       string            `json:"iamRole,omitempty" yaml:"iamRole,omitempty"`
	LaunchType                    string            `json:"launchType,omitempty" yaml:"launchType,omitempty"`
	NetworkMode                   string            `json:"networkMode,omitempty" yaml:"networkMode,omitempty"`
	PortProtocol                  string            `json:"portProtocol,omitempty" yaml:"portProtocol,omitempty"`
	PlatformVersion               string            `json:"platformVersion,omitempty" yaml:"platformVersion,omitempty"`
	SecurityGroupNames            []string          `json:"securityGroupNames,omitempty" yaml:"securityGroupNames,omitempty"`
	SubnetTypes                   []string          `json:"subnetTypes,omitempty" yaml:"subnetTypes,omitempty"`
	HealthCheckGracePeriodSeconds *int              `json:"healthCheckGracePeriodSeconds,omitempty" yaml:"healthCheckGracePeriodSeconds,omitempty"`
	Tags                          map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Capacity holds the requested scaling bounds for the server group.
type Capacity struct {
	Min     *int `json:"min,omitempty" yaml:"min,omitempty"`
	Desired *int `json:"desired,omitempty" yaml:"desired,omitempty"`
	Max     *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// PlacementStrategy is one task placement rule. Type names a scheduling
// algorithm (random, spread, binpack); Field names the dimension it
// operates on and is meaningless for random.
type PlacementStrategy struct {
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
}

// ServiceDiscoveryAssociation links the server group to a Cloud Map
// service registry.
type ServiceDiscoveryAssociation struct {
	Registry      *ServiceRegistry `json:"registry,omitempty" yaml:"registry,omitempty"`
	ContainerPort *int             `json:"containerPort,omitempty" yaml:"containerPort,omitempty"`
	ContainerName string           `json:"containerName,omitempty" yaml:"containerName,omitempty"`
}

// ServiceRegistry identifies a Cloud Map service registry.
type ServiceRegistry struct {
	Arn  string `json:"arn,omitempty" yaml:"arn,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}

// TargetGroupMapping wires one container to one load balancer target group.
// A description uses either a list of mappings or the single top-level
// TargetGroup field, never both.
type TargetGroupMapping struct {
	TargetGroup   string `json:"targetGroup,omitempty" yaml:"targetGroup,omitempty"`
	ContainerName string `json:"containerName,omitempty" yaml:"containerName,omitempty"`
	ContainerPort *int   `json:"containerPort,omitempty" yaml:"containerPort,omitempty"`
}
