// Package description defines the create-server-group deployment description.
//
// This package contains the value types submitted by callers when asking for
// a new ECS server group. All types are plain data (no I/O, no side effects)
// and comply with ADR-002 "Values as Boundaries"; the validation package
// consumes them read-only.
//
// # Types
//
//   - CreateServerGroup: The full deployment description
//   - Capacity: Desired scaling bounds (min/desired/max)
//   - PlacementStrategy: One task placement rule (type + field)
//   - TargetGroupMapping: Per-container load balancer wiring
//
// # Usage
//
// Descriptions arrive as JSON on the operations API or as JSON/YAML files
// read by the lint tool, then flow unchanged into the validation engine:
//
//	findings := validator.Validate(desc)
package description
