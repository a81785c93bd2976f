package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpar/stevedore/internal/core/validation"
)

// =============================================================================
// Format Detection Tests
// =============================================================================

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "deploy/web.json", want: FormatJSON},
		{path: "deploy/web.yaml", want: FormatYAML},
		{path: "deploy/web.yml", want: FormatYAML},
		{path: "deploy/web.YAML", want: FormatYAML},
		{path: "deploy/web", want: FormatJSON},
		{path: "deploy/web.txt", want: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

// =============================================================================
// Decode Tests
// =============================================================================

func TestDecodeDescription_JSON(t *testing.T) {
	data := []byte(`{
		"credentials": "ecs-prod",
		"application": "storefront",
		"availabilityZones": ["us-west-2a"],
		"computeUnits": 256
	}`)

	desc, err := DecodeDescription(data, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "ecs-prod", desc.Credentials)
	require.NotNil(t, desc.Application)
	assert.Equal(t, "storefront", *desc.Application)
	assert.Equal(t, []string{"us-west-2a"}, desc.AvailabilityZones)
	require.NotNil(t, desc.ComputeUnits)
	assert.Equal(t, 256, *desc.ComputeUnits)
}

func TestDecodeDescription_YAML(t *testing.T) {
	data := []byte(`
credentials: ecs-test
application: storefront
ecsClusterName: prod-cluster
placementStrategySequence:
  - type: spread
    field: instanceId
targetGroupMappings:
  - targetGroup: tg-api
    containerName: api
    containerPort: 8080
`)

	desc, err := DecodeDescription(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "ecs-test", desc.Credentials)
	require.Len(t, desc.PlacementStrategySequence, 1)
	assert.Equal(t, "spread", desc.PlacementStrategySequence[0].Type)
	require.Len(t, desc.TargetGroupMappings, 1)
	assert.Equal(t, "tg-api", desc.TargetGroupMappings[0].TargetGroup)
	require.NotNil(t, desc.TargetGroupMappings[0].ContainerPort)
	assert.Equal(t, 8080, *desc.TargetGroupMappings[0].ContainerPort)
}

func TestDecodeDescription_EmptyInput(t *testing.T) {
	_, err := DecodeDescription([]byte("   \n"), FormatJSON)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestDecodeDescription_MalformedJSON(t *testing.T) {
	_, err := DecodeDescription([]byte(`{"credentials": `), FormatJSON)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode json description")
}

func TestDecodeDescription_MalformedYAML(t *testing.T) {
	_, err := DecodeDescription([]byte("credentials: [unclosed"), FormatYAML)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml description")
}

// =============================================================================
// Report Tests
// =============================================================================

func TestNewReport_Valid(t *testing.T) {
	r := NewReport("deploy/web.json", nil)

	assert.Equal(t, "deploy/web.json", r.File)
	assert.True(t, r.Valid)
	assert.Empty(t, r.Findings)
	assert.Empty(t, r.Error)
}

func TestNewReport_WithFindings(t *testing.T) {
	findings := []validation.Finding{
		{Field: "availabilityZones", Code: validation.CodeMustHaveOnlyOne},
		{Field: "targetGroup", Code: validation.CodeInvalid, Message: "only one mechanism allowed"},
	}

	r := NewReport("deploy/web.json", findings)

	assert.False(t, r.Valid)
	require.Len(t, r.Findings, 2)
	assert.Equal(t, "availabilityZones", r.Findings[0].Field)
	assert.Equal(t, "createServerGroupDescription.availabilityZones.must.have.only.one", r.Findings[0].Key)
	assert.Equal(t, "only one mechanism allowed", r.Findings[1].Message)
}

func TestNewDecodeFailure(t *testing.T) {
	r := NewDecodeFailure("deploy/broken.json", ErrEmptyInput)

	assert.False(t, r.Valid)
	assert.Empty(t, r.Findings)
	assert.Equal(t, "description is empty", r.Error)
}

func TestExitCode(t *testing.T) {
	valid := NewReport("a.json", nil)
	invalid := NewReport("b.json", []validation.Finding{
		{Field: "credentials", Code: validation.CodeNotNullable},
	})
	failed := NewDecodeFailure("c.json", ErrEmptyInput)

	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 0, ExitCode([]FileReport{valid}))
	assert.Equal(t, 1, ExitCode([]FileReport{valid, invalid}))
	assert.Equal(t, 1, ExitCode([]FileReport{failed}))
}
