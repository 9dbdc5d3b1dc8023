package audioctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		text string
		want DeviceRole
	}{
		{"input", RoleInput},
		{"in", RoleInput},
		{"output", RoleOutput},
		{"out", RoleOutput},
		{"OUTPUT", RoleOutput},
		{"system", RoleSystemOutput},
		{"system-output", RoleSystemOutput},
		{"all", RoleAll},
		{" all ", RoleAll},
	}

	for _, tt := range tests {
		role, err := ParseRole(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, role, tt.text)
	}
}

func TestParseRoleInvalid(t *testing.T) {
	_, err := ParseRole("speakers")

	var invalid *InvalidDeviceRoleError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "speakers", invalid.Text)
}

func TestDefaultAddressResolution(t *testing.T) {
	input := RoleInput.defaultAddress()
	assert.Equal(t, selectorDefaultInput, input.Selector)
	assert.Equal(t, scopeInput, input.Scope)

	output := RoleOutput.defaultAddress()
	assert.Equal(t, selectorDefaultOutput, output.Selector)
	assert.Equal(t, scopeOutput, output.Scope)

	system := RoleSystemOutput.defaultAddress()
	assert.Equal(t, selectorDefaultSystemOutput, system.Selector)
	assert.Equal(t, scopeOutput, system.Scope)

	// the resolver does not distinguish the virtual all role from output;
	// fan-out happens a layer up
	assert.Equal(t, output, RoleAll.defaultAddress())
}

func TestRoleScope(t *testing.T) {
	assert.Equal(t, scopeInput, RoleInput.scope())
	assert.Equal(t, scopeOutput, RoleOutput.scope())
	assert.Equal(t, scopeOutput, RoleSystemOutput.scope())
	assert.Equal(t, scopeOutput, RoleAll.scope())
}
