package audioctl

import (
	"strings"
)

// DeviceRole is a logical device purpose. RoleAll is virtual: it stands
// for Input and Output together, has no hardware property of its own, and
// is expanded into the two concrete roles by the operations that accept it.
type DeviceRole int

const (
	RoleInput DeviceRole = iota
	RoleOutput
	RoleSystemOutput
	RoleAll
)

func (r DeviceRole) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleSystemOutput:
		return "system"
	case RoleAll:
		return "all"
	}
	return "unknown"
}

// ParseRole maps a role name to its DeviceRole.
func ParseRole(text string) (DeviceRole, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "input", "in":
		return RoleInput, nil
	case "output", "out":
		return RoleOutput, nil
	case "system", "system-output":
		return RoleSystemOutput, nil
	case "all":
		return RoleAll, nil
	}
	return 0, &InvalidDeviceRoleError{Text: text}
}

// defaultAddress resolves a role to the system-object property holding its
// default device. Pure mapping, no I/O. RoleAll resolves exactly like
// RoleOutput here: fan-out is the coordinator's job, not the resolver's.
func (r DeviceRole) defaultAddress() PropertyAddress {
	switch r {
	case RoleInput:
		return PropertyAddress{Selector: selectorDefaultInput, Scope: scopeInput, Element: ElementMain}
	case RoleSystemOutput:
		return PropertyAddress{Selector: selectorDefaultSystemOutput, Scope: scopeOutput, Element: ElementMain}
	default:
		return PropertyAddress{Selector: selectorDefaultOutput, Scope: scopeOutput, Element: ElementMain}
	}
}

// scope is the device-side scope a role's per-device properties (streams,
// mute, volume) live in.
func (r DeviceRole) scope() Scope {
	if r == RoleInput {
		return scopeInput
	}
	return scopeOutput
}
