package audioctl

import (
	"strings"

	"go.uber.org/zap"
)

// MuteAction selects what SetMute does to the mute bit.
type MuteAction int

const (
	ActionMute MuteAction = iota
	ActionUnmute
	ActionToggle
)

func (a MuteAction) String() string {
	switch a {
	case ActionMute:
		return "mute"
	case ActionUnmute:
		return "unmute"
	case ActionToggle:
		return "toggle"
	}
	return "unknown"
}

// ParseMuteAction maps an action name to its MuteAction.
func ParseMuteAction(text string) (MuteAction, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "mute", "on":
		return ActionMute, nil
	case "unmute", "off":
		return ActionUnmute, nil
	case "toggle":
		return ActionToggle, nil
	}
	return 0, &InvalidMuteActionError{Text: text}
}

// Muter gets, sets and toggles mute on a role's current default device.
type Muter struct {
	logger      *zap.SugaredLogger
	accessor    PropertyAccessor
	coordinator *Coordinator
}

// NewMuter creates a Muter over the given accessor and coordinator.
func NewMuter(logger *zap.SugaredLogger, accessor PropertyAccessor, coordinator *Coordinator) *Muter {
	return &Muter{
		logger:      logger.Named("muter"),
		accessor:    accessor,
		coordinator: coordinator,
	}
}

// SetMute applies the action to the role's current device and returns the
// resulting muted state. RoleAll fans out to input then output (both
// always attempted, first error kept) and reports the output side's state.
// The system sound-effects role cannot be muted and is rejected outright.
func (m *Muter) SetMute(action MuteAction, role DeviceRole) (bool, error) {
	if role == RoleSystemOutput {
		return false, &OperationNotSupportedError{Reason: "system sound-effects output has no mute control"}
	}

	if role == RoleAll {
		var outputState bool

		err := fanOut(func(concrete DeviceRole) error {
			state, muteErr := m.SetMute(action, concrete)
			if concrete == RoleOutput {
				outputState = state
			}
			return muteErr
		})

		return outputState, err
	}

	device, err := m.coordinator.GetCurrent(role)
	if err != nil {
		return false, err
	}

	target := true
	switch action {
	case ActionUnmute:
		target = false
	case ActionToggle:
		muted, err := m.readMute(device)
		if err != nil {
			return false, err
		}
		target = !muted
	}

	addr := PropertyAddress{Selector: selectorMute, Scope: role.scope(), Element: ElementMain}

	var bit uint32
	if target {
		bit = 1
	}

	if status := m.accessor.SetProperty(ObjectID(device.ID), addr, encodeUint32(bit)); !status.OK() {
		m.logger.Warnw("Failed to set mute", "device", device.Name, "action", action, "status", status)
		return false, &SetMuteFailedError{Device: device, Action: action, Status: status}
	}

	m.logger.Debugw("Mute state applied", "device", device.Name, "muted", target)

	return target, nil
}

// GetMute reports the mute state of the role's current device. Same
// restriction as SetMute: the system sound-effects role is rejected.
func (m *Muter) GetMute(role DeviceRole) (bool, error) {
	if role == RoleSystemOutput {
		return false, &OperationNotSupportedError{Reason: "system sound-effects output has no mute control"}
	}

	device, err := m.coordinator.GetCurrent(role)
	if err != nil {
		return false, err
	}

	return m.readMute(device)
}

func (m *Muter) readMute(device DeviceRecord) (bool, error) {
	addr := PropertyAddress{Selector: selectorMute, Scope: device.Role.scope(), Element: ElementMain}

	data, status := m.accessor.GetProperty(ObjectID(device.ID), addr)
	if !status.OK() {
		m.logger.Warnw("Failed to read mute state", "device", device.Name, "status", status)
		return false, &MuteStatusUnavailableError{Device: device, Status: status}
	}

	bit, ok := decodeUint32(data)
	if !ok {
		return false, &MuteStatusUnavailableError{Device: device, Status: status}
	}

	return bit != 0, nil
}
