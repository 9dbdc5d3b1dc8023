package audioctl

import (
	"fmt"
)

// DeviceNotFoundError means a by-name or by-UID lookup matched nothing.
type DeviceNotFoundError struct {
	Query string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("no device matching %q", e.Query)
}

// NoDevicesFoundError means a role's device list came back empty.
type NoDevicesFoundError struct {
	Role DeviceRole
}

func (e *NoDevicesFoundError) Error() string {
	return fmt.Sprintf("no %s devices found", e.Role)
}

// CurrentDeviceUnavailableError means the default device for a role could
// not be read.
type CurrentDeviceUnavailableError struct {
	Role   DeviceRole
	Status Status
}

func (e *CurrentDeviceUnavailableError) Error() string {
	return fmt.Sprintf("current %s device unavailable (status %d)", e.Role, e.Status)
}

// SetDeviceFailedError means writing a role's default device property failed.
// Status is the opaque platform code.
type SetDeviceFailedError struct {
	ID     DeviceID
	Role   DeviceRole
	Status Status
}

func (e *SetDeviceFailedError) Error() string {
	return fmt.Sprintf("set %s device to %d failed (status %d)", e.Role, e.ID, e.Status)
}

// DeviceNameUnavailableError means a device's name property could not be read.
type DeviceNameUnavailableError struct {
	ID DeviceID
}

func (e *DeviceNameUnavailableError) Error() string {
	return fmt.Sprintf("name unavailable for device %d", e.ID)
}

// DeviceUIDUnavailableError means a device's UID property could not be read.
type DeviceUIDUnavailableError struct {
	ID DeviceID
}

func (e *DeviceUIDUnavailableError) Error() string {
	return fmt.Sprintf("uid unavailable for device %d", e.ID)
}

// MuteStatusUnavailableError means the current mute bit could not be read
// ahead of a toggle.
type MuteStatusUnavailableError struct {
	Device DeviceRecord
	Status Status
}

func (e *MuteStatusUnavailableError) Error() string {
	return fmt.Sprintf("mute status unavailable for %q (status %d)", e.Device.Name, e.Status)
}

// SetMuteFailedError means writing a device's mute bit failed.
type SetMuteFailedError struct {
	Device DeviceRecord
	Action MuteAction
	Status Status
}

func (e *SetMuteFailedError) Error() string {
	return fmt.Sprintf("%s %q failed (status %d)", e.Action, e.Device.Name, e.Status)
}

// SetVolumeFailedError means writing a device's scalar volume failed.
type SetVolumeFailedError struct {
	Device DeviceRecord
	Status Status
}

func (e *SetVolumeFailedError) Error() string {
	return fmt.Sprintf("set volume on %q failed (status %d)", e.Device.Name, e.Status)
}

// VolumeStatusUnavailableError means a device's scalar volume could not be read.
type VolumeStatusUnavailableError struct {
	Device DeviceRecord
	Status Status
}

func (e *VolumeStatusUnavailableError) Error() string {
	return fmt.Sprintf("volume unavailable for %q (status %d)", e.Device.Name, e.Status)
}

// OperationNotSupportedError rejects an operation a role cannot perform,
// e.g. muting the system sound-effects output.
type OperationNotSupportedError struct {
	Reason string
}

func (e *OperationNotSupportedError) Error() string {
	return fmt.Sprintf("operation not supported: %s", e.Reason)
}

// InvalidDeviceRoleError means a role name didn't parse.
type InvalidDeviceRoleError struct {
	Text string
}

func (e *InvalidDeviceRoleError) Error() string {
	return fmt.Sprintf("invalid device role %q", e.Text)
}

// InvalidDeviceIdentifierError means a textual device identifier didn't
// parse as a numeric handle.
type InvalidDeviceIdentifierError struct {
	Text string
}

func (e *InvalidDeviceIdentifierError) Error() string {
	return fmt.Sprintf("invalid device identifier %q", e.Text)
}

// InvalidVolumeLevelError means a volume was outside the 1..100 range.
type InvalidVolumeLevelError struct {
	Level int
}

func (e *InvalidVolumeLevelError) Error() string {
	return fmt.Sprintf("volume level %d out of range 1..100", e.Level)
}

// InvalidMuteActionError means a mute action name didn't parse.
type InvalidMuteActionError struct {
	Text string
}

func (e *InvalidMuteActionError) Error() string {
	return fmt.Sprintf("invalid mute action %q", e.Text)
}
