package audioctl

import (
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/stalexteam/audioctl/pkg/audioctl/util"
)

// VolumeLevel is a validated volume on the 1..100 scale. There is no
// level 0: silence goes through the mute controller, not the volume one.
type VolumeLevel struct {
	value int
}

// NewVolumeLevel validates the 1..100 range at the boundary; everything
// downstream trusts the invariant and performs no range checks of its own.
func NewVolumeLevel(level int) (VolumeLevel, error) {
	if level < 1 || level > 100 {
		return VolumeLevel{}, &InvalidVolumeLevelError{Level: level}
	}
	return VolumeLevel{value: level}, nil
}

// ParseVolumeLevel builds a VolumeLevel from its textual form.
func ParseVolumeLevel(text string) (VolumeLevel, error) {
	level, err := strconv.Atoi(text)
	if err != nil {
		return VolumeLevel{}, &InvalidVolumeLevelError{Level: 0}
	}
	return NewVolumeLevel(level)
}

// Int returns the level on the 1..100 scale.
func (v VolumeLevel) Int() int {
	return v.value
}

// scalar converts to the device property's 0..1 scale.
func (v VolumeLevel) scalar() float32 {
	return float32(v.value) / 100
}

// VolumeControl applies and reads a device's scalar volume.
type VolumeControl struct {
	logger   *zap.SugaredLogger
	accessor PropertyAccessor
}

// NewVolumeControl creates a VolumeControl over the given accessor.
func NewVolumeControl(logger *zap.SugaredLogger, accessor PropertyAccessor) *VolumeControl {
	return &VolumeControl{
		logger:   logger.Named("volume"),
		accessor: accessor,
	}
}

// SetVolume writes the level to the device's scalar volume property,
// scoped to the device's role, and returns the applied level.
func (vc *VolumeControl) SetVolume(device DeviceRecord, level VolumeLevel) (int, error) {
	addr := PropertyAddress{Selector: selectorVolumeScalar, Scope: device.Role.scope(), Element: ElementMain}

	if status := vc.accessor.SetProperty(ObjectID(device.ID), addr, encodeFloat32(level.scalar())); !status.OK() {
		vc.logger.Warnw("Failed to set volume", "device", device.Name, "level", level.Int(), "status", status)
		return 0, &SetVolumeFailedError{Device: device, Status: status}
	}

	vc.logger.Debugw("Volume applied", "device", device.Name, "level", level.Int())

	return level.Int(), nil
}

// GetVolume reads the device's scalar volume back on the 0..100 scale,
// rounded to the nearest integer.
func (vc *VolumeControl) GetVolume(device DeviceRecord) (int, error) {
	addr := PropertyAddress{Selector: selectorVolumeScalar, Scope: device.Role.scope(), Element: ElementMain}

	data, status := vc.accessor.GetProperty(ObjectID(device.ID), addr)
	if !status.OK() {
		vc.logger.Warnw("Failed to read volume", "device", device.Name, "status", status)
		return 0, &VolumeStatusUnavailableError{Device: device, Status: status}
	}

	scalar, ok := decodeFloat32(data)
	if !ok {
		return 0, &VolumeStatusUnavailableError{Device: device, Status: status}
	}

	return util.Clamp(int(math.Round(float64(scalar)*100)), 0, 100), nil
}
