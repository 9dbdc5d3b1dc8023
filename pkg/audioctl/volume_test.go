package audioctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVolumeLevelBounds(t *testing.T) {
	for _, level := range []int{0, 101, -3, 1000} {
		_, err := NewVolumeLevel(level)

		var invalid *InvalidVolumeLevelError
		require.ErrorAs(t, err, &invalid, "level %d", level)
		assert.Equal(t, level, invalid.Level)
	}

	for _, level := range []int{1, 50, 100} {
		v, err := NewVolumeLevel(level)
		require.NoError(t, err, "level %d", level)
		assert.Equal(t, level, v.Int())
	}
}

func TestParseVolumeLevel(t *testing.T) {
	v, err := ParseVolumeLevel("42")
	require.NoError(t, err)
	assert.Equal(t, 42, v.Int())

	_, err = ParseVolumeLevel("loud")
	var invalid *InvalidVolumeLevelError
	require.ErrorAs(t, err, &invalid)

	_, err = ParseVolumeLevel("0")
	require.ErrorAs(t, err, &invalid)
}

func testOutputDevice(id DeviceID) DeviceRecord {
	return DeviceRecord{ID: id, Name: "Speakers", UID: "spk-uid", Role: RoleOutput}
}

func TestSetVolumeReturnsAppliedLevel(t *testing.T) {
	fake := newFakeAccessor()
	fake.addDevice(1, "Speakers", "spk-uid", false, true)

	vc := NewVolumeControl(testLogger(), fake)
	device := testOutputDevice(1)

	level, err := NewVolumeLevel(37)
	require.NoError(t, err)

	applied, err := vc.SetVolume(device, level)
	require.NoError(t, err)
	assert.Equal(t, 37, applied)
}

func TestVolumeRoundTrip(t *testing.T) {
	fake := newFakeAccessor()
	fake.addDevice(2, "Speakers", "spk-uid", false, true)

	vc := NewVolumeControl(testLogger(), fake)
	device := testOutputDevice(2)

	for _, want := range []int{1, 37, 50, 100} {
		level, err := NewVolumeLevel(want)
		require.NoError(t, err)

		_, err = vc.SetVolume(device, level)
		require.NoError(t, err)

		got, err := vc.GetVolume(device)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSetVolumeWriteFailure(t *testing.T) {
	fake := newFakeAccessor()
	fake.addDevice(3, "Speakers", "spk-uid", false, true)
	fake.failSet(ObjectID(3), PropertyAddress{Selector: selectorVolumeScalar, Scope: scopeOutput, Element: ElementMain}, Status(-10877))

	vc := NewVolumeControl(testLogger(), fake)
	device := testOutputDevice(3)

	level, err := NewVolumeLevel(80)
	require.NoError(t, err)

	_, err = vc.SetVolume(device, level)

	var failed *SetVolumeFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, Status(-10877), failed.Status)
}

func TestGetVolumeReadFailure(t *testing.T) {
	fake := newFakeAccessor()
	fake.addDevice(4, "Speakers", "spk-uid", false, true)

	vc := NewVolumeControl(testLogger(), fake)
	device := testOutputDevice(4)

	_, err := vc.GetVolume(device)

	var unavailable *VolumeStatusUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

// a volume property is scoped to the device's role
func TestSetVolumeUsesRoleScope(t *testing.T) {
	fake := newFakeAccessor()
	fake.addDevice(5, "Mic", "mic-uid", true, false)

	vc := NewVolumeControl(testLogger(), fake)
	device := DeviceRecord{ID: 5, Name: "Mic", UID: "mic-uid", Role: RoleInput}

	level, err := NewVolumeLevel(60)
	require.NoError(t, err)

	_, err = vc.SetVolume(device, level)
	require.NoError(t, err)

	require.Len(t, fake.SetCalls, 1)
	assert.Equal(t, scopeInput, fake.SetCalls[0].Address.Scope)
	assert.Equal(t, selectorVolumeScalar, fake.SetCalls[0].Address.Selector)
}
