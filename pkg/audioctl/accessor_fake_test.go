package audioctl

import (
	"go.uber.org/zap"
)

// mirrors the platform's unknown-property code ('who?')
const statusUnknownProperty = Status(0x77686F3F)

type fakeCall struct {
	Object  ObjectID
	Address PropertyAddress
	Data    []byte
}

// fakeAccessor is a programmable in-memory property store recording every
// write it receives.
type fakeAccessor struct {
	props   map[ObjectID]map[PropertyAddress][]byte
	getFail map[ObjectID]map[PropertyAddress]Status
	setFail map[ObjectID]map[PropertyAddress]Status

	deviceOrder []DeviceID

	SetCalls []fakeCall
}

func newFakeAccessor() *fakeAccessor {
	return &fakeAccessor{
		props:   map[ObjectID]map[PropertyAddress][]byte{},
		getFail: map[ObjectID]map[PropertyAddress]Status{},
		setFail: map[ObjectID]map[PropertyAddress]Status{},
	}
}

func (f *fakeAccessor) GetProperty(object ObjectID, address PropertyAddress) ([]byte, Status) {
	if status, ok := f.getFail[object][address]; ok {
		return nil, status
	}
	if data, ok := f.props[object][address]; ok {
		out := make([]byte, len(data))
		copy(out, data)
		return out, StatusOK
	}
	return nil, statusUnknownProperty
}

func (f *fakeAccessor) SetProperty(object ObjectID, address PropertyAddress, data []byte) Status {
	stored := make([]byte, len(data))
	copy(stored, data)

	f.SetCalls = append(f.SetCalls, fakeCall{Object: object, Address: address, Data: stored})

	if status, ok := f.setFail[object][address]; ok {
		return status
	}

	f.seed(object, address, stored)
	return StatusOK
}

func (f *fakeAccessor) seed(object ObjectID, address PropertyAddress, data []byte) {
	if f.props[object] == nil {
		f.props[object] = map[PropertyAddress][]byte{}
	}
	f.props[object][address] = data
}

func (f *fakeAccessor) failGet(object ObjectID, address PropertyAddress, status Status) {
	if f.getFail[object] == nil {
		f.getFail[object] = map[PropertyAddress]Status{}
	}
	f.getFail[object][address] = status
}

func (f *fakeAccessor) failSet(object ObjectID, address PropertyAddress, status Status) {
	if f.setFail[object] == nil {
		f.setFail[object] = map[PropertyAddress]Status{}
	}
	f.setFail[object][address] = status
}

// addDevice installs a device with the given capabilities and appends it
// to the system device list in insertion order.
func (f *fakeAccessor) addDevice(id DeviceID, name, uid string, input, output bool) {
	obj := ObjectID(id)

	if name != "" {
		f.seed(obj, PropertyAddress{Selector: selectorName, Scope: scopeGlobal, Element: ElementMain}, []byte(name))
	}
	if uid != "" {
		f.seed(obj, PropertyAddress{Selector: selectorUID, Scope: scopeGlobal, Element: ElementMain}, []byte(uid))
	}
	if input {
		f.seed(obj, PropertyAddress{Selector: selectorStreams, Scope: scopeInput, Element: ElementMain}, encodeUint32(uint32(id)+1000))
		f.seed(obj, PropertyAddress{Selector: selectorMute, Scope: scopeInput, Element: ElementMain}, encodeUint32(0))
	}
	if output {
		f.seed(obj, PropertyAddress{Selector: selectorStreams, Scope: scopeOutput, Element: ElementMain}, encodeUint32(uint32(id)+2000))
		f.seed(obj, PropertyAddress{Selector: selectorMute, Scope: scopeOutput, Element: ElementMain}, encodeUint32(0))
	}

	f.deviceOrder = append(f.deviceOrder, id)

	listed := make([]byte, 0, len(f.deviceOrder)*4)
	for _, devID := range f.deviceOrder {
		listed = append(listed, encodeUint32(uint32(devID))...)
	}
	f.seed(SystemObject, PropertyAddress{Selector: selectorDevices, Scope: scopeGlobal, Element: ElementMain}, listed)
}

func (f *fakeAccessor) setDefault(role DeviceRole, id DeviceID) {
	f.seed(SystemObject, role.defaultAddress(), encodeUint32(uint32(id)))
}

func (f *fakeAccessor) currentDefault(role DeviceRole) DeviceID {
	data, status := f.GetProperty(SystemObject, role.defaultAddress())
	if !status.OK() {
		return 0
	}
	id, _ := decodeUint32(data)
	return DeviceID(id)
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
