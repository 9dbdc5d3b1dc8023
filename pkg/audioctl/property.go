// Package audioctl manages default audio device selection, muting and
// volume by reading and writing hardware-abstraction-layer properties on
// the system object and on individual devices.
package audioctl

import (
	"encoding/binary"
	"math"
)

// ObjectID addresses either the system object or a single device in the
// hardware abstraction layer.
type ObjectID uint32

// SystemObject is the well-known object carrying system-wide properties
// (device list, per-role defaults).
const SystemObject ObjectID = 1

// Selector identifies which property of an object is being addressed.
type Selector uint32

// Scope narrows a property to the input or output side of a device.
type Scope uint32

// Element addresses a channel within a scope; ElementMain is the whole scope.
type Element uint32

// ElementMain is the master element of any scope.
const ElementMain Element = 0

// Status is the opaque platform status code returned by every property
// operation. Zero is the only success value; everything else is passed
// through unchanged for diagnostics.
type Status int32

// StatusOK is the success sentinel.
const StatusOK Status = 0

// OK reports whether the status is the success sentinel.
func (s Status) OK() bool {
	return s == StatusOK
}

func fourCC(code string) uint32 {
	return uint32(code[0])<<24 | uint32(code[1])<<16 | uint32(code[2])<<8 | uint32(code[3])
}

var (
	// system object selectors
	selectorDevices             = Selector(fourCC("dev#"))
	selectorDefaultInput        = Selector(fourCC("dIn "))
	selectorDefaultOutput       = Selector(fourCC("dOut"))
	selectorDefaultSystemOutput = Selector(fourCC("sOut"))

	// per-device selectors
	selectorName         = Selector(fourCC("lnam"))
	selectorUID          = Selector(fourCC("uid "))
	selectorStreams      = Selector(fourCC("stm#"))
	selectorMute         = Selector(fourCC("mute"))
	selectorVolumeScalar = Selector(fourCC("volm"))

	scopeGlobal = Scope(fourCC("glob"))
	scopeInput  = Scope(fourCC("inpt"))
	scopeOutput = Scope(fourCC("outp"))
)

// PropertyAddress is the (selector, scope, element) triple identifying one
// readable/writable attribute on an object.
type PropertyAddress struct {
	Selector Selector
	Scope    Scope
	Element  Element
}

// PropertyAccessor is the raw property primitive. It shuttles bytes and
// status codes and holds no business logic; the real implementation talks
// to the platform audio layer.
type PropertyAccessor interface {
	GetProperty(object ObjectID, address PropertyAddress) ([]byte, Status)
	SetProperty(object ObjectID, address PropertyAddress, data []byte) Status
}

// payload codecs - properties are exchanged in host byte order

func encodeUint32(v uint32) []byte {
	data := make([]byte, 4)
	binary.NativeEndian.PutUint32(data, v)
	return data
}

func decodeUint32(data []byte) (uint32, bool) {
	if len(data) < 4 {
		return 0, false
	}
	return binary.NativeEndian.Uint32(data), true
}

func decodeUint32Slice(data []byte) []uint32 {
	out := make([]uint32, 0, len(data)/4)
	for len(data) >= 4 {
		out = append(out, binary.NativeEndian.Uint32(data))
		data = data[4:]
	}
	return out
}

func encodeFloat32(v float32) []byte {
	data := make([]byte, 4)
	binary.NativeEndian.PutUint32(data, math.Float32bits(v))
	return data
}

func decodeFloat32(data []byte) (float32, bool) {
	bits, ok := decodeUint32(data)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(bits), true
}
