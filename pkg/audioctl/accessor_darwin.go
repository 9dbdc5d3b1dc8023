package audioctl

/*
#cgo LDFLAGS: -framework CoreAudio -framework CoreFoundation
#include <CoreAudio/CoreAudio.h>
#include <CoreFoundation/CoreFoundation.h>

static OSStatus audioctlGetSize(AudioObjectID object, AudioObjectPropertySelector sel,
	AudioObjectPropertyScope scope, AudioObjectPropertyElement elem, UInt32 *size) {
	AudioObjectPropertyAddress addr = {sel, scope, elem};
	return AudioObjectGetPropertyDataSize(object, &addr, 0, NULL, size);
}

static OSStatus audioctlGet(AudioObjectID object, AudioObjectPropertySelector sel,
	AudioObjectPropertyScope scope, AudioObjectPropertyElement elem, UInt32 *size, void *buf) {
	AudioObjectPropertyAddress addr = {sel, scope, elem};
	return AudioObjectGetPropertyData(object, &addr, 0, NULL, size, buf);
}

static OSStatus audioctlSet(AudioObjectID object, AudioObjectPropertySelector sel,
	AudioObjectPropertyScope scope, AudioObjectPropertyElement elem, UInt32 size, void *buf) {
	AudioObjectPropertyAddress addr = {sel, scope, elem};
	return AudioObjectSetPropertyData(object, &addr, 0, NULL, size, buf);
}
*/
import "C"

import (
	"bytes"
	"unsafe"
)

// coreAudioAccessor is the real PropertyAccessor, backed by the CoreAudio
// hardware abstraction layer.
type coreAudioAccessor struct{}

// NewAccessor returns the platform property accessor.
func NewAccessor() PropertyAccessor {
	return &coreAudioAccessor{}
}

func (a *coreAudioAccessor) GetProperty(object ObjectID, address PropertyAddress) ([]byte, Status) {
	// name and UID come back as CFStrings; hand them out as UTF-8 bytes
	// so the layers above stay byte-oriented
	if address.Selector == selectorName || address.Selector == selectorUID {
		return a.getStringProperty(object, address)
	}

	var size C.UInt32
	status := C.audioctlGetSize(C.AudioObjectID(object),
		C.AudioObjectPropertySelector(address.Selector),
		C.AudioObjectPropertyScope(address.Scope),
		C.AudioObjectPropertyElement(address.Element), &size)
	if status != 0 {
		return nil, Status(status)
	}
	if size == 0 {
		return []byte{}, StatusOK
	}

	buf := make([]byte, int(size))
	status = C.audioctlGet(C.AudioObjectID(object),
		C.AudioObjectPropertySelector(address.Selector),
		C.AudioObjectPropertyScope(address.Scope),
		C.AudioObjectPropertyElement(address.Element), &size, unsafe.Pointer(&buf[0]))
	if status != 0 {
		return nil, Status(status)
	}

	return buf[:int(size)], StatusOK
}

func (a *coreAudioAccessor) SetProperty(object ObjectID, address PropertyAddress, data []byte) Status {
	var buf unsafe.Pointer
	if len(data) > 0 {
		buf = unsafe.Pointer(&data[0])
	}

	status := C.audioctlSet(C.AudioObjectID(object),
		C.AudioObjectPropertySelector(address.Selector),
		C.AudioObjectPropertyScope(address.Scope),
		C.AudioObjectPropertyElement(address.Element), C.UInt32(len(data)), buf)

	return Status(status)
}

func (a *coreAudioAccessor) getStringProperty(object ObjectID, address PropertyAddress) ([]byte, Status) {
	var ref C.CFStringRef
	size := C.UInt32(unsafe.Sizeof(ref))

	status := C.audioctlGet(C.AudioObjectID(object),
		C.AudioObjectPropertySelector(address.Selector),
		C.AudioObjectPropertyScope(address.Scope),
		C.AudioObjectPropertyElement(address.Element), &size, unsafe.Pointer(&ref))
	if status != 0 {
		return nil, Status(status)
	}
	if ref == nil {
		return []byte{}, StatusOK
	}
	defer C.CFRelease(C.CFTypeRef(unsafe.Pointer(ref)))

	length := C.CFStringGetLength(ref)
	max := C.CFStringGetMaximumSizeForEncoding(length, C.kCFStringEncodingUTF8) + 1

	buf := make([]byte, int(max))
	if C.CFStringGetCString(ref, (*C.char)(unsafe.Pointer(&buf[0])), C.CFIndex(max), C.kCFStringEncodingUTF8) == 0 {
		return []byte{}, StatusOK
	}

	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	return buf, StatusOK
}
