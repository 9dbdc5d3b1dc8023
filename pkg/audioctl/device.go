package audioctl

// DeviceID is the opaque, OS-assigned handle to a hardware device. It is
// stable for the device's current connection session only; UID is the
// identifier that survives unplug/replug.
type DeviceID uint32

// DeviceRecord is an immutable snapshot of one device. Records are built
// fresh on every lookup; IsDefault reflects the moment the record was
// assembled and is not live-updated.
type DeviceRecord struct {
	ID        DeviceID   `json:"id"`
	Name      string     `json:"name"`
	UID       string     `json:"uid"`
	Role      DeviceRole `json:"-"`
	IsDefault bool       `json:"default"`
}

// Same reports record identity. Two records are the same device iff their
// identifiers match; name, UID and role play no part.
func (r DeviceRecord) Same(other DeviceRecord) bool {
	return r.ID == other.ID
}

// buildRecord assembles a record for one device by resolving its name and
// UID properties. Callers decide IsDefault: the current-device path marks
// it true, the catalog path false. The builder never infers it.
func buildRecord(accessor PropertyAccessor, id DeviceID, role DeviceRole, isDefault bool) (DeviceRecord, error) {
	nameAddr := PropertyAddress{Selector: selectorName, Scope: scopeGlobal, Element: ElementMain}
	nameData, status := accessor.GetProperty(ObjectID(id), nameAddr)
	if !status.OK() || len(nameData) == 0 {
		return DeviceRecord{}, &DeviceNameUnavailableError{ID: id}
	}

	uidAddr := PropertyAddress{Selector: selectorUID, Scope: scopeGlobal, Element: ElementMain}
	uidData, status := accessor.GetProperty(ObjectID(id), uidAddr)
	if !status.OK() || len(uidData) == 0 {
		return DeviceRecord{}, &DeviceUIDUnavailableError{ID: id}
	}

	return DeviceRecord{
		ID:        id,
		Name:      string(nameData),
		UID:       string(uidData),
		Role:      role,
		IsDefault: isDefault,
	}, nil
}
