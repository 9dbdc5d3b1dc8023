package audioctl

import (
	"strings"

	"go.uber.org/zap"
)

// Coordinator owns default-device state: reading the current default per
// role, switching it, and keeping the system sound-effects output in step
// with the primary output when asked to.
type Coordinator struct {
	logger   *zap.SugaredLogger
	accessor PropertyAccessor
	catalog  *Catalog

	// SyncSystemSounds makes SetDefault on the output role also repoint
	// the system sound-effects output at the same device. Injected by the
	// caller so tests control it deterministically; read at the start of
	// each SetDefault call.
	SyncSystemSounds bool
}

// NewCoordinator creates a Coordinator over the given accessor and catalog.
func NewCoordinator(logger *zap.SugaredLogger, accessor PropertyAccessor, catalog *Catalog) *Coordinator {
	return &Coordinator{
		logger:   logger.Named("coordinator"),
		accessor: accessor,
		catalog:  catalog,
	}
}

// GetCurrent returns the current default device for a role, built fresh
// with IsDefault=true. RoleAll resolves like RoleOutput, same as the
// address resolver.
func (co *Coordinator) GetCurrent(role DeviceRole) (DeviceRecord, error) {
	data, status := co.accessor.GetProperty(SystemObject, role.defaultAddress())
	if !status.OK() {
		co.logger.Warnw("Failed to read default device", "role", role, "status", status)
		return DeviceRecord{}, &CurrentDeviceUnavailableError{Role: role, Status: status}
	}

	id, ok := decodeUint32(data)
	if !ok {
		co.logger.Warnw("Default device payload too short", "role", role, "bytes", len(data))
		return DeviceRecord{}, &CurrentDeviceUnavailableError{Role: role, Status: status}
	}

	return buildRecord(co.accessor, DeviceID(id), role, true)
}

// ListWithDefaultMarked returns the role's catalog listing with IsDefault
// set on exactly the record matching the current device. When the current
// device is absent from the catalog (possible mid-disconnect) no record is
// marked; there is never more than one.
func (co *Coordinator) ListWithDefaultMarked(role DeviceRole) ([]DeviceRecord, error) {
	records, err := co.catalog.ListByRole(role)
	if err != nil {
		return nil, err
	}

	current, err := co.GetCurrent(role)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].IsDefault = records[i].ID == current.ID
	}

	return records, nil
}

// SetDefault writes the role's default-device property. When the role is
// the primary output and SyncSystemSounds is on, the system sound-effects
// output is repointed at the same device in a second write. The two writes
// are not atomic: a failed second write surfaces as its own error after
// the primary has already taken effect. That ordering is deliberate and
// matches the layer below, which offers no transaction across the two
// properties.
func (co *Coordinator) SetDefault(id DeviceID, role DeviceRole) (DeviceRecord, error) {
	status := co.accessor.SetProperty(SystemObject, role.defaultAddress(), encodeUint32(uint32(id)))
	if !status.OK() {
		co.logger.Warnw("Failed to set default device", "role", role, "id", id, "status", status)
		return DeviceRecord{}, &SetDeviceFailedError{ID: id, Role: role, Status: status}
	}

	if role == RoleOutput && co.SyncSystemSounds {
		addr := RoleSystemOutput.defaultAddress()
		if status := co.accessor.SetProperty(SystemObject, addr, encodeUint32(uint32(id))); !status.OK() {
			co.logger.Warnw("Failed to sync sound-effects output", "id", id, "status", status)
			return DeviceRecord{}, &SetDeviceFailedError{ID: id, Role: RoleSystemOutput, Status: status}
		}
		co.logger.Debugw("Synced sound-effects output", "id", id)
	}

	co.logger.Infow("Default device changed", "role", role, "id", id)

	return buildRecord(co.accessor, id, role, true)
}

// SetDefaultByName switches the role's default to the first listed device
// whose name matches exactly.
func (co *Coordinator) SetDefaultByName(name string, role DeviceRole) (DeviceRecord, error) {
	return co.setByMatch(role, name, func(r DeviceRecord) bool {
		return r.Name == name
	})
}

// SetDefaultByUID switches the role's default to the first listed device
// whose UID contains the given substring. First match wins under catalog
// enumeration order.
func (co *Coordinator) SetDefaultByUID(substring string, role DeviceRole) (DeviceRecord, error) {
	return co.setByMatch(role, substring, func(r DeviceRecord) bool {
		return strings.Contains(r.UID, substring)
	})
}

func (co *Coordinator) setByMatch(role DeviceRole, query string, match func(DeviceRecord) bool) (DeviceRecord, error) {
	records, err := co.catalog.ListByRole(role)
	if err != nil {
		return DeviceRecord{}, err
	}

	for _, record := range records {
		if match(record) {
			return co.SetDefault(record.ID, role)
		}
	}

	co.logger.Warnw("No device matched query", "role", role, "query", query)

	return DeviceRecord{}, &DeviceNotFoundError{Query: query}
}

// fanOut expands a virtual-all operation into its two concrete roles,
// Input first, then Output, always attempting both. The first error seen
// wins; callers must treat a fan-out failure as "at least one side may
// have partially applied".
func fanOut(op func(DeviceRole) error) error {
	var first error

	for _, role := range []DeviceRole{RoleInput, RoleOutput} {
		if err := op(role); err != nil && first == nil {
			first = err
		}
	}

	return first
}
