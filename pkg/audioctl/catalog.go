package audioctl

import (
	"go.uber.org/zap"
)

// Catalog enumerates the devices known to the system and classifies them
// by capability.
type Catalog struct {
	logger   *zap.SugaredLogger
	accessor PropertyAccessor
}

// NewCatalog creates a Catalog over the given accessor.
func NewCatalog(logger *zap.SugaredLogger, accessor PropertyAccessor) *Catalog {
	return &Catalog{
		logger:   logger.Named("catalog"),
		accessor: accessor,
	}
}

// ListAll returns the identifiers of every device the system knows about.
func (c *Catalog) ListAll() ([]DeviceID, error) {
	addr := PropertyAddress{Selector: selectorDevices, Scope: scopeGlobal, Element: ElementMain}
	data, status := c.accessor.GetProperty(SystemObject, addr)
	if !status.OK() {
		c.logger.Warnw("Failed to read device list", "status", status)
		return nil, &NoDevicesFoundError{Role: RoleAll}
	}

	raw := decodeUint32Slice(data)
	ids := make([]DeviceID, len(raw))
	for i, v := range raw {
		ids[i] = DeviceID(v)
	}

	return ids, nil
}

// IsInputCapable reports whether the device has at least one input stream.
func (c *Catalog) IsInputCapable(id DeviceID) bool {
	return c.hasStreams(id, scopeInput)
}

// IsOutputCapable reports whether the device has at least one output stream.
func (c *Catalog) IsOutputCapable(id DeviceID) bool {
	return c.hasStreams(id, scopeOutput)
}

// hasStreams probes for stream presence in a scope. A probe failure means
// "not capable", never an error: absence of the property is how the layer
// below says no.
func (c *Catalog) hasStreams(id DeviceID, scope Scope) bool {
	addr := PropertyAddress{Selector: selectorStreams, Scope: scope, Element: ElementMain}
	data, status := c.accessor.GetProperty(ObjectID(id), addr)
	if !status.OK() {
		return false
	}
	return len(data) >= 4
}

// ListByRole enumerates all devices, keeps those capable of serving the
// role (everything for RoleAll), and builds a record for each survivor.
// Devices whose name or UID cannot be resolved are skipped - enumeration
// is best-effort and never aborts on a single bad device. All returned
// records carry IsDefault=false; the coordinator merges default-ness from
// a separate lookup.
func (c *Catalog) ListByRole(role DeviceRole) ([]DeviceRecord, error) {
	ids, err := c.ListAll()
	if err != nil {
		return nil, err
	}

	records := []DeviceRecord{}

	for _, id := range ids {
		switch role {
		case RoleInput:
			if !c.IsInputCapable(id) {
				continue
			}
		case RoleOutput, RoleSystemOutput:
			if !c.IsOutputCapable(id) {
				continue
			}
		}

		record, err := buildRecord(c.accessor, id, role, false)
		if err != nil {
			c.logger.Debugw("Skipping unresolvable device", "id", id, "error", err)
			continue
		}

		records = append(records, record)
	}

	return records, nil
}
