package audioctl

import (
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

// Cycler advances a role's default device through the catalog enumeration
// order, wrapping at the end.
type Cycler struct {
	logger      *zap.SugaredLogger
	coordinator *Coordinator
	catalog     *Catalog
}

// NewCycler creates a Cycler delegating to the given coordinator.
func NewCycler(logger *zap.SugaredLogger, coordinator *Coordinator, catalog *Catalog) *Cycler {
	return &Cycler{
		logger:      logger.Named("cycler"),
		coordinator: coordinator,
		catalog:     catalog,
	}
}

// CycleNext switches the role's default to the next device in enumeration
// order. RoleAll cycles input and output independently (input first, both
// always attempted, first error kept) and returns the resulting output
// default as the snapshot. When the current device is missing from the
// fresh listing the cycle restarts at the first device: the missing index
// counts as -1, so "next" is 0.
func (cy *Cycler) CycleNext(role DeviceRole) (DeviceRecord, error) {
	if role == RoleAll {
		err := fanOut(func(concrete DeviceRole) error {
			_, cycleErr := cy.CycleNext(concrete)
			return cycleErr
		})

		record, currentErr := cy.coordinator.GetCurrent(RoleOutput)
		if err != nil {
			return record, err
		}
		return record, currentErr
	}

	current, err := cy.coordinator.GetCurrent(role)
	if err != nil {
		return DeviceRecord{}, err
	}

	records, err := cy.catalog.ListByRole(role)
	if err != nil {
		return DeviceRecord{}, err
	}

	if len(records) == 0 {
		cy.logger.Warnw("No devices to cycle through", "role", role)
		return DeviceRecord{}, &NoDevicesFoundError{Role: role}
	}

	ids := make([]DeviceID, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}

	index := funk.IndexOf(ids, current.ID)
	next := records[(index+1)%len(records)]

	cy.logger.Debugw("Cycling device", "role", role, "from", current.ID, "to", next.ID)

	return cy.coordinator.SetDefault(next.ID, role)
}
