//go:build !darwin

package audioctl

// The hardware abstraction layer addressed here only exists on darwin.
// Elsewhere the accessor reports every property as unavailable so the
// package still builds for tests and tooling.

type unsupportedAccessor struct{}

// NewAccessor returns the platform property accessor.
func NewAccessor() PropertyAccessor {
	return &unsupportedAccessor{}
}

const statusUnsupportedPlatform Status = -1

func (a *unsupportedAccessor) GetProperty(ObjectID, PropertyAddress) ([]byte, Status) {
	return nil, statusUnsupportedPlatform
}

func (a *unsupportedAccessor) SetProperty(ObjectID, PropertyAddress, []byte) Status {
	return statusUnsupportedPlatform
}
