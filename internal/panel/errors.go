package panel

import "errors"

var (
	// ErrResourceUnavailable marks a required resource that is missing or
	// could not be claimed. Fatal to a bind.
	ErrResourceUnavailable = errors.New("panel: resource unavailable")

	// ErrDeferred marks a dependency that is named by the device but has
	// not appeared yet. The caller should retry the bind later.
	ErrDeferred = errors.New("panel: dependency not yet available")

	// ErrNotDescribed is returned by resource lookups when the device
	// simply does not name the optional resource. Not a failure.
	ErrNotDescribed = errors.New("panel: resource not described")
)
