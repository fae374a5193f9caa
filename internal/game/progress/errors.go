package progress

import "errors"

var (
	// ErrUnknownEntity marks a reference to a job, shop, item, skill, or
	// location that is not in the catalog. This is a data error, not a
	// player-facing gate failure.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrNotOffered marks a shop or item that exists in the catalog but is
	// not available at the player's current location.
	ErrNotOffered = errors.New("not offered here")
)
