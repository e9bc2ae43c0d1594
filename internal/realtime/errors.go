package realtime

import "errors"

var (
	// ErrUnknownCollection is returned when subscribing to a collection the hub does not serve
	ErrUnknownCollection = errors.New("realtime: unknown collection")

	// ErrHubClosed is returned by operations on a closed hub
	ErrHubClosed = errors.New("realtime: hub closed")

	// ErrReload is returned when a collection could not be loaded
	ErrReload = errors.New("realtime: failed to reload collection")
)
