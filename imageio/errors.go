package imageio

import "errors"

// Sentinel errors for image I/O.
var (
	// ErrResourceUnavailable indicates a file that cannot be opened or created.
	ErrResourceUnavailable = errors.New("imageio: resource unavailable")
	// ErrFormat indicates an image header or body that cannot be parsed.
	ErrFormat = errors.New("imageio: unrecognized image format")
)
