package loader

import "errors"

var (
	// ErrNameNotFound indicates a resolve for a name with no registration and no cached loader.
	ErrNameNotFound = errors.New("loader: name not found")
	// ErrNameCollision indicates a Register call for a name that is already registered.
	ErrNameCollision = errors.New("loader: name collision")
	// ErrInvalidImplementation indicates a constructor that does not produce a Loader.
	ErrInvalidImplementation = errors.New("loader: invalid implementation")
)
