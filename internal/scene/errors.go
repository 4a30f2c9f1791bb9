package scene

import "errors"

var (
	// ErrUnknownType is returned when a spawn names an unsupported primitive type.
	ErrUnknownType = errors.New("scene: unknown primitive type")
	// ErrNegativeSize is returned when an explicit size has a negative component.
	ErrNegativeSize = errors.New("scene: negative primitive size")
	// ErrContainerAttached signals a physics container that another entity already owns.
	ErrContainerAttached = errors.New("scene: physics container already attached to an entity")
	// ErrEntityNotFound indicates a lookup or removal of an unknown entity id.
	ErrEntityNotFound = errors.New("scene: entity not found")
)
