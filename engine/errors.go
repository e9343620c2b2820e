package engine

import "errors"

var (
	// ErrSpawnBlocked is returned by Spawn when the new piece overlaps the
	// field at its spawn position. A session treats it as game over.
	ErrSpawnBlocked = errors.New("spawn blocked")

	ErrInvalidField  = errors.New("invalid field")
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownOp     = errors.New("unknown op")
	ErrUnknownKind   = errors.New("unknown kind")
)
