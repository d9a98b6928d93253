package alloc

import "github.com/joshuapare/blockbag/pkg/types"

var (
	// ErrInvalidRequest indicates a caller defect (air, bad amount).
	ErrInvalidRequest = types.ErrInvalidRequest

	// ErrOutOfStock indicates no slot holds the requested item.
	ErrOutOfStock = types.ErrOutOfStock

	// ErrOutOfSpace matches every OutOfSpace(kind) error via errors.Is.
	ErrOutOfSpace = types.ErrOutOfSpace
)

var (
	errFetchAir = types.InvalidRequest("alloc: can't fetch air block")
	errStoreAir = types.InvalidRequest("alloc: can't store air block")
)
