package alloc

import "github.com/joshuapare/blockbag/pkg/types"

// PositionHooks receives the world positions material was taken from.
// Bags backed by a plain inventory do not track provenance; richer stores
// (e.g., chests in the world) can supply their own implementation.
type PositionHooks interface {
	// AddSourcePosition registers a position whose surroundings may supply material.
	AddSourcePosition(pos types.Position)

	// AddSingleSourcePosition registers exactly one position as a source.
	AddSingleSourcePosition(pos types.Position)
}

// NopHooks ignores every position.
type NopHooks struct{}

func (NopHooks) AddSourcePosition(types.Position) {}
func (NopHooks) AddSingleSourcePosition(types.Position) {}
