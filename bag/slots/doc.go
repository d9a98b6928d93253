// Package slots provides the lazily-loaded working copy of a container's
// slots.
//
// # Overview
//
// A Store holds an owned snapshot of an external container (typically a
// player's inventory). The snapshot is pulled from the Source on first use
// and mutated in place by the allocator. Nothing is written back until
// Flush, which is the only operation with an externally observable effect.
//
// # Lifecycle
//
//	store := slots.NewStore(src)
//	store.EnsureLoaded()   // first call copies src.Contents()
//	store.Set(3, stack)    // in-memory only
//	store.Flush()          // writes slots[0:min(len, src.Capacity())], then unloads
//
// After a flush the store is empty again and the next EnsureLoaded picks up
// whatever the container holds at that time, so stale snapshots never
// survive a flush boundary.
//
// # Dirty Tracking
//
// The store records which slot indices were modified since the load and
// exposes them through DirtyReporter, so batch managers can report how many
// slots a batch changed. Flush still writes every slot unconditionally,
// last-writer-wins, because the container may have been changed by other
// actors in the meantime.
//
// # Thread Safety
//
// Store instances are not thread-safe. A store belongs to one editing
// session and the caller serializes every call.
package slots
