// Package alloc decides which inventory slot satisfies a withdrawal and which
// slots absorb a deposit.
//
// # Overview
//
// A Bag operates purely over a slots.Store. It has no knowledge of geometry,
// players or the host environment: the store is loaded lazily on the first
// Fetch or Store and written back only by Flush.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface, which supports:
//
//   - Fetch(desc): Withdraw exactly one unit of a matching stack
//   - Store(desc, n): Deposit n units (1 <= n <= MaxStack)
//   - FetchItem(req) / StoreItem(req): The same, driven by a generic request
//   - Flush(): Write the working slots back to the container
//
// # Fetch
//
// Slots are scanned in index order and the first matching stack wins. An
// unlimited stack satisfies the fetch without being decremented; a stack of
// one is cleared; otherwise the quantity drops by one. No match yields
// ErrOutOfStock.
//
// # Store
//
// Store merges into existing compatible stacks before touching a free slot,
// since free slots are scarcer than headroom in partial stacks:
//
//	slots:   [wool:14 x60] [empty] [wool:14 x62] [empty]
//	store:   wool:14 x10
//	result:  [wool:14 x64] [wool:14 x4] [wool:14 x64] [empty]
//
// Only the first empty slot seen is remembered, and at most one fresh stack
// is created per call. When the remainder does not fit, the call fails with
// an OutOfSpace error for the item kind. Merges already made are kept; there
// is no rollback.
//
// StoreItem accepts amounts above MaxStack and deposits them one MaxStack
// chunk at a time, so a request for 70 blocks lands as 64 + 6.
//
// # Errors
//
//   - ErrInvalidRequest: air (the void kind) or an out-of-range amount. A
//     caller defect; do not retry.
//   - ErrOutOfStock: recoverable, the material ran out.
//   - OutOfSpace(kind): recoverable, errors.Is(err, ErrOutOfSpace) holds.
//
// # Thread Safety
//
// Bag instances are not thread-safe. One editing session owns a bag and
// serializes every call.
//
// # Related Packages
//
//   - github.com/joshuapare/blockbag/bag/slots: Lazily-loaded slot snapshot
//   - github.com/joshuapare/blockbag/bag/tx: Batch boundaries around Flush
//   - github.com/joshuapare/blockbag/pkg/itemtype: Variant significance lookup
package alloc
