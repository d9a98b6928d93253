// Package types defines the core item, stack and error types shared by the
// block bag packages.
//
// A bag is a fixed-length sequence of optional stacks. An empty slot is a
// nil *Stack; a stored quantity is either Unlimited or lies in
// [1, Limits.MaxStack]. Zero is never stored.
//
// Design goals:
//   - Small, copyable values (ItemDescriptor, Stack) instead of object graphs.
//   - Typed errors with stable categories (invalid/out-of-stock/out-of-space/source).
//   - No knowledge of geometry, players or the host environment.
//
// This package has no dependencies beyond the standard library.
package types
