// Package itemtype is the item registry used to resolve item names and to
// decide whether an item's variant (data value) participates in stack
// matching.
//
// Wool of different colours never stacks together, so wool uses its variant;
// a damaged pickaxe still counts as a pickaxe, so tools do not. Registry
// implements types.VariantLookup and can be passed straight to the allocator:
//
//	reg := itemtype.Default()
//	bag := alloc.New(store, alloc.Options{Lookup: reg})
//
// Names are matched case-insensitively (Unicode case folding), and spaces or
// hyphens are treated as underscores, so "Stone Brick", "stone-brick" and
// "STONE_BRICK" all resolve to the same kind.
package itemtype
