// Package catalog is the in-memory layer of the partshelf inventory: the
// lazily loaded category tree, the per-category header overlay, part and
// document operations, and the Factory facade that coordinates them over
// one catalog store.
//
// Caches in this package are invalidated only by explicit Reload calls,
// never implicitly by mutation elsewhere. A single logical thread of
// control is assumed for all mutation; the only internal concurrency is
// the debounced column-width save.
package catalog
