// Package types defines the entity types of the partshelf catalog: the
// category tree nodes, the per-category header overlay, the inventory part
// record with its fixed physical field set, attached documents, and the
// sentinel errors shared across the data layer.
package types
