// Package snapshot implements the file-based persistence for the inventory.
//
// The whole collection is serialized as one JSON document keyed by product id.
// Saves are atomic (write to temp file, fsync, rename), so the snapshot on
// disk is always either the previous or the new state, never a partial write.
//
// A missing snapshot is a valid empty inventory; a snapshot that exists but
// does not parse surfaces as a CorruptStateError so the caller can choose
// between starting empty and aborting.
package snapshot
