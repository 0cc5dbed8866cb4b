// Package store persists blacklist snapshots so the stopword sources need
// not be re-read on every run.
//
// Backends live in subpackages: file (a gob snapshot guarded by a lock
// file), sqlite, bbolt and memstore (in-memory, for tests). All of them
// satisfy Cache; LoadOrBuild implements load-if-present else build-and-save
// on top of any of them. A snapshot loaded from a cache and a blacklist
// built from sources are interchangeable.
package store
