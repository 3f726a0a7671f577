// Package store implements the bounded in-memory entity store backing the
// reference-data cache.
//
// Entries are keyed by entity kind and upstream ID, expire after a fixed TTL,
// and share a single LRU list across all kinds so the total entry count never
// exceeds the configured maximum. An expired entry behaves exactly like an
// absent one; it is removed lazily when touched. The store never returns
// errors: absence is an ordinary (zero, false) outcome.
package store
