// Package cache orchestrates the reference-entity cache: warming, lookup
// with upstream fallback, hydration, invalidation, and statistics.
//
// Name lookups never fail. A cache hit returns the stored name; a miss falls
// back to a single-entity upstream fetch (coalesced per key with
// singleflight so concurrent callers share one network call) and degrades to
// a placeholder when the upstream is unreachable, since a missing name must
// not block display of a time record. Hits and misses are counted per
// lookup; evictions and size come from the underlying store.
//
// Writes never go through the cache. Callers that mutate upstream entities
// invalidate the affected kind afterwards so no lookup can serve a name
// stored before the write.
package cache
