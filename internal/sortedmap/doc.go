// Package sortedmap implements a single-process, in-memory key–value map
// that keeps two orders over the same entries.
//
// Goals for this package:
//   - Make the core data structures explicit (fixed bucket array + sorted doubly-linked list)
//   - Provide O(1) average Get via separate-chaining buckets hashed with djb2
//   - Enumerate entries in ascending or descending key order without re-sorting
//   - Keep both orders consistent under insertion and in-place update
//   - Offer a concurrency-safe wrapper (RWMutex) for callers that share a map
package sortedmap
