// Package resultcache persists the last reconciliation result.
//
// The cache is a key/value store with a single well-known slot
// (LastResultKey). It is owned by the callers of the core packages: the
// relationships service writes it after a comparison and the HTTP and CLI
// surfaces read it back. Each Save overwrites the slot wholesale.
//
// Results are stored as JSON arrays of account identifiers, one column per
// direction, in the result_cache table.
package resultcache
