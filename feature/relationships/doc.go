// Package relationships implements the follow-back comparison feature.
//
// It ties together the pure core packages:
//  1. extract: turns the followers and following exports into canonical lists.
//  2. reconcile: computes who does not follow back (and optionally the converse).
//  3. classify: optional best-effort post-processing of the result.
//  4. resultcache: stores the result in the single "last_result" slot.
//
// # Inputs
//
// Exports arrive as multipart uploads (HTTP), local files (CLI) or objects in
// the storage bucket. The two reads of a pair run concurrently.
//
// # Components
//
//   - Service: Orchestrates extraction, reconciliation, caching, publishing.
//   - Handler: Exposes HTTP endpoints.
//   - Feature: Registers the feature with the loader.
//
// # HTTP Endpoints
//
//   - POST   /relationships/compare : multipart "followers" and "following" files, form "both".
//   - GET    /relationships/last : cached result, supports ?q= and ?sort=asc|desc|none.
//   - GET    /relationships/last/export : cached result as a text download (?direction=).
//   - POST   /relationships/last/publish : uploads the text export to the bucket (?direction=).
//   - DELETE /relationships/last : empties the cache slot.
package relationships
