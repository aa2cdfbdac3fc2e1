// Package integrity provides health checks for the infrastructure the
// relationships feature depends on.
//
// # Checks Provided
//
//   - Structure: Checks that the exports and results folders exist in the storage bucket.
//   - Cache: Validates that the result cache table matches the resultcache model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/cache : Runs cache schema check.
package integrity
