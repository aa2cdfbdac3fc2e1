// Package extract turns raw relationship export payloads into canonical lists
// of account identifiers.
//
// Two export producers are seen in the wild and they are not bit-compatible:
//
//   - Legacy: the file is a bare JSON array of records.
//   - Wrapped: the array sits under a "relationships_followers" or
//     "relationships_following" key of a top-level object.
//
// Each record carries a "string_list_data" array whose first element holds the
// account handle in "value". Newer "following" exports leave "value" out and put
// the handle in the record "title" instead.
//
// # Shape Detection
//
// DetectShape is total: it always returns ShapeLegacyArray, ShapeWrapped or
// ShapeUnrecognized. Extraction never panics and never fails on a single bad
// record; records that do not yield a non-empty string are skipped.
//
// # Usage
//
//	payload, err := extract.Parse(data)
//	if err != nil {
//	    return err
//	}
//	usernames, err := extract.Extract(payload, extract.RoleFollowers)
//
// The package is pure: no I/O and no logging.
package extract
