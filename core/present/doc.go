// Package present holds the view operations applied to a reconciliation
// result before it is shown, copied, or downloaded.
//
// Operations never mutate the input slice.
//
//   - Filter: case-insensitive substring search.
//   - Sort: locale-aware ascending or descending order, or export order.
//   - ExportText: newline-joined text used for clipboard copy and downloads.
package present
