// Package utils holds small conversion helpers for loosely typed request
// input such as form fields and query parameters.
package utils
