// Package server holds the HTTP server configuration.
//
// The start command owns the server lifecycle; this package only defines the
// listen port, the upload body limit, and whether API documentation is served.
package server
