// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application itself; this package only defines
// the listen address and the API key protecting the ledger endpoints.
package server
