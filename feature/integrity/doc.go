// Package integrity reports whether the configured catalog backends are usable.
//
// The ledger itself is in memory and has nothing to check; the catalog, however,
// depends on an external database or bucket. This package probes them so an
// operator can tell why names fall back to raw identifiers.
//
// # Checks Provided
//
//   - Database: pings the catalog database and, for the database source, verifies
//     the catalog table exposes the configured identifier and name columns.
//   - Storage: verifies the catalog bucket exists and, for the storage source, that
//     the catalog object is readable.
//
// Backends that are not configured report "disabled".
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks. Responds 503 when any check fails.
package integrity
