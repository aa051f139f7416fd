// Package ledger exposes the reconciliation engine to its users.
//
// It is the display adapter around core/reconcile: it validates scanned
// identifiers, resolves names through the optional catalog, applies each valid
// identifier to the processor and renders both ledgers back.
//
// # Components
//
//   - Service: batches, validation and catalog lookups around one Processor.
//   - Handler: HTTP endpoints for recording, clearing and reading the ledgers.
//   - Console: an interactive terminal session with the same operations.
//   - Feature: registers the handler with the application loader.
//
// # HTTP Endpoints
//
//   - GET /ledger : Both ledgers.
//   - GET /ledger/:flow : One ledger (received or shipped).
//   - POST /ledger/:flow : Record a batch of identifiers, body {"input": "id1 id2"}.
//   - DELETE /ledger : Clear both ledgers (names are kept).
//   - GET /directory/:identifier : Directory entry for an identifier.
package ledger
