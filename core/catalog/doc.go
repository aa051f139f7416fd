// Package catalog resolves display names for identifiers the Directory has not seen yet.
//
// A catalog is an optional, read-only Source of identifier -> name pairs. When an
// identifier is recorded for the first time, the ledger service asks the catalog
// for a name before the reconciliation engine falls back to the identifier itself.
// The catalog never stores ledger state.
//
// # Sources
//
//   - database: a table in the catalog database (MySQL or SQLite via GORM), matched
//     case-insensitively on the configured identifier column.
//   - storage: a JSON array of {"id", "name"} objects kept in an S3/MinIO bucket. The
//     parsed index is cached with a TTL and rebuilt under singleflight, so concurrent
//     misses trigger a single download.
//
// # Resolver
//
// Resolver wraps a Source for the ledger: it collapses concurrent lookups of the same
// identifier and turns source errors into a logged miss, since recording an event
// must never fail because the catalog is unreachable.
//
// # Usage
//
//	src, err := catalog.New(cfg.Catalog, db, client, cfg.Storage.Bucket)
//	resolver := catalog.NewResolver(src, logger)
//	name, ok := resolver.Resolve(ctx, "5f1c0a9b2e4d7f8a1b3c6d90")
package catalog
