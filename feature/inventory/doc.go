// Package inventory implements the inventory manager bounded context.
//
// The Service owns the in-memory product collection for its process lifetime.
// State is loaded once from the JSON snapshot at startup, mutated in memory
// with validation, and written back as an atomic snapshot after every
// successful mutation. Each stock adjustment produces an immutable
// transaction record and, for sales, a receipt file.
//
// # Operations
//
//   - AddProduct: validated insert; duplicate ids, empty names and negative
//     numbers are rejected before any state changes.
//   - AdjustStock / Sell: stock delta with insufficient-stock protection;
//     sales are rejected rather than clamped.
//   - Products: lazy, restartable iteration in deterministic order.
//   - GenerateReceipt: pure rendering of a transaction record.
//
// # Persistence
//
// The snapshot subpackage is the only writer of the inventory file. When a
// database connection is configured, every save also mirrors the collection
// into the product table the independent Stock Auditor reads; the auditor is
// eventually consistent with whatever was last saved.
//
// # HTTP Endpoints
//
//   - GET  /products          : list the collection.
//   - GET  /products/alerts   : low-stock products (?threshold=, default 5).
//   - POST /products          : add a product.
//   - POST /sales             : register a sale and emit a receipt.
package inventory
