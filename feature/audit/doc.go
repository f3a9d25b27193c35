// Package audit implements the stock auditor bounded context.
//
// The auditor is an independent, read-only consumer of the persisted product
// table. It shares no in-memory state with the inventory manager; the two
// contexts coordinate exclusively through the table schema (table
// "productos", columns nombre and stock), and the auditor verifies that
// contract before querying so schema drift fails loudly instead of silently
// producing empty reports.
//
// # Reports
//
// A report selects every product with stock at or below the threshold,
// ordered by id for reproducibility, and renders a fixed header, a timestamp,
// the threshold used, and one line per matching product (or an explicit
// no-matches line). Reports are appended to a durable log file; prior log
// content is never rewritten.
//
// The threshold defaults to 5. Non-numeric threshold input falls back to the
// default rather than aborting: the auditor is a one-shot batch tool and
// should always produce a report when the table is reachable.
//
// # HTTP Endpoints
//
//   - GET /audit/report : generate a report on demand (?threshold=).
package audit
