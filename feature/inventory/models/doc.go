// Package models defines the inventory domain entities and error taxonomy.
//
// Products are validated on construction via NewProduct, so a Product held by
// the service always satisfies the invariants (non-empty id and name, price
// and stock never negative). Transactions are immutable records of stock
// adjustments.
package models
