package models

import (
	"strings"
	"time"
)

// Product is a unit of inventory. The ID is immutable after creation; price
// and stock are never negative.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// NewProduct validates and constructs a Product. Invalid values are rejected
// here so they never enter the collection.
func NewProduct(id, name string, price float64, stock int) (*Product, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)

	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price < 0 {
		return nil, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if stock < 0 {
		return nil, &ValidationError{Field: "stock", Reason: "must not be negative"}
	}

	return &Product{ID: id, Name: name, Price: price, Stock: stock}, nil
}

// Transaction is a recorded stock adjustment. Records are append-only and
// never mutated after creation.
type Transaction struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Delta          int       `json:"delta"`
	ResultingStock int       `json:"resulting_stock"`
	UnitPrice      float64   `json:"unit_price"`
	Total          float64   `json:"total"`
}

// IsSale reports whether the transaction removed stock.
func (t Transaction) IsSale() bool {
	return t.Delta < 0
}

// Quantity returns the absolute number of units moved.
func (t Transaction) Quantity() int {
	if t.Delta < 0 {
		return -t.Delta
	}
	return t.Delta
}
