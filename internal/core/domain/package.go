package domain

import "github.com/govalues/decimal"

// Package is read-only reference data from the curriculum catalog.
type Package struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Purchasable bool
}
