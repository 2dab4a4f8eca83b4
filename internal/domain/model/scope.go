package model

// Scope restricts which orders and invoices a query may return.
// The zero value is the most restrictive scope: owned by nobody.
type Scope struct {
	OwnerID string
	All     bool
}
