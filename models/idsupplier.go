package models

// IDSupplier yields opaque alphanumeric strings. Implementations need
// not guarantee uniqueness across calls; callers regenerate on
// collision.
type IDSupplier interface {
	Next() string
}
