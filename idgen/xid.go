// Package idgen provides the default models.IDSupplier used when a
// tournament isn't given one explicitly: opaque ids minted from
// github.com/rs/xid.
package idgen

import (
	"strings"

	"github.com/rs/xid"

	"github.com/halvard/tourneycore/models"
)

// Supplier mints xid-based ids. Next keeps the last Length characters
// of the xid's 20-character encoding, the end that carries xid's
// per-call counter, so successive calls from one process differ; a
// Length of 0 or >=20 yields the full encoding. Padded additionally
// zero-pads ids shorter than Length.
type Supplier struct {
	Length int
}

var _ models.IDSupplier = (*Supplier)(nil)

// New returns a Supplier producing ids of the given length.
func New(length int) *Supplier {
	return &Supplier{Length: length}
}

// Next mints one opaque alphanumeric id.
func (s *Supplier) Next() string {
	raw := xid.New().String()
	if s.Length <= 0 || s.Length >= len(raw) {
		return raw
	}
	return raw[len(raw)-s.Length:]
}

// Padded is a helper for callers that want a fixed-width id regardless
// of Length, padding short ids with trailing zeroes.
func (s *Supplier) Padded() string {
	id := s.Next()
	if s.Length <= len(id) {
		return id
	}
	return id + strings.Repeat("0", s.Length-len(id))
}
