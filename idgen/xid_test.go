package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvard/tourneycore/idgen"
)

func TestSupplierNextIsUnique(t *testing.T) {
	s := idgen.New(12)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.Next()
		assert.Len(t, id, 12)
		assert.False(t, seen[id], "xid should not repeat across calls in a tight loop")
		seen[id] = true
	}
}

func TestSupplierNextNativeLength(t *testing.T) {
	s := idgen.New(0)
	assert.Len(t, s.Next(), 20)
}

func TestSupplierPadded(t *testing.T) {
	s := idgen.New(25)
	id := s.Padded()
	assert.Len(t, id, 25)
}
