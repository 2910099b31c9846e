package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvard/tourneycore/models"
)

func TestMatchFillSlotActivatesOnSecondFill(t *testing.T) {
	m := &models.Match{ID: "m1", Round: 1, MatchNumber: 1}

	assert.True(t, m.FillSlot("p1"))
	assert.False(t, m.Active)
	assert.True(t, m.IsBye())

	assert.True(t, m.FillSlot("p2"))
	assert.True(t, m.Active)
	assert.False(t, m.IsBye())
	assert.False(t, m.FillSlot("p3"), "a third fill has no slot left")
}

func TestMatchClearSlotDeactivates(t *testing.T) {
	m := &models.Match{ID: "m1", PlayerOne: "p1", PlayerTwo: "p2", Active: true}
	m.ClearSlot("p1")

	assert.False(t, m.Active)
	assert.Equal(t, "", m.PlayerOne)
	assert.Equal(t, "p2", m.PlayerTwo)
}

func TestMatchOtherSlot(t *testing.T) {
	m := &models.Match{PlayerOne: "p1", PlayerTwo: "p2"}
	assert.Equal(t, "p2", m.OtherSlot("p1"))
	assert.Equal(t, "p1", m.OtherSlot("p2"))
	assert.Equal(t, "", m.OtherSlot("p3"))
}

func TestMatchIsGrandFinal(t *testing.T) {
	gf := &models.Match{ID: "gf"}
	notGf := &models.Match{ID: "r1", WinnersPath: "r2"}

	assert.True(t, gf.IsGrandFinal())
	assert.False(t, notGf.IsGrandFinal())
}

func TestMatchContainsPlayer(t *testing.T) {
	m := &models.Match{PlayerOne: "p1", PlayerTwo: "p2"}
	assert.True(t, m.ContainsPlayer("p1"))
	assert.False(t, m.ContainsPlayer("p3"))
	assert.False(t, m.ContainsPlayer(""))
}
