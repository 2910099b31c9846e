package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvard/tourneycore/models"
)

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 9: 16, 16: 16, 17: 32}
	for n, want := range cases {
		assert.Equal(t, want, nextPowerOfTwo(n), "n=%d", n)
	}
}

func TestLog2Ceil(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4}
	for n, want := range cases {
		assert.Equal(t, want, log2Ceil(n), "n=%d", n)
	}
}

func TestSeedOrderSizeFour(t *testing.T) {
	order := seedOrder(4)
	assert.Equal(t, []int{1, 4, 2, 3}, order)
}

func TestSeedOrderSizeEight(t *testing.T) {
	order := seedOrder(8)
	assert.Equal(t, []int{1, 8, 4, 5, 2, 7, 3, 6}, order)
}

func TestSeedOrderHighestSeedsMeetLatest(t *testing.T) {
	order := seedOrder(8)
	pos := make(map[int]int, len(order))
	for i, seed := range order {
		pos[seed] = i
	}
	// Seed 1 and seed 2 should be on opposite halves of the bracket,
	// so they can only meet in the final.
	half := len(order) / 2
	assert.True(t, (pos[1] < half) != (pos[2] < half))
}

func TestPairWithMinimalRematchesAvoidsRepeat(t *testing.T) {
	a := models.NewPlayer("a", "A", 1)
	b := models.NewPlayer("b", "B", 2)
	c := models.NewPlayer("c", "C", 3)
	d := models.NewPlayer("d", "D", 4)

	a.AddResult(models.ResultEntry{MatchID: "m0", OpponentID: "b", Outcome: models.OutcomeWin, MatchPoints: 1})
	b.AddResult(models.ResultEntry{MatchID: "m0", OpponentID: "a", Outcome: models.OutcomeLoss})

	pairs := pairWithMinimalRematches([]*models.Player{a, b, c, d})
	assert.Len(t, pairs, 2)
	for _, pair := range pairs {
		if pair[0].ID == "a" {
			assert.NotEqual(t, "b", pair[1].ID, "a and b already met and should not be rematched while alternatives exist")
		}
	}
}
