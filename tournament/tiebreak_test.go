package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvard/tourneycore/models"
)

func threePlayerRoundRobinResults() map[string]*models.Player {
	a := models.NewPlayer("a", "A", 1)
	b := models.NewPlayer("b", "B", 2)
	c := models.NewPlayer("c", "C", 3)

	a.AddResult(models.ResultEntry{MatchID: "ab", OpponentID: "b", Outcome: models.OutcomeWin, MatchPoints: 1, Games: 2, GamePoints: 2})
	b.AddResult(models.ResultEntry{MatchID: "ab", OpponentID: "a", Outcome: models.OutcomeLoss, Games: 2})

	a.AddResult(models.ResultEntry{MatchID: "ac", OpponentID: "c", Outcome: models.OutcomeWin, MatchPoints: 1, Games: 2, GamePoints: 2})
	c.AddResult(models.ResultEntry{MatchID: "ac", OpponentID: "a", Outcome: models.OutcomeLoss, Games: 2})

	b.AddResult(models.ResultEntry{MatchID: "bc", OpponentID: "c", Outcome: models.OutcomeWin, MatchPoints: 1, Games: 2, GamePoints: 2})
	c.AddResult(models.ResultEntry{MatchID: "bc", OpponentID: "b", Outcome: models.OutcomeLoss, Games: 2})

	return map[string]*models.Player{"a": a, "b": b, "c": c}
}

func TestComputeTiebreakersMatchWinPercent(t *testing.T) {
	all := threePlayerRoundRobinResults()
	computeTiebreakers(all, 1)

	assert.InDelta(t, 1.0, all["a"].Tiebreakers.MatchWinPercent, 1e-9)
	assert.InDelta(t, 1.0/3.0, all["c"].Tiebreakers.MatchWinPercent, 1e-9)
}

func TestComputeTiebreakersFloorsAtOneThird(t *testing.T) {
	all := map[string]*models.Player{"a": models.NewPlayer("a", "A", 1)}
	computeTiebreakers(all, 1)

	assert.Equal(t, percentFloor, all["a"].Tiebreakers.MatchWinPercent)
	assert.Equal(t, percentFloor, all["a"].Tiebreakers.OpponentMatchWinPercent)
}

func TestSortStandingsOrdersByMatchPointsThenTiebreakers(t *testing.T) {
	all := threePlayerRoundRobinResults()
	computeTiebreakers(all, 1)

	players := []*models.Player{all["c"], all["a"], all["b"]}
	ranked := sortStandings(players, DefaultTiebreakers())

	assert.Equal(t, "a", ranked[0].ID, "a won both matches and should rank first")
	assert.Equal(t, "c", ranked[2].ID, "c lost both matches and should rank last")
}

func TestResolveTiedCohortsBreaksExactTieByVersus(t *testing.T) {
	a := models.NewPlayer("a", "A", 1)
	b := models.NewPlayer("b", "B", 2)
	a.AddResult(models.ResultEntry{MatchID: "m1", OpponentID: "b", Outcome: models.OutcomeWin, MatchPoints: 1})
	b.AddResult(models.ResultEntry{MatchID: "m1", OpponentID: "a", Outcome: models.OutcomeLoss})

	// Force an otherwise exact tie on every configured tiebreaker.
	a.Tiebreakers = models.Stats{}
	b.Tiebreakers = models.Stats{}
	a.MatchPoints, b.MatchPoints = 1, 1

	players := []*models.Player{b, a}
	resolveTiedCohorts(players, nil)

	assert.Equal(t, "a", players[0].ID, "a beat b head-to-head and should come out on top of the tie")
}
