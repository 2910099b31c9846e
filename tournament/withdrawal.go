package tournament

import (
	"math"

	"github.com/halvard/tourneycore/models"
)

// forfeitStandard withdraws a player from a Swiss or round-robin event:
// the player is excluded from future pairing, and any match of theirs
// currently in progress is resolved as a walkover for the opponent.
func (t *Tournament) forfeitStandard(p *models.Player) error {
	p.Active = false
	for _, m := range t.matches {
		if m.ContainsPlayer(p.ID) && m.Active && !m.HasResult {
			t.resolveIfForfeit(m)
		}
	}
	return nil
}

// resolveIfForfeit checks whether one (or both) of a match's occupants
// has withdrawn and, if so, resolves it as a walkover (or a no-result
// bye-for-nobody if both sides are gone) instead of waiting for a
// result that will never be reported.
func (t *Tournament) resolveIfForfeit(m *models.Match) bool {
	p1, ok1 := t.playerIndex[m.PlayerOne]
	p2, ok2 := t.playerIndex[m.PlayerTwo]
	if !ok1 || !ok2 {
		return false
	}
	if p1.Active && p2.Active {
		return false
	}
	if !p1.Active && !p2.Active {
		m.HasResult = true
		m.Active = false
		return true
	}

	games := int(math.Ceil(float64(t.cfg.BestOf) / 2))
	winner, loser := p1, p2
	result := models.MatchResult{PlayerOneWins: games}
	if !p1.Active {
		winner, loser = p2, p1
		result = models.MatchResult{PlayerTwoWins: games}
	}
	winner.AddResult(models.ResultEntry{MatchID: m.ID, Round: m.Round, OpponentID: loser.ID, Outcome: models.OutcomeWin, MatchPoints: t.cfg.PointsForWin, GamePoints: float64(games) * t.cfg.PointsForWin, Games: games})
	loser.AddResult(models.ResultEntry{MatchID: m.ID, Round: m.Round, OpponentID: winner.ID, Outcome: models.OutcomeLoss, Games: games})
	m.Result = result
	m.HasResult = true
	m.Active = false
	return true
}

// withdrawElimination removes a player from a single/double elimination
// bracket (or the playoff stage of a Swiss/round-robin event). If their
// current match is already underway (both slots filled), the opponent
// is awarded a walkover and advances normally. If the opponent's side
// hasn't arrived yet, the match can't be played at all — it is
// collapsed, and the edge that would have fed it is rewired directly to
// its destination, so the still-pending feeder's eventual winner
// advances one round further without ever waiting on a match that can
// no longer happen.
func (t *Tournament) withdrawElimination(p *models.Player) error {
	p.Active = false

	var target *models.Match
	for _, m := range t.matches {
		if m.ContainsPlayer(p.ID) && !m.HasResult && !t.collapsed[m.ID] {
			target = m
			break
		}
	}
	if target == nil {
		return nil
	}

	opponentID := target.OtherSlot(p.ID)
	if target.Active && opponentID != "" {
		games := int(math.Ceil(float64(t.cfg.BestOf) / 2))
		if opp, ok := t.playerIndex[opponentID]; ok {
			opp.AddResult(models.ResultEntry{MatchID: target.ID, Round: target.Round, OpponentID: p.ID, Outcome: models.OutcomeWin, MatchPoints: t.cfg.PointsForWin, GamePoints: float64(games) * t.cfg.PointsForWin, Games: games})
		}
		p.AddResult(models.ResultEntry{MatchID: target.ID, Round: target.Round, OpponentID: opponentID, Outcome: models.OutcomeLoss, Games: games})
		if target.PlayerOne == p.ID {
			target.Result = models.MatchResult{PlayerTwoWins: games}
		} else {
			target.Result = models.MatchResult{PlayerOneWins: games}
		}
		target.HasResult = true
		target.Active = false
		t.advanceWithdrawalWinner(target, opponentID, p.ID)
		return nil
	}

	t.collapseMatch(target)
	return nil
}

// advanceWithdrawalWinner routes a withdrawal-forfeit's winner forward
// exactly as advanceElimWinner routes a normally-reported one, but never
// seats the withdrawing loser in the losers' bracket: that destination
// is collapsed (or auto-advances whoever else already reached it)
// instead, since the withdrawing player will never show up to play it.
func (t *Tournament) advanceWithdrawalWinner(m *models.Match, winnerID, loserID string) {
	switch m.ID {
	case t.resetMatchID:
		if t.resetMatchID != "" {
			t.finish()
			return
		}
	case t.grandFinalID:
		if t.grandFinalID != "" {
			t.resolveGrandFinal(winnerID, loserID)
			return
		}
	}

	if m.WinnersPath != "" {
		t.fillElimSlot(m.WinnersPath, winnerID, m.ID, false)
	}
	if losers, ok := t.matchIndex[m.LosersPath]; ok {
		t.collapseLosersTarget(losers)
	}
	if m.WinnersPath == "" && m.LosersPath == "" && m.ID == t.finalMatchID {
		t.finish()
	}
}

// collapseMatch marks a now-unplayable match dead and, if it still has
// a feeder match in flight, rewires that feeder's path to skip straight
// to the collapsed match's own destination.
func (t *Tournament) collapseMatch(m *models.Match) {
	if t.collapsed[m.ID] {
		return
	}
	t.collapsed[m.ID] = true

	var pending string
	for _, src := range t.incomingTo[m.ID] {
		if s, ok := t.matchIndex[src]; ok && !s.HasResult {
			pending = src
			break
		}
	}
	if pending != "" && m.WinnersPath != "" {
		t.rewirePath(pending, m.ID, m.WinnersPath)
		return
	}
	// No live feeder to bypass through — m will never be played and
	// never had (or will have) an occupant. Its own downstream target
	// loses this edge too.
	if m.WinnersPath != "" {
		if target, ok := t.matchIndex[m.WinnersPath]; ok {
			t.orphanFeed(target, m.ID)
		}
	}
}

// collapseLosersTarget handles the node a withdrawing player's loser
// slot would have fed into. If some other, already-resolved match got
// there first, that occupant advances immediately since nobody else is
// coming; otherwise this is the plain collapse-and-rewire case.
func (t *Tournament) collapseLosersTarget(m *models.Match) {
	if t.collapsed[m.ID] {
		return
	}
	occupant := m.PlayerOne
	if occupant == "" {
		occupant = m.PlayerTwo
	}
	if occupant == "" {
		t.collapseMatch(m)
		return
	}

	t.collapsed[m.ID] = true
	m.Active = false
	if m.WinnersPath != "" {
		t.fillElimSlot(m.WinnersPath, occupant, m.ID, false)
	}
}

// orphanFeed handles a target match one of whose incoming edges just
// turned out dead (a bye with no loser to send, or an upstream match
// that collapsed with no occupant and nothing to rewire). If the
// target's other edge is still live, the dead one is simply dropped
// from its incoming set and the target is flagged singleFeed so
// fillElimSlot resolves it the moment its one remaining occupant
// arrives, instead of waiting on a second slot that can now never
// fill. If every edge into the target has turned out dead, it's
// collapsed exactly as a withdrawal-orphaned target would be.
func (t *Tournament) orphanFeed(target *models.Match, deadSourceID string) {
	if t.collapsed[target.ID] {
		return
	}
	remaining := make([]string, 0, len(t.incomingTo[target.ID]))
	for _, src := range t.incomingTo[target.ID] {
		if src != deadSourceID {
			remaining = append(remaining, src)
		}
	}
	t.incomingTo[target.ID] = remaining

	for _, src := range remaining {
		if s, ok := t.matchIndex[src]; ok && !s.HasResult {
			t.singleFeed[target.ID] = true
			return
		}
	}
	t.collapseLosersTarget(target)
}

// rewirePath edits the source match's outgoing edge (whichever of
// WinnersPath/LosersPath points at oldTarget) to point at newTarget
// instead. Routing is a field edit, not a re-parenting of any node.
func (t *Tournament) rewirePath(sourceID, oldTarget, newTarget string) {
	source, ok := t.matchIndex[sourceID]
	if !ok {
		return
	}
	if source.WinnersPath == oldTarget {
		source.WinnersPath = newTarget
	}
	if source.LosersPath == oldTarget {
		source.LosersPath = newTarget
	}
	t.incomingTo[newTarget] = append(t.incomingTo[newTarget], sourceID)
}
