package tournament

import (
	"math"

	"github.com/halvard/tourneycore/models"
)

func isElimination(f models.Format) bool {
	return f == models.SingleElimination || f == models.DoubleElimination
}

func outcomeFromResult(result models.MatchResult, pointsForWin, pointsForDraw float64) (o1, o2 models.Outcome, mp1, mp2 float64) {
	switch {
	case result.PlayerOneWins > result.PlayerTwoWins:
		return models.OutcomeWin, models.OutcomeLoss, pointsForWin, 0
	case result.PlayerTwoWins > result.PlayerOneWins:
		return models.OutcomeLoss, models.OutcomeWin, 0, pointsForWin
	default:
		return models.OutcomeDraw, models.OutcomeDraw, pointsForDraw, pointsForDraw
	}
}

func gamePoints(wins, draws int, pointsForWin float64) float64 {
	return float64(wins)*pointsForWin + float64(draws)*0.5*pointsForWin
}

// ReportResult records a match outcome and, for elimination formats,
// advances the winner (and, in double elimination, the loser) along
// the routing graph built at bracket construction time. Reporting on a
// match that already carries a result erases the prior one first, then
// applies the new one. A Playoffs tournament forwards to its appended
// elimination stage.
func (t *Tournament) ReportResult(matchID string, result models.MatchResult) error {
	if t.status == models.Playoffs && t.playoffStage != nil {
		if err := t.playoffStage.ReportResult(matchID, result); err != nil {
			return err
		}
		if t.playoffStage.status == models.Finished {
			t.finish()
		}
		return nil
	}

	m, ok := t.matchIndex[matchID]
	if !ok {
		return &IdentityError{Kind: "match", ID: matchID}
	}
	if !m.HasResult && !m.Active {
		return &ResultError{MatchID: matchID, Message: "match is not active"}
	}
	if result.PlayerOneWins == result.PlayerTwoWins && isElimination(t.cfg.Format) {
		return &ResultError{MatchID: matchID, Message: "an elimination match cannot end in a draw"}
	}
	if m.HasResult {
		// Re-reporting an already-decided match erases the prior result
		// first, then falls through to apply the new one. Everything
		// above this line validates the new result; nothing has mutated
		// the match yet.
		if err := t.eraseResult(m); err != nil {
			return err
		}
	}

	p1, p1ok := t.playerIndex[m.PlayerOne]
	p2, p2ok := t.playerIndex[m.PlayerTwo]
	if !p1ok || !p2ok {
		return &RoutingError{MatchID: matchID, Message: "match slot does not reference a registered player"}
	}

	o1, o2, mp1, mp2 := outcomeFromResult(result, t.cfg.PointsForWin, t.cfg.PointsForDraw)
	totalGames := result.PlayerOneWins + result.PlayerTwoWins + result.Draws
	gp1 := gamePoints(result.PlayerOneWins, result.Draws, t.cfg.PointsForWin)
	gp2 := gamePoints(result.PlayerTwoWins, result.Draws, t.cfg.PointsForWin)

	p1.AddResult(models.ResultEntry{MatchID: m.ID, Round: m.Round, OpponentID: p2.ID, Outcome: o1, MatchPoints: mp1, GamePoints: gp1, Games: totalGames})
	p2.AddResult(models.ResultEntry{MatchID: m.ID, Round: m.Round, OpponentID: p1.ID, Outcome: o2, MatchPoints: mp2, GamePoints: gp2, Games: totalGames})

	m.Result = result
	m.HasResult = true
	m.Active = false

	if isElimination(t.cfg.Format) {
		winnerID, loserID := p1.ID, p2.ID
		if o2 == models.OutcomeWin {
			winnerID, loserID = p2.ID, p1.ID
		}
		t.advanceElimWinner(m, winnerID, loserID)
	}

	return nil
}

// materializeBye awards a walkover to the sole occupant of a bye match
// and, for elimination formats, advances them along the routing graph
// exactly as a reported win would.
func (t *Tournament) materializeBye(m *models.Match) {
	winnerID := m.PlayerOne
	if winnerID == "" {
		winnerID = m.PlayerTwo
	}
	games := int(math.Ceil(float64(t.cfg.BestOf) / 2))
	if p, ok := t.playerIndex[winnerID]; ok {
		p.AddResult(models.ResultEntry{
			MatchID: m.ID, Round: m.Round, OpponentID: "",
			Outcome: models.OutcomeBye, MatchPoints: t.cfg.PointsForWin,
			GamePoints: float64(games) * t.cfg.PointsForWin, Games: games,
		})
	}

	m.HasResult = true
	m.Active = false

	if isElimination(t.cfg.Format) {
		t.advanceElimWinner(m, winnerID, "")
	}
}

// advanceElimWinner routes a match's winner (and loser, in double
// elimination) to their next matches, and resolves grand-final/reset
// completion once both bracket halves have converged.
func (t *Tournament) advanceElimWinner(m *models.Match, winnerID, loserID string) {
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
	if m.LosersPath != "" {
		if loserID == "" {
			// A bye has no loser to send down the losers' path: that
			// edge will never deliver an occupant.
			if losers, ok := t.matchIndex[m.LosersPath]; ok {
				t.orphanFeed(losers, m.ID)
			}
		} else {
			t.fillElimSlot(m.LosersPath, loserID, m.ID, true)
		}
	}
	if m.WinnersPath == "" && m.LosersPath == "" && m.ID == t.finalMatchID {
		t.finish()
	}
}

func (t *Tournament) resolveGrandFinal(winnerID, loserID string) {
	if winnerID == t.gfWinnersPlayer {
		t.finish()
		return
	}
	if reset, ok := t.matchIndex[t.resetMatchID]; ok {
		reset.PlayerOne = winnerID
		reset.PlayerTwo = loserID
		reset.Active = true
	}
}

// fillElimSlot places playerID into targetID's next free slot. When the
// target is the grand final, sourceID and viaLosersPath disambiguate
// which bracket half the arriving player represents: the winners'
// bracket champion always arrives via the winners' final's WinnersPath;
// everyone else (the losers' final's winner, or — in a two-entrant
// bracket with no losers' bracket at all — the sole match's loser) is
// the losers'-bracket representative.
func (t *Tournament) fillElimSlot(targetID, playerID, sourceID string, viaLosersPath bool) {
	target, ok := t.matchIndex[targetID]
	if !ok {
		return
	}
	if t.collapsed[targetID] {
		// The bracket's real final collapsed earlier (its other would-be
		// occupant withdrew first) while this feeder was still live. Its
		// winner has nobody left to face.
		if targetID == t.finalMatchID {
			t.finish()
		}
		return
	}
	if targetID == t.grandFinalID {
		if sourceID == t.winnersFinalID && !viaLosersPath {
			t.gfWinnersPlayer = playerID
		} else {
			t.gfLosersPlayer = playerID
		}
	}
	target.FillSlot(playerID)

	// A match flagged singleFeed (by orphanFeed) has exactly one
	// edge left that will ever deliver an occupant; once that occupant
	// lands, there's nobody left to fill the other slot, so resolve it
	// as a walkover immediately instead of waiting on it.
	if t.singleFeed[targetID] && !target.HasResult && target.IsBye() {
		t.materializeBye(target)
	}
}

// EraseResult reverses a previously reported result. Refused on a bye
// (there's no "prior result" to speak of, only the walkover booked at
// materialization) and, for elimination formats, once any match
// downstream of it has itself been decided, since undoing it would
// otherwise have to cascade through the whole bracket.
func (t *Tournament) EraseResult(matchID string) error {
	if t.status == models.Playoffs && t.playoffStage != nil {
		return t.playoffStage.EraseResult(matchID)
	}

	m, ok := t.matchIndex[matchID]
	if !ok {
		return &IdentityError{Kind: "match", ID: matchID}
	}
	return t.eraseResult(m)
}

// eraseResult reverses m's result and, for elimination formats, pulls
// the winner/loser back out of whatever match they were advanced into.
// Shared between EraseResult and ReportResult's implicit re-report path.
func (t *Tournament) eraseResult(m *models.Match) error {
	if m.IsBye() {
		return &ResultError{MatchID: m.ID, Message: "cannot erase a bye"}
	}
	if !m.HasResult {
		return &ResultError{MatchID: m.ID, Message: "match has no result to erase"}
	}

	var winnerID, loserID string
	if isElimination(t.cfg.Format) {
		switch {
		case m.Result.PlayerOneWins > m.Result.PlayerTwoWins:
			winnerID, loserID = m.PlayerOne, m.PlayerTwo
		case m.Result.PlayerTwoWins > m.Result.PlayerOneWins:
			winnerID, loserID = m.PlayerTwo, m.PlayerOne
		}
		if err := t.checkEraseSafe(m); err != nil {
			return err
		}
	}

	for _, pid := range m.Players() {
		if p, ok := t.playerIndex[pid]; ok {
			p.RemoveResult(m.ID)
		}
	}

	m.HasResult = false
	m.Result = models.MatchResult{}
	if m.PlayerOne != "" && m.PlayerTwo != "" {
		m.Active = true
	}

	if isElimination(t.cfg.Format) {
		t.reverseElimAdvance(m, winnerID, loserID)
	}
	return nil
}

func (t *Tournament) checkEraseSafe(m *models.Match) error {
	if m.ID == t.grandFinalID {
		if reset, ok := t.matchIndex[t.resetMatchID]; ok && reset.HasResult {
			return &RoutingError{MatchID: m.ID, Message: "cannot erase: bracket-reset match already decided"}
		}
		return nil
	}
	if m.ID == t.resetMatchID {
		return nil
	}
	for _, targetID := range []string{m.WinnersPath, m.LosersPath} {
		if targetID == "" {
			continue
		}
		if target, ok := t.matchIndex[targetID]; ok && target.HasResult {
			return &RoutingError{MatchID: m.ID, Message: "cannot erase: a downstream match is already decided"}
		}
	}
	return nil
}

func (t *Tournament) reverseElimAdvance(m *models.Match, winnerID, loserID string) {
	if m.ID == t.resetMatchID {
		if t.status == models.Finished {
			t.status = models.Playoffs
			if t.playoffStage == nil {
				t.status = models.Active
			}
		}
		return
	}
	if m.ID == t.grandFinalID {
		if reset, ok := t.matchIndex[t.resetMatchID]; ok {
			reset.PlayerOne, reset.PlayerTwo, reset.Active = "", "", false
		}
		t.gfWinnersPlayer, t.gfLosersPlayer = "", ""
		if t.status == models.Finished {
			t.status = models.Active
		}
		return
	}

	if target, ok := t.matchIndex[m.WinnersPath]; ok && winnerID != "" {
		target.ClearSlot(winnerID)
	}
	if target, ok := t.matchIndex[m.LosersPath]; ok && loserID != "" {
		target.ClearSlot(loserID)
	}
}
