package tournament

import "github.com/halvard/tourneycore/models"

// seededEntrants returns players ordered by ascending seed (unseeded,
// seed 0, sort last), the order a single/double elimination event's
// bracket is built against at Start regardless of Config.Sorting (which
// only affects the registration-order snapshot taken at start).
func seededEntrants(players []*models.Player) []*models.Player {
	out := append([]*models.Player(nil), players...)
	// A stable insertion sort is plenty at tournament entry-list sizes
	// and keeps registration order as the tiebreak for equal/zero seeds.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a, b := out[j-1], out[j]
			if rank(a) <= rank(b) {
				break
			}
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func rank(p *models.Player) int {
	if p.Seed <= 0 {
		return 1 << 30
	}
	return p.Seed
}

// bracketSlots places entrants into a bracket of the given size using
// the standard seeded order, so highest seeds meet latest. Positions
// beyond the entrant count are left nil (a bye).
func bracketSlots(entrants []*models.Player, size int) []*models.Player {
	order := seedOrder(size)
	slots := make([]*models.Player, size)
	for i, seedRank := range order {
		if seedRank <= len(entrants) {
			slots[i] = entrants[seedRank-1]
		}
	}
	return slots
}

func (t *Tournament) newMatch(round, matchNumber int) *models.Match {
	m := &models.Match{
		ID:          t.nextID(),
		Round:       round,
		MatchNumber: matchNumber,
	}
	t.matches = append(t.matches, m)
	t.matchIndex[m.ID] = m
	return m
}

// buildSingleElimination creates every match of a single-elimination
// bracket up front, wired with WinnersPath edges, plus an optional
// third-place (consolation) match fed by the semifinal losers.
func (t *Tournament) buildSingleElimination(entrants []*models.Player) {
	size := nextPowerOfTwo(len(entrants))
	slots := bracketSlots(entrants, size)
	rounds := log2Ceil(size)

	var prevRound []*models.Match
	for r := 1; r <= rounds; r++ {
		matchCount := size >> r
		round := make([]*models.Match, matchCount)
		for i := 0; i < matchCount; i++ {
			round[i] = t.newMatch(r, i+1)
		}
		if r == 1 {
			for i := 0; i < matchCount; i++ {
				m := round[i]
				p1, p2 := slots[2*i], slots[2*i+1]
				if p1 != nil {
					m.PlayerOne = p1.ID
				}
				if p2 != nil {
					m.PlayerTwo = p2.ID
				}
				m.Active = p1 != nil && p2 != nil
			}
		} else {
			for i, pm := range prevRound {
				pm.WinnersPath = round[i/2].ID
				t.addIncoming(round[i/2].ID, pm.ID)
			}
		}
		prevRound = round
	}

	final := prevRound[0]
	t.finalMatchID = final.ID

	if t.cfg.Consolation && rounds >= 2 {
		semiRound := t.bracketRound(rounds - 1)
		if len(semiRound) == 2 {
			third := t.newMatch(rounds, 0)
			semiRound[0].LosersPath = third.ID
			semiRound[1].LosersPath = third.ID
			t.addIncoming(third.ID, semiRound[0].ID, semiRound[1].ID)
			t.consolationMatchID = third.ID
		}
	}

	t.activateFilledByes()
}

// bracketRound returns the numbered (MatchNumber > 0) bracket matches
// belonging to the given round, excluding side matches, such as a
// consolation match, that share a round number.
func (t *Tournament) bracketRound(round int) []*models.Match {
	var out []*models.Match
	for _, m := range t.matches {
		if m.Round == round && m.MatchNumber > 0 {
			out = append(out, m)
		}
	}
	return out
}

// matchesInRound returns every match scheduled for the given round,
// side matches included.
func (t *Tournament) matchesInRound(round int) []*models.Match {
	var out []*models.Match
	for _, m := range t.matches {
		if m.Round == round {
			out = append(out, m)
		}
	}
	return out
}

// activateFilledByes materializes every genuine first-round bye: a
// match seeded with a single occupant because the bracket size exceeds
// the entrant count. It only ever looks at round 1, and only ever runs
// once, right after a bracket is built. A later round's match can also
// carry a single occupant for a while (one feeder resolved, the other
// hasn't), but that's not a bye — IsBye can't tell "nobody is ever
// coming" from "the other feeder just hasn't finished yet" apart from
// round number, so treating it as one would finish the bracket before
// its other half was even played.
func (t *Tournament) activateFilledByes() {
	for _, m := range t.matches {
		if m.Round != 1 || m.HasResult || !m.IsBye() || t.collapsed[m.ID] {
			continue
		}
		t.materializeBye(m)
	}
}
