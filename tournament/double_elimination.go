package tournament

import "github.com/halvard/tourneycore/models"

// buildDoubleElimination builds a winners' bracket, a losers' bracket
// sized to receive each round of winners' losers, and a grand final
// (plus a conditionally-played bracket-reset match).
//
// Round numbers run winners bracket (1..k), then losers bracket
// (k+1..k+2(k-1)), then the grand final, then the reset match, so the
// whole event has one monotonically increasing round sequence even
// though, in a physical event, winners and losers rounds are often
// played in parallel.
func (t *Tournament) buildDoubleElimination(entrants []*models.Player) {
	size := nextPowerOfTwo(len(entrants))
	slots := bracketSlots(entrants, size)
	k := log2Ceil(size)

	winners := make([][]*models.Match, k+1) // 1-indexed by round
	for r := 1; r <= k; r++ {
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
			for i, pm := range winners[r-1] {
				pm.WinnersPath = round[i/2].ID
				t.addIncoming(round[i/2].ID, pm.ID)
			}
		}
		winners[r] = round
	}
	t.winnersFinalID = winners[k][0].ID

	roundCursor := k
	var lastMinor []*models.Match
	if k >= 2 {
		lastMinor = t.buildLosersBracket(winners, k, &roundCursor)
	}

	gf := t.newMatch(roundCursor+1, 1)
	t.grandFinalID = gf.ID
	winners[k][0].WinnersPath = gf.ID
	t.addIncoming(gf.ID, winners[k][0].ID)
	if k >= 2 {
		lastMinor[0].WinnersPath = gf.ID
		t.losersFinalID = lastMinor[0].ID
		t.addIncoming(gf.ID, lastMinor[0].ID)
	} else {
		// Degenerate 2-entrant bracket: the sole winners' match's loser
		// goes straight to the grand final as the losers'-bracket
		// representative, there being no losers' bracket to traverse.
		winners[k][0].LosersPath = gf.ID
		t.addIncoming(gf.ID, winners[k][0].ID)
	}

	reset := t.newMatch(roundCursor+2, 1)
	t.resetMatchID = reset.ID
	// reset.WinnersPath left empty: it's always terminal, whether or
	// not it ends up being played.

	t.activateFilledByes()
}

// buildLosersBracket builds the alternating major/minor losers' bracket
// rounds and wires them against the winners' bracket, returning the
// final (single-match) minor round whose winner reaches the grand
// final.
func (t *Tournament) buildLosersBracket(winners [][]*models.Match, k int, roundCursor *int) []*models.Match {
	var prevMinor []*models.Match
	for i := 1; i <= k-1; i++ {
		matchCount := len(winners[i]) / 2

		*roundCursor++
		major := make([]*models.Match, matchCount)
		for j := 0; j < matchCount; j++ {
			major[j] = t.newMatch(*roundCursor, j+1)
		}
		if i == 1 {
			// Major round 1 pairs the losers of winners-round-1 matches
			// 2j and 2j+1 against each other. The j%2 swap only changes
			// the order the two feeders are recorded in incomingTo; it
			// does not change who meets whom, since each loser takes
			// whichever slot is free when their match reports. Minor
			// rounds below take winners'-bracket losers on the same
			// side (winners[i+1][j] into minor[j]); no cross-side
			// alternation is applied.
			for j := 0; j < matchCount; j++ {
				a, b := winners[1][2*j], winners[1][2*j+1]
				if j%2 == 1 {
					a, b = b, a
				}
				a.LosersPath = major[j].ID
				b.LosersPath = major[j].ID
				t.addIncoming(major[j].ID, a.ID, b.ID)
			}
		} else {
			for j := 0; j < matchCount; j++ {
				a, b := prevMinor[2*j], prevMinor[2*j+1]
				a.WinnersPath = major[j].ID
				b.WinnersPath = major[j].ID
				t.addIncoming(major[j].ID, a.ID, b.ID)
			}
		}

		*roundCursor++
		minor := make([]*models.Match, matchCount)
		for j := 0; j < matchCount; j++ {
			minor[j] = t.newMatch(*roundCursor, j+1)
			major[j].WinnersPath = minor[j].ID
			winners[i+1][j].LosersPath = minor[j].ID
			t.addIncoming(minor[j].ID, major[j].ID, winners[i+1][j].ID)
		}

		prevMinor = minor
	}
	return prevMinor
}

func (t *Tournament) addIncoming(targetID string, sourceIDs ...string) {
	t.incomingTo[targetID] = append(t.incomingTo[targetID], sourceIDs...)
}
