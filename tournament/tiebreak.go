package tournament

import (
	"sort"

	"github.com/halvard/tourneycore/models"
)

const percentFloor = 1.0 / 3.0

// computeTiebreakers recomputes every player's models.Stats from the
// current scoreboards and history. Called fresh before every standings
// request rather than maintained incrementally, since several of these
// statistics (OMW%, OOMW%) depend on every opponent's current totals.
func computeTiebreakers(all map[string]*models.Player, pointsForWin float64) {
	matchWin := func(p *models.Player) float64 {
		return matchWinPercent(p, pointsForWin)
	}
	gameWin := func(p *models.Player) float64 {
		return gameWinPercent(p, pointsForWin)
	}
	matchWinExcluding := func(p *models.Player, excludeOpponentID string) float64 {
		mp, mc := p.MatchPoints, p.MatchCount
		for _, r := range p.Results {
			if r.OpponentID == excludeOpponentID {
				mp -= r.MatchPoints
				mc--
			}
		}
		if mc <= 0 {
			return percentFloor
		}
		return floorPct(mp / (float64(mc) * pointsForWin))
	}
	gameWinExcluding := func(p *models.Player, excludeOpponentID string) float64 {
		gp, gc := p.GamePoints, p.GameCount
		for _, r := range p.Results {
			if r.OpponentID == excludeOpponentID {
				gp -= r.GamePoints
				gc -= r.Games
			}
		}
		if gc <= 0 {
			return percentFloor
		}
		return floorPct(gp / (float64(gc) * pointsForWin))
	}

	// Pass 1: own percentages, Solkoff, median Buchholz, Sonneborn-Berger,
	// cumulative — everything that doesn't need another player's OMW/OGW.
	for _, p := range all {
		s := &p.Tiebreakers
		s.MatchWinPercent = matchWin(p)
		s.GameWinPercent = gameWin(p)

		var opponentPoints []float64
		var omwSum, ogwSum float64
		var sb float64
		opponentCount := 0
		for _, r := range p.Results {
			if r.OpponentID == "" {
				continue // byes don't count as an opponent
			}
			opp, ok := all[r.OpponentID]
			if !ok {
				continue
			}
			opponentCount++
			opponentPoints = append(opponentPoints, opp.MatchPoints)
			omwSum += matchWinExcluding(opp, p.ID)
			ogwSum += gameWinExcluding(opp, p.ID)

			weight := 0.0
			switch r.Outcome {
			case models.OutcomeWin:
				weight = 1
			case models.OutcomeDraw:
				weight = 0.5
			}
			sb += opp.MatchPoints * weight
		}

		if opponentCount > 0 {
			s.OpponentMatchWinPercent = omwSum / float64(opponentCount)
			s.OpponentGameWinPercent = ogwSum / float64(opponentCount)
		} else {
			s.OpponentMatchWinPercent = percentFloor
			s.OpponentGameWinPercent = percentFloor
		}

		s.Solkoff = sum(opponentPoints)
		s.MedianBuchholz = s.Solkoff
		if len(opponentPoints) >= 2 {
			s.MedianBuchholz -= maxOf(opponentPoints) + minOf(opponentPoints)
		}
		s.SonnebornBerger = sb
		s.Cumulative = cumulative(p)
	}

	// Pass 2: opponent-opponent match win % and opponent-cumulative both
	// depend on pass 1's per-player OMW/Cumulative, so they run second.
	for _, p := range all {
		s := &p.Tiebreakers
		var oomwSum, oppCumSum float64
		count := 0
		for _, r := range p.Results {
			if r.OpponentID == "" {
				continue
			}
			opp, ok := all[r.OpponentID]
			if !ok {
				continue
			}
			count++
			oomwSum += opp.Tiebreakers.OpponentMatchWinPercent
			oppCumSum += opp.Tiebreakers.Cumulative
		}
		if count > 0 {
			s.OpponentOpponentMatchWinPercent = oomwSum / float64(count)
			s.OpponentCumulative = oppCumSum / float64(count)
		} else {
			s.OpponentOpponentMatchWinPercent = percentFloor
		}
	}
}

func matchWinPercent(p *models.Player, pointsForWin float64) float64 {
	if p.MatchCount == 0 {
		return percentFloor
	}
	return floorPct(p.MatchPoints / (float64(p.MatchCount) * pointsForWin))
}

func gameWinPercent(p *models.Player, pointsForWin float64) float64 {
	if p.GameCount == 0 {
		return percentFloor
	}
	return floorPct(p.GamePoints / (float64(p.GameCount) * pointsForWin))
}

func floorPct(v float64) float64 {
	if v < percentFloor {
		return percentFloor
	}
	return v
}

// cumulative sums, after each of the player's own rounds in order, the
// running match-point total up to and including that round.
func cumulative(p *models.Player) float64 {
	ordered := append([]models.ResultEntry(nil), p.Results...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Round < ordered[j].Round })
	running := 0.0
	total := 0.0
	for _, r := range ordered {
		running += r.MatchPoints
		total += running
	}
	return total
}

func sum(v []float64) float64 {
	var t float64
	for _, x := range v {
		t += x
	}
	return t
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func statValue(s *models.Stats, kind models.TiebreakerKind) float64 {
	switch kind {
	case models.GameWinPercent:
		return s.GameWinPercent
	case models.MatchWinPercent:
		return s.MatchWinPercent
	case models.OpponentMatchWinPercent:
		return s.OpponentMatchWinPercent
	case models.OpponentGameWinPercent:
		return s.OpponentGameWinPercent
	case models.OpponentOpponentMatchWinPercent:
		return s.OpponentOpponentMatchWinPercent
	case models.Solkoff:
		return s.Solkoff
	case models.MedianBuchholz:
		return s.MedianBuchholz
	case models.SonnebornBerger:
		return s.SonnebornBerger
	case models.Cumulative:
		return s.Cumulative
	case models.OpponentCumulative:
		return s.OpponentCumulative
	}
	return 0
}

// sortStandings orders players by match points descending, then each
// configured tiebreaker descending, then stable input order. Exactly
// tied cohorts (same match points and every tiebreaker value) are then
// re-split by head-to-head "versus" points among just that cohort.
func sortStandings(players []*models.Player, precedence []models.TiebreakerKind) []*models.Player {
	out := append([]*models.Player(nil), players...)
	order := make(map[string]int, len(out))
	for i, p := range out {
		order[p.ID] = i
	}

	less := func(a, b *models.Player) bool {
		if a.MatchPoints != b.MatchPoints {
			return a.MatchPoints > b.MatchPoints
		}
		for _, kind := range precedence {
			av, bv := statValue(&a.Tiebreakers, kind), statValue(&b.Tiebreakers, kind)
			if av != bv {
				return av > bv
			}
		}
		return order[a.ID] < order[b.ID]
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	resolveTiedCohorts(out, precedence)
	return out
}

func exactlyTied(a, b *models.Player, precedence []models.TiebreakerKind) bool {
	if a.MatchPoints != b.MatchPoints {
		return false
	}
	for _, kind := range precedence {
		if statValue(&a.Tiebreakers, kind) != statValue(&b.Tiebreakers, kind) {
			return false
		}
	}
	return true
}

// resolveTiedCohorts finds maximal runs of exactly-tied players and
// reorders each run by head-to-head match points won against the rest
// of the cohort (the "versus" tiebreaker).
func resolveTiedCohorts(players []*models.Player, precedence []models.TiebreakerKind) {
	i := 0
	for i < len(players) {
		j := i + 1
		for j < len(players) && exactlyTied(players[i], players[j], precedence) {
			j++
		}
		if j-i > 1 {
			cohort := players[i:j]
			sort.SliceStable(cohort, func(a, b int) bool {
				return versusPoints(cohort[a], cohort) > versusPoints(cohort[b], cohort)
			})
		}
		i = j
	}
}

// versusPoints sums the match points p earned in games played against
// other members of cohort.
func versusPoints(p *models.Player, cohort []*models.Player) float64 {
	inCohort := make(map[string]bool, len(cohort))
	for _, c := range cohort {
		if c.ID != p.ID {
			inCohort[c.ID] = true
		}
	}
	total := 0.0
	for _, r := range p.Results {
		if inCohort[r.OpponentID] {
			total += r.MatchPoints
		}
	}
	return total
}
