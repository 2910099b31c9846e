package tournament

import (
	"sort"

	"github.com/halvard/tourneycore/models"
)

// Start transitions the tournament out of Registration, builds whatever
// upfront structure its format needs (a full bracket for elimination
// formats, a full schedule for round-robin, or just round 1 for Swiss),
// and activates the first round.
func (t *Tournament) Start() error {
	if t.status != models.Registration {
		return &StateError{Op: "start", Status: statusName(t.status)}
	}
	if len(t.players) < minEntrants(t.cfg.Format) {
		return &StateError{Op: "start", Status: statusName(t.status), Message: "not enough players registered"}
	}

	t.applySortOrder()
	t.status = models.Active
	t.currentRound = 1

	switch t.cfg.Format {
	case models.Swiss:
		t.scheduledRounds = t.cfg.Rounds
		if t.scheduledRounds <= 0 {
			t.scheduledRounds = log2Ceil(len(t.players))
			if t.scheduledRounds < 1 {
				t.scheduledRounds = 1
			}
		}
		pairing := pairSwiss(t.activePlayers())
		t.createSwissRound(pairing, 1)
	case models.RoundRobin, models.DoubleRoundRobin:
		schedule := buildRoundRobinSchedule(t.players, t.cfg.Format == models.DoubleRoundRobin)
		t.scheduledRounds = len(schedule)
		for i, round := range schedule {
			t.createRoundRobinRound(round, i+1, i == 0)
		}
	case models.SingleElimination:
		t.buildSingleElimination(seededEntrants(t.players))
	case models.DoubleElimination:
		t.buildDoubleElimination(seededEntrants(t.players))
	}
	return nil
}

func (t *Tournament) applySortOrder() {
	switch t.cfg.Sorting {
	case models.SortAscending:
		sort.SliceStable(t.players, func(i, j int) bool { return rank(t.players[i]) < rank(t.players[j]) })
	case models.SortDescending:
		sort.SliceStable(t.players, func(i, j int) bool { return rank(t.players[i]) > rank(t.players[j]) })
	}
}

func (t *Tournament) activePlayers() []*models.Player {
	out := make([]*models.Player, 0, len(t.players))
	for _, p := range t.players {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

func (t *Tournament) createSwissRound(pairing swissPairing, round int) {
	for i, pair := range pairing.Pairs {
		m := t.newMatch(round, i+1)
		if pair[0] != nil {
			m.PlayerOne = pair[0].ID
		}
		if pair[1] != nil {
			m.PlayerTwo = pair[1].ID
		}
		m.Active = m.PlayerOne != "" && m.PlayerTwo != ""
	}
	if pairing.Bye != nil {
		m := t.newMatch(round, len(pairing.Pairs)+1)
		m.PlayerOne = pairing.Bye.ID
		t.materializeBye(m)
	}
}

func (t *Tournament) createRoundRobinRound(pairs [][2]*models.Player, round int, activate bool) {
	for i, pair := range pairs {
		m := t.newMatch(round, i+1)
		if pair[0] != nil {
			m.PlayerOne = pair[0].ID
		}
		if pair[1] != nil {
			m.PlayerTwo = pair[1].ID
		}
		if !activate {
			continue
		}
		t.activateRoundRobinMatch(m)
	}
}

func (t *Tournament) activateRoundRobinMatch(m *models.Match) {
	if m.HasResult {
		return
	}
	if m.IsBye() {
		t.materializeBye(m)
		return
	}
	if m.PlayerOne == "" || m.PlayerTwo == "" {
		return
	}
	if t.resolveIfForfeit(m) {
		return
	}
	m.Active = true
}

// NextRound closes out the current round (refusing if any of its
// matches are still undecided) and either pairs/activates the next
// round or, once the main stage is exhausted, transitions into the
// playoff stage or finishes the tournament outright.
func (t *Tournament) NextRound() error {
	if t.status == models.Playoffs && t.playoffStage != nil {
		if err := t.playoffStage.NextRound(); err != nil {
			return err
		}
		if t.playoffStage.status == models.Finished {
			t.finish()
		}
		return nil
	}
	if t.status != models.Active {
		return &StateError{Op: "nextRound", Status: statusName(t.status)}
	}
	if isElimination(t.cfg.Format) {
		return &StateError{Op: "nextRound", Status: statusName(t.status), Message: "elimination rounds advance automatically as results are reported"}
	}
	if !t.roundComplete(t.currentRound) {
		return &StateError{Op: "nextRound", Status: statusName(t.status), Message: "current round has undecided matches"}
	}

	t.currentRound++
	if t.currentRound > t.scheduledRounds {
		return t.finishMainStage()
	}

	switch t.cfg.Format {
	case models.Swiss:
		pairing := pairSwiss(t.activePlayers())
		t.createSwissRound(pairing, t.currentRound)
	case models.RoundRobin, models.DoubleRoundRobin:
		t.activateRoundRobinRound(t.currentRound)
	}
	return nil
}

func (t *Tournament) activateRoundRobinRound(round int) {
	for _, m := range t.matchesInRound(round) {
		t.activateRoundRobinMatch(m)
	}
}

func (t *Tournament) roundComplete(round int) bool {
	for _, m := range t.matchesInRound(round) {
		if m.Active && !m.HasResult {
			return false
		}
	}
	return true
}

// finishMainStage runs after a Swiss or round-robin main stage has
// played out its scheduled rounds: it either ends the tournament or
// cuts to an appended elimination playoff stage.
func (t *Tournament) finishMainStage() error {
	if t.cfg.Playoffs == models.PlayoffNone {
		t.finish()
		return nil
	}

	entrants := t.cutEntrants()
	if len(entrants) < 2 {
		t.finish()
		return nil
	}

	playoffCfg := Config{
		Format:       models.SingleElimination,
		Consolation:  t.cfg.Consolation,
		PointsForWin: t.cfg.PointsForWin,
		BestOf:       t.cfg.BestOf,
		IDs:          t.cfg.IDs,
	}
	if t.cfg.Playoffs == models.PlayoffDoubleElimination {
		playoffCfg.Format = models.DoubleElimination
	}
	playoffCfg.normalize()

	stage := &Tournament{
		cfg:         playoffCfg,
		playerIndex: map[string]*models.Player{},
		playerOrder: map[string]int{},
		matchIndex:  map[string]*models.Match{},
		usedIDs:     t.usedIDs,
		incomingTo:  map[string][]string{},
		collapsed:   map[string]bool{},
		singleFeed:  map[string]bool{},
		status:      models.Active,
	}
	for i, p := range entrants {
		stage.players = append(stage.players, p)
		stage.playerIndex[p.ID] = p
		stage.playerOrder[p.ID] = i
	}

	t.playoffStage = stage
	t.status = models.Playoffs

	// cutEntrants returns players in standings order, which becomes the
	// playoff seeding.
	seeded := entrants
	if playoffCfg.Format == models.DoubleElimination {
		stage.buildDoubleElimination(seeded)
	} else {
		stage.buildSingleElimination(seeded)
	}
	return nil
}

// cutEntrants applies Config.Cut to the current standings to pick the
// players who advance to the playoff stage.
func (t *Tournament) cutEntrants() []*models.Player {
	standings := t.Standings(true)
	switch t.cfg.Cut.Type {
	case models.CutRank:
		if t.cfg.Cut.Limit > 0 && t.cfg.Cut.Limit < len(standings) {
			return standings[:t.cfg.Cut.Limit]
		}
		return standings
	case models.CutPoints:
		var out []*models.Player
		for _, p := range standings {
			if p.MatchPoints >= float64(t.cfg.Cut.Limit) {
				out = append(out, p)
			}
		}
		return out
	default:
		return standings
	}
}
