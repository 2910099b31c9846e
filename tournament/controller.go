// Package tournament is the state machine that owns a tournament's
// players and matches and orchestrates pairing, elimination routing,
// and tiebreaker ranking according to its format and lifecycle status.
// One Tournament value drives exactly one event; a process hosting
// many tournaments runs many independent values with no shared
// mutable state between them.
package tournament

import (
	"log"
	"math"

	"github.com/halvard/tourneycore/idgen"
	"github.com/halvard/tourneycore/models"
)

// Tournament is a single format-discriminated controller type: one
// struct, one set of lifecycle methods, dispatching on Config.Format
// and Status rather than on a type hierarchy per format.
type Tournament struct {
	cfg Config

	players     []*models.Player
	playerIndex map[string]*models.Player
	playerOrder map[string]int

	matches    []*models.Match
	matchIndex map[string]*models.Match

	currentRound    int
	status          models.Status
	scheduledRounds int

	usedIDs map[string]bool

	// Elimination/playoff routing bookkeeping. This is the controller's
	// private view of the routing graph it built; none of it lives on
	// models.Match itself.
	finalMatchID       string
	consolationMatchID string
	winnersFinalID     string
	losersFinalID      string
	grandFinalID       string
	resetMatchID       string
	gfWinnersPlayer    string
	gfLosersPlayer     string

	incomingTo map[string][]string
	collapsed  map[string]bool
	singleFeed map[string]bool

	// playoffStage, when non-nil, is the elimination sub-tournament
	// appended after a Swiss/round-robin main stage finishes.
	playoffStage *Tournament
}

// New constructs a tournament in the registration status. Players are
// added afterward with AddPlayer.
func New(cfg Config) *Tournament {
	cfg.normalize()
	if cfg.IDs == nil {
		cfg.IDs = idgen.New(12)
	}
	return &Tournament{
		cfg:         cfg,
		playerIndex: map[string]*models.Player{},
		playerOrder: map[string]int{},
		matchIndex:  map[string]*models.Match{},
		usedIDs:     map[string]bool{},
		incomingTo:  map[string][]string{},
		collapsed:   map[string]bool{},
		singleFeed:  map[string]bool{},
		status:      models.Registration,
	}
}

func (t *Tournament) nextID() string {
	for {
		id := t.cfg.IDs.Next()
		if id != "" && !t.usedIDs[id] {
			t.usedIDs[id] = true
			return id
		}
	}
}

// Status returns the tournament's current lifecycle state.
func (t *Tournament) Status() models.Status { return t.status }

// CurrentRound returns the round number in progress (0 before Start).
func (t *Tournament) CurrentRound() int { return t.currentRound }

// Players returns every registered player, in registration order, or in
// seed order once Start has applied Config.Sorting.
func (t *Tournament) Players() []*models.Player { return append([]*models.Player(nil), t.players...) }

// Matches returns every match created so far, including the playoff
// stage's matches once one has been appended.
func (t *Tournament) Matches() []*models.Match {
	out := append([]*models.Match(nil), t.matches...)
	if t.playoffStage != nil {
		out = append(out, t.playoffStage.Matches()...)
	}
	return out
}

// Player looks up a player by id.
func (t *Tournament) Player(id string) (*models.Player, bool) {
	p, ok := t.playerIndex[id]
	return p, ok
}

// Match looks up a match by id, including within an appended playoff
// stage.
func (t *Tournament) Match(id string) (*models.Match, bool) {
	if m, ok := t.matchIndex[id]; ok {
		return m, ok
	}
	if t.playoffStage != nil {
		return t.playoffStage.Match(id)
	}
	return nil, false
}

func minEntrants(format models.Format) int {
	switch format {
	case models.Swiss:
		return 8
	default:
		return 4
	}
}

// AddPlayer registers a player. In Registration it's unconditional
// (subject to PlayerLimit/duplicate checks); in an active Swiss event a
// late entrant is accepted and given catch-up ResultEntry values for
// every round already played.
func (t *Tournament) AddPlayer(alias string, seed int) (*models.Player, error) {
	if t.cfg.PlayerLimit > 0 && len(t.players) >= t.cfg.PlayerLimit {
		return nil, &CapacityError{Limit: t.cfg.PlayerLimit}
	}
	switch t.status {
	case models.Registration:
	case models.Active:
		if t.cfg.Format != models.Swiss {
			return nil, &StateError{Op: "addPlayer", Status: statusName(t.status), Message: "late entry only supported for Swiss"}
		}
	default:
		return nil, &StateError{Op: "addPlayer", Status: statusName(t.status)}
	}

	p := models.NewPlayer(t.nextID(), alias, seed)
	t.players = append(t.players, p)
	t.playerIndex[p.ID] = p
	t.playerOrder[p.ID] = len(t.players) - 1

	if t.status == models.Active {
		t.applyCatchUp(p)
	}
	return p, nil
}

func (t *Tournament) applyCatchUp(p *models.Player) {
	for round := 1; round < t.currentRound; round++ {
		entry := models.ResultEntry{
			MatchID: "catchup-" + t.nextID(),
			Round:   round,
		}
		games := int(math.Ceil(float64(t.cfg.BestOf) / 2))
		if t.cfg.LateEntryMode == models.LateEntryByes {
			entry.Outcome = models.OutcomeBye
			entry.MatchPoints = t.cfg.PointsForWin
			entry.Games = games
			entry.GamePoints = float64(games) * t.cfg.PointsForWin
		} else {
			entry.Outcome = models.OutcomeLoss
			entry.MatchPoints = 0
			entry.Games = games
		}
		p.AddResult(entry)
	}
}

// RemovePlayer withdraws a player. Behavior depends on status and
// format. A Playoffs tournament forwards to its appended elimination
// stage, since that's where the live bracket (and the withdrawing
// player's still-unplayed match) actually lives.
func (t *Tournament) RemovePlayer(id string) error {
	if t.status == models.Playoffs && t.playoffStage != nil {
		return t.playoffStage.RemovePlayer(id)
	}

	p, ok := t.playerIndex[id]
	if !ok {
		return &IdentityError{Kind: "player", ID: id}
	}

	switch t.status {
	case models.Registration:
		return t.discardPlayer(id)
	case models.Active:
		if t.cfg.Format == models.Swiss || t.cfg.Format == models.RoundRobin || t.cfg.Format == models.DoubleRoundRobin {
			return t.forfeitStandard(p)
		}
		return t.withdrawElimination(p)
	default:
		return &StateError{Op: "removePlayer", Status: statusName(t.status)}
	}
}

func (t *Tournament) discardPlayer(id string) error {
	for i, p := range t.players {
		if p.ID == id {
			t.players = append(t.players[:i], t.players[i+1:]...)
			delete(t.playerIndex, id)
			delete(t.playerOrder, id)
			return nil
		}
	}
	return &IdentityError{Kind: "player", ID: id}
}

// Standings recomputes every tiebreaker and returns players ordered by
// configured tiebreaker precedence. activeOnly filters out withdrawn
// players.
func (t *Tournament) Standings(activeOnly bool) []*models.Player {
	computeTiebreakers(t.playerIndex, t.cfg.PointsForWin)

	pool := t.players
	if activeOnly {
		pool = make([]*models.Player, 0, len(t.players))
		for _, p := range t.players {
			if p.Active {
				pool = append(pool, p)
			}
		}
	}
	return sortStandings(pool, t.cfg.Tiebreakers)
}

func statusName(s models.Status) string {
	switch s {
	case models.Registration:
		return "registration"
	case models.Active:
		return "active"
	case models.Playoffs:
		return "playoffs"
	case models.Aborted:
		return "aborted"
	case models.Finished:
		return "finished"
	}
	return "unknown"
}

// Abort transitions any non-terminal tournament to Aborted.
func (t *Tournament) Abort() error {
	if t.status == models.Finished || t.status == models.Aborted {
		return &StateError{Op: "abort", Status: statusName(t.status)}
	}
	t.status = models.Aborted
	return nil
}

func (t *Tournament) hasActiveMatch() bool {
	for _, m := range t.matches {
		if m.Active {
			return true
		}
	}
	return false
}

func (t *Tournament) finish() {
	t.status = models.Finished
	log.Printf("tournament: finished after round %d", t.currentRound)
}
