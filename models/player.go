package models

// ResultEntry is one recorded match outcome from a single player's
// point of view. OpponentID is empty for byes.
type ResultEntry struct {
	MatchID     string
	Round       int
	OpponentID  string
	Outcome     Outcome
	MatchPoints float64
	GamePoints  float64
	Games       int
}

// Stats holds the nine tiebreaker statistics computed for a player,
// plus an opponent-cumulative variant used to break remaining ties on
// the cumulative tiebreaker.
type Stats struct {
	GameWinPercent                  float64
	MatchWinPercent                 float64
	OpponentMatchWinPercent         float64
	OpponentGameWinPercent          float64
	OpponentOpponentMatchWinPercent float64
	Solkoff                         float64
	MedianBuchholz                  float64
	SonnebornBerger                 float64
	Cumulative                      float64
	OpponentCumulative              float64
}

// Player is a tournament entrant plus its running scoreboard and
// per-match history.
type Player struct {
	ID          string
	Alias       string
	Seed        int
	InitialByes int

	MatchCount  int
	MatchPoints float64
	GameCount   int
	GamePoints  float64

	Active     bool
	PairingBye bool

	Results     []ResultEntry
	Tiebreakers Stats
}

// NewPlayer returns a Player ready to enter registration.
func NewPlayer(id, alias string, seed int) *Player {
	return &Player{
		ID:     id,
		Alias:  alias,
		Seed:   seed,
		Active: true,
	}
}

// HasPlayed reports whether this player has already faced opponentID.
func (p *Player) HasPlayed(opponentID string) bool {
	if opponentID == "" {
		return false
	}
	for _, r := range p.Results {
		if r.OpponentID == opponentID {
			return true
		}
	}
	return false
}

// TimesPlayed counts prior meetings with opponentID.
func (p *Player) TimesPlayed(opponentID string) int {
	count := 0
	for _, r := range p.Results {
		if r.OpponentID == opponentID {
			count++
		}
	}
	return count
}

// AddResult appends a result entry and updates the running scoreboard.
func (p *Player) AddResult(r ResultEntry) {
	p.Results = append(p.Results, r)
	p.MatchCount++
	p.MatchPoints += r.MatchPoints
	p.GameCount += r.Games
	p.GamePoints += r.GamePoints
	if r.Outcome == OutcomeBye {
		p.PairingBye = true
	}
}

// RemoveResult reverses the scoreboard effect of the result recorded
// under matchID, if any, and reports whether one was found.
func (p *Player) RemoveResult(matchID string) bool {
	for i, r := range p.Results {
		if r.MatchID != matchID {
			continue
		}
		p.MatchCount--
		p.MatchPoints -= r.MatchPoints
		p.GameCount -= r.Games
		p.GamePoints -= r.GamePoints
		p.Results = append(p.Results[:i], p.Results[i+1:]...)
		if r.Outcome == OutcomeBye {
			p.PairingBye = false
			for _, other := range p.Results {
				if other.Outcome == OutcomeBye {
					p.PairingBye = true
					break
				}
			}
		}
		return true
	}
	return false
}

// Result looks up the entry recorded for matchID.
func (p *Player) Result(matchID string) (ResultEntry, bool) {
	for _, r := range p.Results {
		if r.MatchID == matchID {
			return r, true
		}
	}
	return ResultEntry{}, false
}
