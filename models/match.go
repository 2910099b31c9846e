package models

// MatchResult is the raw game-win tally reported for a match.
type MatchResult struct {
	PlayerOneWins int
	PlayerTwoWins int
	Draws         int
}

// Match is a single pairing between (up to) two players. Exactly one
// empty slot marks a bye (a round-robin phantom may leave either slot
// empty); both empty is a placeholder, such as an elimination match
// whose feeders haven't delivered anyone yet. WinnersPath/LosersPath are
// elimination routing edges, empty meaning "nowhere to advance to" —
// an empty WinnersPath on a reported match marks the tournament's final.
type Match struct {
	ID          string
	Round       int
	MatchNumber int

	PlayerOne string
	PlayerTwo string

	Active    bool
	HasResult bool
	Result    MatchResult

	WinnersPath string
	LosersPath  string
}

// IsBye reports whether this match has only one occupied slot.
func (m *Match) IsBye() bool {
	return (m.PlayerOne == "" && m.PlayerTwo != "") || (m.PlayerOne != "" && m.PlayerTwo == "")
}

// IsPlaceholder reports whether both slots are still unfilled.
func (m *Match) IsPlaceholder() bool {
	return m.PlayerOne == "" && m.PlayerTwo == ""
}

// Players returns the non-empty player ids in the match, in slot order.
func (m *Match) Players() []string {
	var out []string
	if m.PlayerOne != "" {
		out = append(out, m.PlayerOne)
	}
	if m.PlayerTwo != "" {
		out = append(out, m.PlayerTwo)
	}
	return out
}

// ContainsPlayer reports whether playerID occupies either slot.
func (m *Match) ContainsPlayer(playerID string) bool {
	return playerID != "" && (m.PlayerOne == playerID || m.PlayerTwo == playerID)
}

// OtherSlot returns the slot opposite playerID, or "" when playerID is
// not in the match.
func (m *Match) OtherSlot(playerID string) string {
	switch playerID {
	case m.PlayerOne:
		return m.PlayerTwo
	case m.PlayerTwo:
		return m.PlayerOne
	}
	return ""
}

// FillSlot places playerID in PlayerOne if free, else PlayerTwo, and
// activates the match once both slots are occupied. Reports whether a
// slot was available.
func (m *Match) FillSlot(playerID string) bool {
	switch {
	case m.PlayerOne == "":
		m.PlayerOne = playerID
	case m.PlayerTwo == "":
		m.PlayerTwo = playerID
	default:
		return false
	}
	if m.PlayerOne != "" && m.PlayerTwo != "" {
		m.Active = true
	}
	return true
}

// ClearSlot empties whichever slot holds playerID and deactivates the
// match if it was awaiting a result.
func (m *Match) ClearSlot(playerID string) {
	switch playerID {
	case m.PlayerOne:
		m.PlayerOne = ""
	case m.PlayerTwo:
		m.PlayerTwo = ""
	default:
		return
	}
	m.Active = false
}

// IsGrandFinal reports whether winning this match can end the tournament.
func (m *Match) IsGrandFinal() bool {
	return m.WinnersPath == ""
}
