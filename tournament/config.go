package tournament

import "github.com/halvard/tourneycore/models"

// Cut configures the playoff-entry trim applied when a Swiss or
// round-robin event transitions into its playoff stage.
type Cut struct {
	Type  models.CutType
	Limit int // player count for CutRank, minimum points for CutPoints
}

// Config is the full configuration surface for a tournament. Passed
// once to New and immutable afterward.
type Config struct {
	Format  models.Format
	Sorting models.SortOrder

	Consolation bool
	PlayerLimit int // 0 = unbounded

	PointsForWin  float64
	PointsForDraw float64

	Rounds int // Swiss only; 0 = auto = ceil(log2(n))

	Playoffs models.PlayoffFormat

	BestOf int // odd; used only to compute forfeit/bye game scores

	Cut Cut

	// Tiebreakers is the ordered precedence list applied after
	// MatchPoints in standings. Defaults to a standard Swiss-style
	// order when nil (see DefaultTiebreakers).
	Tiebreakers []models.TiebreakerKind

	// LateEntryMode controls catch-up entries for Swiss players added
	// after round 1.
	LateEntryMode models.LateEntryMode

	// IDs mints opaque ids for new players/matches. Defaults to an
	// idgen.Supplier of length 12 when nil.
	IDs models.IDSupplier
}

// DefaultTiebreakers is the precedence order used when Config.Tiebreakers
// is nil: the classic Swiss tournament chain.
func DefaultTiebreakers() []models.TiebreakerKind {
	return []models.TiebreakerKind{
		models.OpponentMatchWinPercent,
		models.OpponentOpponentMatchWinPercent,
		models.GameWinPercent,
		models.OpponentGameWinPercent,
	}
}

func (c *Config) normalize() {
	if c.PointsForWin == 0 {
		c.PointsForWin = 1
	}
	if c.BestOf == 0 {
		c.BestOf = 1
	}
	if c.Tiebreakers == nil {
		c.Tiebreakers = DefaultTiebreakers()
	}
}
