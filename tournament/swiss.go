package tournament

import (
	"sort"

	"github.com/halvard/tourneycore/models"
)

// swissPairing is the result of pairing one Swiss round: a set of
// opponent pairs plus, if the round has an odd number of entrants, the
// single player who draws the bye.
type swissPairing struct {
	Pairs [][2]*models.Player
	Bye   *models.Player
}

// pairSwiss pairs active players for the given round using score-group
// matching: players are sorted into descending match-point order
// (ties broken by seed, then registration order for determinism),
// an odd player out draws the bye, and the remainder are paired to
// minimize rematches with a preference for staying close in the
// standings (which keeps pairings inside or adjacent to their score
// group without needing an explicit group-by-group loop).
func pairSwiss(active []*models.Player) swissPairing {
	sorted := append([]*models.Player(nil), active...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MatchPoints != sorted[j].MatchPoints {
			return sorted[i].MatchPoints > sorted[j].MatchPoints
		}
		return sorted[i].Seed < sorted[j].Seed
	})

	var bye *models.Player
	if len(sorted)%2 == 1 {
		for i := len(sorted) - 1; i >= 0; i-- {
			if !sorted[i].PairingBye {
				bye = sorted[i]
				sorted = append(sorted[:i], sorted[i+1:]...)
				break
			}
		}
		if bye == nil {
			// Every remaining player has already had a pairing bye;
			// the lowest-ranked player takes another rather than
			// leaving the round unpairable.
			bye = sorted[len(sorted)-1]
			sorted = sorted[:len(sorted)-1]
		}
	}

	pairs := pairWithMinimalRematches(sorted)
	return swissPairing{Pairs: pairs, Bye: bye}
}
