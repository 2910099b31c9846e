package tournament

import (
	"math"
	"math/bits"

	"github.com/halvard/tourneycore/models"
)

// nextPowerOfTwo returns the smallest power of two >= n (n >= 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// log2Ceil returns ceil(log2(n)) for n >= 1.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// seedOrder returns the standard single-elimination bracket order for a
// bracket of the given size (a power of two): the slice holds seed
// numbers 1..size in the order they should be placed into bracket slots
// 0..size-1, so that adjacent pairs meet round 1 and seed 1 can only
// meet seed 2 in the final.
func seedOrder(size int) []int {
	order := []int{1}
	for len(order) < size {
		next := make([]int, 0, len(order)*2)
		width := len(order) * 2
		for _, s := range order {
			next = append(next, s, width+1-s)
		}
		order = next
	}
	return order
}

// pairWithMinimalRematches pairs players while minimizing the number of
// repeat pairings, using a cost map built from each player's match
// history (count of prior meetings, from Player.Results). A brute-force
// permutation search over the full player list is only tractable for
// small fields, so this uses a greedy nearest-available-opponent pass
// instead, which stays usable at Swiss tournament scale.
func pairWithMinimalRematches(players []*models.Player) [][2]*models.Player {
	type candidate struct {
		player *models.Player
		used   bool
	}
	pool := make([]*candidate, len(players))
	for i, p := range players {
		pool[i] = &candidate{player: p}
	}

	var pairs [][2]*models.Player
	for i := range pool {
		if pool[i].used {
			continue
		}
		pool[i].used = true
		best := -1
		bestCost := math.MaxInt64
		for j := i + 1; j < len(pool); j++ {
			if pool[j].used {
				continue
			}
			cost := pool[i].player.TimesPlayed(pool[j].player.ID) * 1000
			cost += j - i // prefer staying close to the score-group order
			if cost < bestCost {
				bestCost = cost
				best = j
			}
		}
		if best == -1 {
			pairs = append(pairs, [2]*models.Player{pool[i].player, nil})
			continue
		}
		pool[best].used = true
		pairs = append(pairs, [2]*models.Player{pool[i].player, pool[best].player})
	}
	return pairs
}
