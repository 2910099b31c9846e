package tournament

import "github.com/halvard/tourneycore/models"

// buildRoundRobinSchedule builds the full round-by-round schedule with
// the circle method: player 0 stays fixed, the rest rotate one
// position each round. An odd entrant count gets a phantom
// slot (nil) that encodes a bye for whoever it's paired against that
// round. double appends a second copy of every round with sides
// swapped, for a double round-robin.
func buildRoundRobinSchedule(players []*models.Player, double bool) [][][2]*models.Player {
	arr := append([]*models.Player(nil), players...)
	if len(arr)%2 == 1 {
		arr = append(arr, nil)
	}
	n := len(arr)
	if n == 0 {
		return nil
	}

	rounds := make([][][2]*models.Player, 0, n-1)
	for r := 0; r < n-1; r++ {
		round := make([][2]*models.Player, 0, n/2)
		for i := 0; i < n/2; i++ {
			round = append(round, [2]*models.Player{arr[i], arr[n-1-i]})
		}
		rounds = append(rounds, round)

		// Rotate every seat but the first one position.
		last := arr[n-1]
		copy(arr[2:], arr[1:n-1])
		arr[1] = last
	}

	if !double {
		return rounds
	}

	doubled := make([][][2]*models.Player, 0, len(rounds)*2)
	doubled = append(doubled, rounds...)
	for _, round := range rounds {
		swapped := make([][2]*models.Player, len(round))
		for i, pair := range round {
			swapped[i] = [2]*models.Player{pair[1], pair[0]}
		}
		doubled = append(doubled, swapped)
	}
	return doubled
}
