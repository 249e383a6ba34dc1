package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"gametree/game"
)

// Random plays a uniformly random legal move. Useful as a benchmarking
// opponent and for sanity-checking game models.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) SelectMove(state game.State, _ time.Duration) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// FirstMove always plays the first legal move. The weakest possible
// deterministic baseline.
type FirstMove struct{}

func (FirstMove) SelectMove(state game.State, _ time.Duration) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	return moves[0], nil
}
