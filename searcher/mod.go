// Package searcher implements depth-limited tree search over the game model:
// minimax with alpha-beta pruning, negamax, and expectation search across
// chance nodes, plus baseline agents for benchmarking them against.
package searcher

import (
	"errors"
	"sort"
	"time"

	"gametree/game"
)

// ErrNoMoves is returned when move selection is asked to act on a state with
// zero legal moves. A correct game model never produces such a state unless
// it is terminal, so hitting this on a non-terminal state indicates a defect
// in the caller or the rules, not something to retry.
var ErrNoMoves = errors.New("searcher: no legal moves available")

// Agent recommends a move for a given state. The limit is advisory: the
// depth-limited agents in this package bound their work by depth alone and
// expect the caller to budget wall-clock time between invocations.
type Agent interface {
	SelectMove(state game.State, limit time.Duration) (game.Move, error)
}

// orderMoves stable-sorts moves so the most promising one for the side to
// move comes first, by the evaluator's cheap heuristic on each successor.
// Ordering never changes a search value, only how much of the tree alpha-beta
// gets to prune.
func orderMoves(state game.State, moves []game.Move, eval game.Evaluator) {
	sign := float64(state.Player().Polarity().Sign())
	scores := make([]float64, len(moves))
	for i, m := range moves {
		scores[i] = sign * game.MoveValue(eval, state, m)
	}
	sort.Stable(&byScore{moves: moves, scores: scores})
}

type byScore struct {
	moves  []game.Move
	scores []float64
}

func (b *byScore) Len() int { return len(b.moves) }

func (b *byScore) Less(i, j int) bool { return b.scores[i] > b.scores[j] }

func (b *byScore) Swap(i, j int) {
	b.moves[i], b.moves[j] = b.moves[j], b.moves[i]
	b.scores[i], b.scores[j] = b.scores[j], b.scores[i]
}
