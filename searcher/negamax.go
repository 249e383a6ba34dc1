package searcher

import (
	"math"
	"time"

	"gametree/game"
)

// Negamax is the sign-unified form of alpha-beta minimax: each ply negates
// the recursive value and swaps the negated bounds, so a single maximizing
// code path serves both teams.
//
// It requires a symmetric evaluator: swapping the teams must negate the
// score, so that a state's value relative to the side to move is the
// side-independent value times the mover's polarity sign. This is a design
// contract, not something checked at runtime; an asymmetric evaluator yields
// silently wrong values.
type Negamax struct {
	depth int
	eval  game.Evaluator
}

func NewNegamax(depth int, eval game.Evaluator) *Negamax {
	if depth < 1 {
		panic("searcher: negamax depth must be at least 1")
	}
	return &Negamax{depth: depth, eval: eval}
}

// SelectMove picks the root move maximizing the negated child value from the
// mover's perspective. Ties keep the move found first.
func (n *Negamax) SelectMove(state game.State, _ time.Duration) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}

	var best game.Move
	bestValue := math.Inf(-1)
	for i, mv := range moves {
		v, err := n.search(state.Play(mv), n.depth-1, math.Inf(-1), math.Inf(1))
		if err != nil {
			return nil, err
		}
		if score := -v; i == 0 || score > bestValue {
			best = mv
			bestValue = score
		}
	}
	return best, nil
}

// search returns the value of state relative to its side to move.
func (n *Negamax) search(state game.State, depth int, alpha, beta float64) (float64, error) {
	if depth == 0 || state.IsTerminal() {
		v, err := n.eval.Evaluate(state)
		if err != nil {
			return 0, err
		}
		return float64(state.Player().Polarity().Sign()) * v, nil
	}

	moves := state.LegalMoves()
	orderMoves(state, moves, n.eval)

	value := math.Inf(-1)
	for _, mv := range moves {
		v, err := n.search(state.Play(mv), depth-1, -beta, -alpha)
		if err != nil {
			return 0, err
		}
		score := -v
		value = math.Max(value, score)
		alpha = math.Max(alpha, score)
		if alpha >= beta {
			break // beta cut-off
		}
	}
	return value, nil
}

// Evaluate scores a state side-independently by searching below it, matching
// the game.Evaluator sign convention.
func (n *Negamax) Evaluate(state game.State) (float64, error) {
	v, err := n.search(state, n.depth, math.Inf(-1), math.Inf(1))
	if err != nil {
		return 0, err
	}
	return float64(state.Player().Polarity().Sign()) * v, nil
}

func (n *Negamax) Heuristic(state game.State) float64 {
	return n.eval.Heuristic(state)
}
