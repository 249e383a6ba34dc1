package searcher

import (
	"math"
	"time"

	"gametree/game"
)

// Minimax is a depth-limited minimax search with alpha-beta pruning. The
// maximizing and minimizing branches follow each team's fixed polarity, and
// moves are ordered by the evaluator's heuristic before recursing to tighten
// the bounds early.
type Minimax struct {
	depth int
	eval  game.Evaluator

	// Evaluated counts the states scored at the horizon since construction.
	Evaluated uint64
}

func NewMinimax(depth int, eval game.Evaluator) *Minimax {
	if depth < 1 {
		panic("searcher: minimax depth must be at least 1")
	}
	return &Minimax{depth: depth, eval: eval}
}

// SelectMove evaluates every legal root move with the widest bounds and
// returns the best one under the mover's polarity. Ties keep the move found
// first.
func (m *Minimax) SelectMove(state game.State, _ time.Duration) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}

	maximizing := state.Player().Polarity() == game.Maximizing
	var best game.Move
	bestValue := 0.0
	for i, mv := range moves {
		value, err := m.search(state.Play(mv), m.depth-1, math.Inf(-1), math.Inf(1))
		if err != nil {
			return nil, err
		}
		if i == 0 || (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			best = mv
			bestValue = value
		}
	}
	return best, nil
}

func (m *Minimax) search(state game.State, depth int, alpha, beta float64) (float64, error) {
	if depth == 0 || state.IsTerminal() {
		m.Evaluated++
		return m.eval.Evaluate(state)
	}

	moves := state.LegalMoves()
	orderMoves(state, moves, m.eval)

	if state.Player().Polarity() == game.Maximizing {
		value := math.Inf(-1)
		for _, mv := range moves {
			v, err := m.search(state.Play(mv), depth-1, alpha, beta)
			if err != nil {
				return 0, err
			}
			value = math.Max(value, v)
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break // beta cut-off
			}
		}
		return value, nil
	}

	value := math.Inf(1)
	for _, mv := range moves {
		v, err := m.search(state.Play(mv), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		value = math.Min(value, v)
		beta = math.Min(beta, value)
		if beta <= alpha {
			break // alpha cut-off
		}
	}
	return value, nil
}

// Evaluate scores a state by searching below it with the full window, which
// lets a Minimax stand in wherever a game.Evaluator is expected.
func (m *Minimax) Evaluate(state game.State) (float64, error) {
	return m.search(state, m.depth, math.Inf(-1), math.Inf(1))
}

func (m *Minimax) Heuristic(state game.State) float64 {
	return m.eval.Heuristic(state)
}
