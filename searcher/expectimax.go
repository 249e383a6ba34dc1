package searcher

import (
	"math"
	"time"

	"gametree/game"
)

// Expectimax extends minimax to games with chance nodes. A state marked as a
// chance node contributes the probability-weighted average of its outcome
// values; decision states fold their children with plain minimax. No pruning
// is applied anywhere: cutting a chance branch on a partial average is
// unsound, since an unseen outcome can move the expectation past any bound.
type Expectimax struct {
	depth int
	eval  game.Evaluator
}

func NewExpectimax(depth int, eval game.Evaluator) *Expectimax {
	if depth < 1 {
		panic("searcher: expectimax depth must be at least 1")
	}
	return &Expectimax{depth: depth, eval: eval}
}

// SelectMove returns the legal move leading to the best expected value under
// the mover's polarity. Ties keep the move found first.
func (e *Expectimax) SelectMove(state game.State, _ time.Duration) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}

	maximizing := state.Player().Polarity() == game.Maximizing
	var best game.Move
	bestValue := 0.0
	for i, mv := range moves {
		value, err := e.search(state.Play(mv), e.depth-1)
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

func (e *Expectimax) search(state game.State, depth int) (float64, error) {
	if depth == 0 || state.IsTerminal() {
		return e.eval.Evaluate(state)
	}

	if cs, ok := state.(game.ChanceState); ok && cs.IsChanceNode() {
		avg := 0.0
		for _, out := range cs.Outcomes() {
			v, err := e.search(out.State, depth-1)
			if err != nil {
				return 0, err
			}
			avg += v * out.Probability
		}
		return avg, nil
	}

	if state.Player().Polarity() == game.Maximizing {
		value := math.Inf(-1)
		for _, mv := range state.LegalMoves() {
			v, err := e.search(state.Play(mv), depth-1)
			if err != nil {
				return 0, err
			}
			value = math.Max(value, v)
		}
		return value, nil
	}

	value := math.Inf(1)
	for _, mv := range state.LegalMoves() {
		v, err := e.search(state.Play(mv), depth-1)
		if err != nil {
			return 0, err
		}
		value = math.Min(value, v)
	}
	return value, nil
}

// Evaluate exposes the expected value of a state, matching game.Evaluator.
func (e *Expectimax) Evaluate(state game.State) (float64, error) {
	return e.search(state, e.depth)
}

func (e *Expectimax) Heuristic(state game.State) float64 {
	return e.eval.Heuristic(state)
}
