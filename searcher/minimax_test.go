package searcher

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gametree/game"
	"gametree/game/countup"
)

// plainMinimax is an unpruned reference implementation: same recursion, no
// bounds, no move ordering.
func plainMinimax(t *testing.T, eval game.Evaluator, state game.State, depth int) float64 {
	t.Helper()

	if depth == 0 || state.IsTerminal() {
		v, err := eval.Evaluate(state)
		require.NoError(t, err)
		return v
	}

	maximizing := state.Player().Polarity() == game.Maximizing
	value := math.Inf(1)
	if maximizing {
		value = math.Inf(-1)
	}
	for _, mv := range state.LegalMoves() {
		v := plainMinimax(t, eval, state.Play(mv), depth-1)
		if maximizing {
			value = math.Max(value, v)
		} else {
			value = math.Min(value, v)
		}
	}
	return value
}

func TestMinimaxMatchesUnprunedSearch(t *testing.T) {
	eval := countup.Evaluator{}

	// Pruning and move ordering must change cost only, never the value.
	for depth := 1; depth <= 6; depth++ {
		for _, total := range []int{0, 5, 10, 13, 17, 20} {
			for turn := 0; turn <= 1; turn++ {
				state := countup.NewState(total, turn)
				want := plainMinimax(t, eval, state, depth)

				got, err := NewMinimax(depth, eval).Evaluate(state)
				require.NoError(t, err)
				require.InDelta(t, want, got, 1e-9,
					"pruned and unpruned values differ at depth %d, total %d, turn %d",
					depth, total, turn)
			}
		}
	}
}

func TestMinimaxSelectsImmediateWin(t *testing.T) {
	m := NewMinimax(3, countup.Evaluator{})

	// Team one (maximizing) can reach 21 directly.
	move, err := m.SelectMove(countup.NewState(18, 0), time.Second)
	require.NoError(t, err)
	require.Equal(t, countup.Move{Add: 3}, move)

	// So can team two (minimizing).
	move, err = m.SelectMove(countup.NewState(19, 1), time.Second)
	require.NoError(t, err)
	require.Equal(t, countup.Move{Add: 2}, move)
}

func TestMinimaxTiesKeepEarliestMove(t *testing.T) {
	// From 13 the side to move loses with perfect play, so at depth 1 all
	// three replies score the same and the first one must win the tie.
	m := NewMinimax(1, countup.Evaluator{})

	move, err := m.SelectMove(countup.NewState(13, 0), time.Second)
	require.NoError(t, err)
	require.Equal(t, countup.Move{Add: 1}, move)
}

func TestMinimaxNoMoves(t *testing.T) {
	m := NewMinimax(2, countup.Evaluator{})

	_, err := m.SelectMove(countup.NewState(countup.Target, 4), time.Second)
	require.ErrorIs(t, err, ErrNoMoves,
		"Move selection on a state without legal moves must fail")
}

func TestMinimaxPropagatesEvaluatorError(t *testing.T) {
	m := NewMinimax(1, failingEvaluator{})
	state := mockState{moves: []game.Move{mockMove{id: 1}}}

	_, err := m.SelectMove(state, time.Second)
	require.ErrorIs(t, err, errEvalBroken,
		"An evaluator failure must abort the search invocation")
}

func TestMinimaxCountsEvaluatedStates(t *testing.T) {
	m := NewMinimax(2, countup.Evaluator{})

	_, err := m.Evaluate(countup.NewState(0, 0))
	require.NoError(t, err)
	require.NotZero(t, m.Evaluated, "Horizon states must be counted")
}

func TestMinimaxDepthValidation(t *testing.T) {
	require.Panics(t, func() { NewMinimax(0, countup.Evaluator{}) })
}
