package searcher

import (
	"errors"

	"gametree/game"
)

type mockMove struct {
	id         int
	stochastic bool
}

func (m mockMove) IsStochastic() bool {
	return m.stochastic
}

type mockState struct {
	team     game.Team
	moves    []game.Move
	played   []game.Move
	hash     game.StateHash
	terminal bool
	result   game.Result
}

func (m mockState) Player() game.Team {
	return m.team
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	next := m
	next.played = append(append([]game.Move{}, m.played...), move)
	next.moves = nil
	next.team = m.team.Next()
	return next
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) IsTerminal() bool {
	return m.terminal
}

func (m mockState) Result() (game.Result, bool) {
	return m.result, m.terminal
}

var errEvalBroken = errors.New("broken evaluator")

// failingEvaluator errors on every Evaluate call, for exercising error
// propagation through the recursion.
type failingEvaluator struct{}

func (failingEvaluator) Evaluate(game.State) (float64, error) {
	return 0, errEvalBroken
}

func (failingEvaluator) Heuristic(game.State) float64 {
	return 0
}
