// Package countup implements two small counting games: a deterministic race
// to 21 and a dice race with chance nodes. Both are primarily exercise
// material for the search algorithms, with game values small enough to check
// by hand.
package countup

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"gametree/game"
)

// Target is the total a player must reach or pass to win.
const Target = 21

// Move adds 1, 2 or 3 to the running total.
type Move struct {
	Add int
}

func (Move) IsStochastic() bool { return false }

// State is the running total plus the number of moves played so far.
type State struct {
	total int
	turn  int
}

// NewState builds a mid-game position, mainly for tests.
func NewState(total, turn int) State {
	return State{total: total, turn: turn}
}

func (s State) Total() int { return s.total }

func (s State) Player() game.Team {
	if s.turn%2 == 0 {
		return game.One
	}
	return game.Two
}

func (s State) LegalMoves() []game.Move {
	if s.IsTerminal() {
		return nil
	}
	return []game.Move{Move{Add: 1}, Move{Add: 2}, Move{Add: 3}}
}

func (s State) CountMoves() int {
	if s.IsTerminal() {
		return 0
	}
	return 3
}

func (s State) Play(m game.Move) game.State {
	mv := m.(Move)
	return State{total: s.total + mv.Add, turn: s.turn + 1}
}

func (s State) Hash() game.StateHash {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(s.total))
	binary.LittleEndian.PutUint64(buf[8:], uint64(s.turn))
	h.Write(buf[:])
	return game.StateHash(h.Sum64())
}

func (s State) IsTerminal() bool {
	return s.total >= Target
}

func (s State) Result() (game.Result, bool) {
	if !s.IsTerminal() {
		return game.Result{}, false
	}
	// The player who just pushed the total past the target wins.
	return game.Result{Winner: s.Player().Next()}, true
}

type Game struct{}

func (Game) Name() string { return "countup" }

func (Game) InitialState() game.State { return State{} }

func (Game) StartingTeam() game.Team { return game.One }

// Evaluator scores countup positions exactly. The side to move wins iff the
// remaining distance to the target is not a multiple of 4, so the evaluation
// is a solved-game oracle rather than a heuristic. Swapping the teams negates
// the score, making it safe for negamax.
type Evaluator struct{}

func (e Evaluator) Evaluate(s game.State) (float64, error) {
	st, ok := s.(State)
	if !ok {
		return 0, fmt.Errorf("countup: evaluator got state type %T", s)
	}
	return e.value(st), nil
}

func (e Evaluator) Heuristic(s game.State) float64 {
	st, ok := s.(State)
	if !ok {
		return 0
	}
	return e.value(st)
}

func (Evaluator) value(s State) float64 {
	if r, done := s.Result(); done {
		if r.Winner == game.One {
			return 100
		}
		return -100
	}
	winner := s.Player()
	if (Target-s.total)%4 == 0 {
		winner = winner.Next()
	}
	if winner == game.One {
		return 50
	}
	return -50
}
