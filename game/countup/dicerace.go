package countup

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"gametree/game"
)

// DiceRace is the chance-node variant: both players race their piece to
// Target squares. Each turn begins with a pending die roll, a chance node
// with six equally likely outcomes; once the roll is fixed the mover advances
// by one square or by the rolled amount. First to reach the target wins.
type DiceRace struct {
	Target int
}

func (DiceRace) Name() string { return "dicerace" }

func (g DiceRace) InitialState() game.State {
	return DiceState{target: g.Target}
}

func (DiceRace) StartingTeam() game.Team { return game.One }

// Step advances the mover's piece.
type Step struct {
	Squares int
}

func (Step) IsStochastic() bool { return false }

// DiceState is a dice race position. A roll of zero means the die has not
// been rolled yet, which makes the state a chance node.
type DiceState struct {
	target    int
	positions [2]int
	turn      int
	roll      int
}

// NewDiceState builds a mid-game position, mainly for tests.
func NewDiceState(target int, positions [2]int, turn, roll int) DiceState {
	return DiceState{target: target, positions: positions, turn: turn, roll: roll}
}

func (s DiceState) Positions() [2]int { return s.positions }

func (s DiceState) Player() game.Team {
	if s.turn%2 == 0 {
		return game.One
	}
	return game.Two
}

func (s DiceState) IsChanceNode() bool {
	return s.roll == 0 && !s.IsTerminal()
}

func (s DiceState) Outcomes() []game.Outcome {
	outcomes := make([]game.Outcome, 0, 6)
	for roll := 1; roll <= 6; roll++ {
		next := s
		next.roll = roll
		outcomes = append(outcomes, game.Outcome{State: next, Probability: 1.0 / 6.0})
	}
	return outcomes
}

func (s DiceState) LegalMoves() []game.Move {
	if s.IsTerminal() || s.roll == 0 {
		return nil
	}
	if s.roll == 1 {
		return []game.Move{Step{Squares: 1}}
	}
	return []game.Move{Step{Squares: 1}, Step{Squares: s.roll}}
}

func (s DiceState) Play(m game.Move) game.State {
	mv := m.(Step)
	next := s
	if s.Player() == game.One {
		next.positions[0] += mv.Squares
	} else {
		next.positions[1] += mv.Squares
	}
	next.turn++
	next.roll = 0
	return next
}

func (s DiceState) Hash() game.StateHash {
	h := fnv.New64a()
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(s.positions[0]))
	binary.LittleEndian.PutUint64(buf[8:], uint64(s.positions[1]))
	binary.LittleEndian.PutUint64(buf[16:], uint64(s.turn))
	binary.LittleEndian.PutUint64(buf[24:], uint64(s.roll))
	h.Write(buf[:])
	return game.StateHash(h.Sum64())
}

func (s DiceState) IsTerminal() bool {
	return s.positions[0] >= s.target || s.positions[1] >= s.target
}

func (s DiceState) Result() (game.Result, bool) {
	switch {
	case s.positions[0] >= s.target:
		return game.Result{Winner: game.One}, true
	case s.positions[1] >= s.target:
		return game.Result{Winner: game.Two}, true
	default:
		return game.Result{}, false
	}
}

// DiceEvaluator scores a race position by each side's progress: +100/-100 at
// the finish, otherwise the signed lead in squares.
type DiceEvaluator struct{}

func (e DiceEvaluator) Evaluate(s game.State) (float64, error) {
	st, ok := s.(DiceState)
	if !ok {
		return 0, fmt.Errorf("countup: dice evaluator got state type %T", s)
	}
	return e.value(st), nil
}

func (e DiceEvaluator) Heuristic(s game.State) float64 {
	st, ok := s.(DiceState)
	if !ok {
		return 0
	}
	return e.value(st)
}

func (DiceEvaluator) value(s DiceState) float64 {
	if r, done := s.Result(); done {
		if r.Winner == game.One {
			return 100
		}
		return -100
	}
	return float64(s.positions[0] - s.positions[1])
}
