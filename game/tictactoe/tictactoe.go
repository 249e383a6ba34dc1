// Package tictactoe implements 3x3 tic-tac-toe. Team One plays X and
// maximizes, team Two plays O and minimizes. Its fully known game tree
// (perft(9) == 255168) anchors the perft and search tests.
package tictactoe

import (
	"fmt"
	"hash/fnv"
	"strings"

	"gametree/game"
)

type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// Move is a board index, row-major from the top-left corner.
type Move int

func (Move) IsStochastic() bool { return false }

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

type State struct {
	board [9]Cell
	turn  int
}

func (s State) Cell(i int) Cell { return s.board[i] }

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
	moves := make([]game.Move, 0, 9-s.turn)
	for i, c := range s.board {
		if c == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

func (s State) CountMoves() int {
	if s.IsTerminal() {
		return 0
	}
	return 9 - s.turn
}

func (s State) Play(m game.Move) game.State {
	mv := m.(Move)
	next := s
	if s.Player() == game.One {
		next.board[mv] = X
	} else {
		next.board[mv] = O
	}
	next.turn++
	return next
}

func (s State) Hash() game.StateHash {
	h := fnv.New64a()
	var buf [9]byte
	for i, c := range s.board {
		buf[i] = byte(c)
	}
	h.Write(buf[:])
	return game.StateHash(h.Sum64())
}

func (s State) winner() Cell {
	for _, l := range lines {
		c := s.board[l[0]]
		if c != Empty && c == s.board[l[1]] && c == s.board[l[2]] {
			return c
		}
	}
	return Empty
}

func (s State) IsTerminal() bool {
	return s.turn == 9 || s.winner() != Empty
}

func (s State) Result() (game.Result, bool) {
	switch s.winner() {
	case X:
		return game.Result{Winner: game.One}, true
	case O:
		return game.Result{Winner: game.Two}, true
	}
	if s.turn == 9 {
		return game.Result{Draw: true}, true
	}
	return game.Result{}, false
}

func (s State) String() string {
	var b strings.Builder
	for i, c := range s.board {
		switch c {
		case X:
			b.WriteByte('X')
		case O:
			b.WriteByte('O')
		default:
			b.WriteByte('.')
		}
		if i%3 == 2 && i != 8 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type Game struct{}

func (Game) Name() string { return "tictactoe" }

func (Game) InitialState() game.State { return State{} }

func (Game) StartingTeam() game.Team { return game.One }

// Evaluator scores boards by line potential: each line open for exactly one
// side is worth 1, 10 or 100 for one, two or three own marks, positive for X.
// Swapping the marks negates the score, so it is safe for negamax.
type Evaluator struct{}

func (e Evaluator) Evaluate(s game.State) (float64, error) {
	st, ok := s.(State)
	if !ok {
		return 0, fmt.Errorf("tictactoe: evaluator got state type %T", s)
	}
	return e.score(st), nil
}

func (e Evaluator) Heuristic(s game.State) float64 {
	st, ok := s.(State)
	if !ok {
		return 0
	}
	return e.score(st)
}

var lineWeight = [4]float64{0, 1, 10, 100}

func (Evaluator) score(s State) float64 {
	total := 0.0
	for _, l := range lines {
		xs, os := 0, 0
		for _, i := range l {
			switch s.board[i] {
			case X:
				xs++
			case O:
				os++
			}
		}
		switch {
		case os == 0:
			total += lineWeight[xs]
		case xs == 0:
			total -= lineWeight[os]
		}
	}
	return total
}
