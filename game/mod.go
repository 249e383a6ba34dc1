package game

// StateHash is a 64-bit signature identifying a state up to hash collisions.
// Implementations must return equal hashes for logically equal states. The
// zero value is reserved by the transposition cache as its empty-slot marker;
// route raw hashes through cache.Mix before using them as table keys.
type StateHash uint64

// Polarity is the evaluation direction of a team: a maximizing team prefers
// larger evaluator scores, a minimizing team smaller ones.
type Polarity int8

const (
	Maximizing Polarity = 1
	Minimizing Polarity = -1
)

func (p Polarity) Flip() Polarity {
	return -p
}

// Sign returns +1 for Maximizing and -1 for Minimizing.
func (p Polarity) Sign() int {
	return int(p)
}

// Team identifies one of the two alternating players. One always maximizes
// and Two always minimizes the evaluation.
type Team uint8

const (
	One Team = iota
	Two
)

func (t Team) Next() Team {
	if t == One {
		return Two
	}
	return One
}

func (t Team) Polarity() Polarity {
	if t == One {
		return Maximizing
	}
	return Minimizing
}

func (t Team) String() string {
	if t == One {
		return "one"
	}
	return "two"
}

// Result is the outcome of a finished game.
type Result struct {
	Winner Team
	Draw   bool
}

func (r Result) String() string {
	if r.Draw {
		return "draw"
	}
	return "winner " + r.Winner.String()
}

type Move interface {
	IsStochastic() bool
}

// State should be immutable - operations on State always return a new copy.
type State interface {
	// Player returns the team to move.
	Player() Team
	// LegalMoves returns all legal moves, or nothing on a terminal state.
	// Move order matters for iteration but not for correctness.
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	IsTerminal() bool
	// Result reports the game outcome; ok is false on non-terminal states.
	Result() (r Result, ok bool)
}

// MoveCounter is an optional fast path for states that can count their legal
// moves without materializing them.
type MoveCounter interface {
	CountMoves() int
}

// CountMoves returns the number of legal moves of s, using the MoveCounter
// fast path when the state provides one.
func CountMoves(s State) int {
	if mc, ok := s.(MoveCounter); ok {
		return mc.CountMoves()
	}
	return len(s.LegalMoves())
}

// Outcome is one possible resolution of a chance node.
type Outcome struct {
	State       State
	Probability float64
}

// ChanceState marks states whose next transition is decided by chance rather
// than by a player, such as a pending die roll. Outcome probabilities must
// sum to 1.
type ChanceState interface {
	State
	IsChanceNode() bool
	Outcomes() []Outcome
}

// Game ties a rule set to its starting conditions.
type Game interface {
	Name() string
	InitialState() State
	StartingTeam() Team
}

// Evaluator scores states for the search algorithms.
//
// Evaluate returns the desirability of a state independent of the side to
// move: positive favors the maximizing team, negative the minimizing team.
// It is called on terminal and horizon states and may fail, which aborts the
// search invocation that triggered it.
//
// Heuristic is a cheap, infallible estimate under the same sign convention,
// used only to order moves before recursing.
type Evaluator interface {
	Evaluate(s State) (float64, error)
	Heuristic(s State) float64
}

// MoveValue scores a legal move of a non-terminal state by evaluating the
// position it leads to with the evaluator's cheap heuristic.
func MoveValue(e Evaluator, s State, m Move) float64 {
	return e.Heuristic(s.Play(m))
}
