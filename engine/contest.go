// Package engine runs matches between two agents. It owns the turn loop and
// the wall-clock budget; the agents own everything below a single move.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gametree/game"
	"gametree/searcher"
)

// ErrBudgetExceeded reports an agent overrunning its per-move budget. The
// contest aborts between move evaluations; it cannot interrupt an agent
// mid-search.
var ErrBudgetExceeded = errors.New("engine: agent exceeded move budget")

// DefaultMaxTurns caps runaway games that never reach a terminal state.
const DefaultMaxTurns = 500

// Record is one played move.
type Record struct {
	Turn    int
	Team    game.Team
	Move    game.Move
	Hash    game.StateHash
	Elapsed time.Duration
}

// Outcome is a finished (or aborted) contest.
type Outcome struct {
	Result  game.Result
	Done    bool // false if the turn cap was hit first
	Turns   int
	History []Record
}

// Contest alternates two agents over a game until a terminal state or the
// turn cap.
type Contest struct {
	id         string
	game       game.Game
	agents     [2]searcher.Agent
	moveBudget time.Duration
	maxTurns   int
}

type Option func(*Contest)

// WithMoveBudget enforces a wall-clock limit per move. Zero disables the
// check.
func WithMoveBudget(budget time.Duration) Option {
	return func(c *Contest) {
		if budget > 0 {
			c.moveBudget = budget
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(c *Contest) {
		if turns > 0 {
			c.maxTurns = turns
		}
	}
}

// New creates a contest between agent one (maximizing) and agent two
// (minimizing). Both agents are required.
func New(g game.Game, one, two searcher.Agent, options ...Option) *Contest {
	if one == nil || two == nil {
		panic("engine: contest needs two agents")
	}
	c := &Contest{
		id:       uuid.NewString(),
		game:     g,
		agents:   [2]searcher.Agent{one, two},
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Contest) ID() string { return c.id }

// Run plays the game to completion and returns its outcome together with the
// full move history.
func (c *Contest) Run() (Outcome, error) {
	state := c.game.InitialState()
	outcome := Outcome{}

	log.Info().
		Str("contest", c.id).
		Str("game", c.game.Name()).
		Str("starting_team", c.game.StartingTeam().String()).
		Msg("contest started")

	for turn := 1; !state.IsTerminal(); turn++ {
		if turn > c.maxTurns {
			log.Warn().Str("contest", c.id).Int("max_turns", c.maxTurns).
				Msg("turn cap reached without a terminal state")
			return outcome, nil
		}

		team := state.Player()
		agent := c.agents[team]

		start := time.Now()
		move, err := agent.SelectMove(state, c.moveBudget)
		elapsed := time.Since(start)
		if err != nil {
			return outcome, fmt.Errorf("engine: team %s failed on turn %d: %w", team, turn, err)
		}
		if c.moveBudget > 0 && elapsed > c.moveBudget {
			return outcome, fmt.Errorf("%w: team %s took %s of %s on turn %d",
				ErrBudgetExceeded, team, elapsed, c.moveBudget, turn)
		}

		state = state.Play(move)
		outcome.Turns = turn
		outcome.History = append(outcome.History, Record{
			Turn:    turn,
			Team:    team,
			Move:    move,
			Hash:    state.Hash(),
			Elapsed: elapsed,
		})

		log.Debug().
			Str("contest", c.id).
			Int("turn", turn).
			Str("team", team.String()).
			Dur("elapsed", elapsed).
			Msg("move played")
	}

	result, ok := state.Result()
	if !ok {
		return outcome, fmt.Errorf("engine: terminal state of %s reports no result", c.game.Name())
	}
	outcome.Result = result
	outcome.Done = true

	log.Info().
		Str("contest", c.id).
		Int("turns", outcome.Turns).
		Str("result", result.String()).
		Msg("contest finished")

	return outcome, nil
}
