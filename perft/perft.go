// Package perft exhaustively counts the states reachable from a position to
// a fixed depth. Perft runs validate a game model's move generator against
// known node counts and double as a throughput benchmark for it.
package perft

import (
	"time"

	"github.com/rs/zerolog/log"

	"gametree/cache"
	"gametree/game"
)

// Result reports one enumeration run.
type Result struct {
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
}

// NodesPerSecond returns the run's throughput.
func (r Result) NodesPerSecond() Nps {
	if r.Elapsed <= 0 {
		return 0
	}
	return Nps(float64(r.Nodes) / r.Elapsed.Seconds())
}

// Run counts all states reachable from state within depth plies.
func Run(state game.State, depth int) Result {
	start := time.Now()
	nodes := count(state, depth)
	return Result{Depth: depth, Nodes: nodes, Elapsed: time.Since(start)}
}

func count(state game.State, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	// Terminal states have no further branching regardless of remaining
	// depth.
	if state.IsTerminal() {
		return 1
	}
	// One ply left: the children are exactly the legal moves, no need to
	// materialize them.
	if depth == 1 {
		return uint64(game.CountMoves(state))
	}

	var nodes uint64
	for _, mv := range state.LegalMoves() {
		nodes += count(state.Play(mv), depth-1)
	}
	return nodes
}

// RunCached is Run with subtree counts memoized in a transposition table for
// the top tableDepth levels. Below that threshold recursion continues
// uncached, since near-leaf subtrees are cheaper to recount than to cache.
// Caching never changes the node count, only the time to compute it.
//
// Counts are keyed by state signature alone, without the remaining depth, so
// a table is only valid for the single (state, depth) run that filled it:
// either the game's hash must determine the ply, or the table must be fresh.
func RunCached(state game.State, depth, tableDepth int, table *cache.Table[uint64]) Result {
	start := time.Now()
	nodes := countCached(state, depth, tableDepth, table)
	elapsed := time.Since(start)

	log.Debug().
		Int("depth", depth).
		Int("table_depth", tableDepth).
		Uint64("nodes", nodes).
		Int("table_size", table.Size()).
		Float64("load_factor", table.LoadFactor()).
		Uint64("table_hits", table.Hits()).
		Dur("elapsed", elapsed).
		Msg("perft run complete")

	return Result{Depth: depth, Nodes: nodes, Elapsed: elapsed}
}

func countCached(state game.State, depth, tableDepth int, table *cache.Table[uint64]) uint64 {
	if depth == 0 {
		return 1
	}
	if state.IsTerminal() {
		return 1
	}
	if depth == 1 {
		return uint64(game.CountMoves(state))
	}

	var nodes uint64
	for _, mv := range state.LegalMoves() {
		child := state.Play(mv)
		if tableDepth == 0 {
			nodes += count(child, depth-1)
			continue
		}

		key := cache.Mix(uint64(child.Hash()))
		if cached, ok := table.Get(key); ok {
			nodes += cached
			continue
		}
		childNodes := countCached(child, depth-1, tableDepth-1, table)
		table.Put(key, childNodes)
		nodes += childNodes
	}
	return nodes
}

// Incremental runs perft for every depth in [from, to], sizing the memoized
// levels per depth through tableDepthFor. Node counts across depths make
// move-generator defects easy to localize.
func Incremental(state game.State, from, to int, tableDepthFor func(depth int) int, table *cache.Table[uint64]) []Result {
	results := make([]Result, 0, to-from+1)
	for depth := from; depth <= to; depth++ {
		table.Clear()
		results = append(results, RunCached(state, depth, tableDepthFor(depth), table))
	}
	return results
}
