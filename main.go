package main

import (
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"gametree/cache"
	"gametree/engine"
	"gametree/game/tictactoe"
	"gametree/perft"
	"gametree/searcher"
)

type config struct {
	LogLevel string `yaml:"log_level"`

	Perft struct {
		Depth      int `yaml:"depth"`
		TableDepth int `yaml:"table_depth"`
		TableSlots int `yaml:"table_slots"`
	} `yaml:"perft"`

	Match struct {
		Depth      int    `yaml:"depth"`
		MoveBudget string `yaml:"move_budget"`
		MaxTurns   int    `yaml:"max_turns"`
	} `yaml:"match"`
}

func defaultConfig() config {
	cfg := config{LogLevel: "info"}
	cfg.Perft.Depth = 9
	cfg.Perft.TableDepth = 5
	cfg.Perft.TableSlots = 1 << 16
	cfg.Match.Depth = 9
	cfg.Match.MoveBudget = "5s"
	return cfg
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	out := termenv.NewOutput(os.Stdout)

	runPerft(out, cfg)
	runMatch(out, cfg)
}

func runPerft(out *termenv.Output, cfg config) {
	state := tictactoe.Game{}.InitialState()

	fmt.Fprintln(out, out.String("perft: tic-tac-toe").Bold())

	plain := perft.Run(state, cfg.Perft.Depth)
	printRun(out, "uncached", plain)

	table := cache.New[uint64](cfg.Perft.TableSlots)
	cached := perft.RunCached(state, cfg.Perft.Depth, cfg.Perft.TableDepth, table)
	printRun(out, "cached", cached)

	if plain.Nodes != cached.Nodes {
		log.Fatal().Uint64("uncached", plain.Nodes).Uint64("cached", cached.Nodes).
			Msg("cached enumeration diverged")
	}
	fmt.Fprintf(out, "  table: %d entries, %.0f%% load, %d hits\n",
		table.Size(), 100*table.LoadFactor(), table.Hits())
}

func printRun(out *termenv.Output, label string, r perft.Result) {
	nodes := out.String(fmt.Sprintf("%d nodes", r.Nodes)).Foreground(termenv.ANSICyan)
	fmt.Fprintf(out, "  %-8s depth %d: %s in %s (%s)\n",
		label, r.Depth, nodes, r.Elapsed.Round(time.Microsecond), r.NodesPerSecond())
}

func runMatch(out *termenv.Output, cfg config) {
	budget, err := time.ParseDuration(cfg.Match.MoveBudget)
	if err != nil {
		log.Fatal().Err(err).Str("move_budget", cfg.Match.MoveBudget).Msg("bad move budget")
	}

	one := searcher.NewMinimax(cfg.Match.Depth, tictactoe.Evaluator{})
	two := searcher.NewNegamax(cfg.Match.Depth, tictactoe.Evaluator{})
	contest := engine.New(tictactoe.Game{}, one, two,
		engine.WithMoveBudget(budget),
		engine.WithMaxTurns(cfg.Match.MaxTurns))

	fmt.Fprintln(out, out.String("match: minimax vs negamax").Bold())

	outcome, err := contest.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("contest failed")
	}
	if !outcome.Done {
		fmt.Fprintf(out, "  aborted after %d turns\n", outcome.Turns)
		return
	}

	result := out.String(outcome.Result.String()).Foreground(termenv.ANSIGreen)
	fmt.Fprintf(out, "  %s after %d turns\n", result, outcome.Turns)
	for _, record := range outcome.History {
		fmt.Fprintf(out, "  turn %d: team %s played %v in %s\n",
			record.Turn, record.Team, record.Move, record.Elapsed.Round(time.Microsecond))
	}
}
