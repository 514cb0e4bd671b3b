package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/garlicgarrison/chess-motif-engine/analysispool"
	"github.com/garlicgarrison/chess-motif-engine/board"
	"github.com/garlicgarrison/chess-motif-engine/coach"
	"github.com/garlicgarrison/chess-motif-engine/lines"
	"github.com/garlicgarrison/chess-motif-engine/motif"
	"github.com/garlicgarrison/chess-motif-engine/tactics"
)

type Config struct {
	PieceValues tactics.Values `yaml:"piece_values"`
	Pool        int            `yaml:"pool"`
	Queue       int            `yaml:"queue"`
	Timeout     int            `yaml:"timeout"`
}

func defaultConfig() Config {
	return Config{
		PieceValues: tactics.DefaultValues(),
		Pool:        4,
		Queue:       256,
		Timeout:     10,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(raw, &cfg)
	return cfg, err
}

func newAnalyzer(cfg Config) (*motif.Analyzer, error) {
	oracle, err := tactics.NewOracle(cfg.PieceValues)
	if err != nil {
		return nil, err
	}

	return motif.NewAnalyzer(oracle, cfg.PieceValues)
}

func analyzeCmd() *cobra.Command {
	var fen string
	var uciLines []string
	var configPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Detect tactical motifs in a position and its continuations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			pos, err := board.NewPosition(fen)
			if err != nil {
				return err
			}

			analyzer, err := newAnalyzer(cfg)
			if err != nil {
				return err
			}

			tree := lines.NewTree(pos)
			for _, l := range uciLines {
				if err := tree.AddLine(strings.Fields(l)); err != nil {
					return fmt.Errorf("line %q: %w", l, err)
				}
			}

			lines.NewEvaluator(analyzer).Evaluate(tree)

			out, err := json.MarshalIndent(tree.Nodes(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			return nil
		},
	}

	cmd.Flags().StringVar(&fen, "fen", "", "position to analyze")
	cmd.Flags().StringArrayVar(&uciLines, "line", nil, "continuation as space-separated UCI moves (repeatable)")
	cmd.Flags().StringVar(&configPath, "config", "", "yaml config path")
	cmd.MarkFlagRequired("fen")

	return cmd
}

func scanCmd() *cobra.Command {
	var file string
	var configPath string
	var poolSize int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Analyze every FEN in a file through the analyzer pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if poolSize > 0 {
				cfg.Pool = poolSize
			}

			raw, err := ioutil.ReadFile(file)
			if err != nil {
				return err
			}

			unique := make(map[string]bool)
			var positions []*board.Position
			for _, line := range strings.Split(string(raw), "\n") {
				fen := strings.TrimSpace(line)
				if fen == "" {
					continue
				}

				pos, err := board.NewPosition(fen)
				if err != nil {
					log.Printf("skipping %q -- %s", fen, err)
					continue
				}
				if unique[pos.FEN()] {
					continue
				}

				unique[pos.FEN()] = true
				positions = append(positions, pos)
			}

			pool, err := analysispool.NewPool(cfg.PieceValues, cfg.Pool, cfg.Timeout)
			if err != nil {
				return err
			}

			var wg sync.WaitGroup
			wg.Add(len(positions))

			var mu sync.Mutex
			scanner := coach.NewScanner(pool, cfg.Queue, func(fen string, a *motif.Analysis) {
				defer wg.Done()

				out, err := json.Marshal(a)
				if err != nil {
					log.Printf("marshal error -- %s", err)
					return
				}

				mu.Lock()
				fmt.Println(string(out))
				mu.Unlock()
			})
			scanner.Start()
			defer scanner.Close()

			i := 0
			feeder := coach.NewFeeder(func() (*board.Position, bool) {
				if i >= len(positions) {
					return nil, false
				}

				pos := positions[i]
				i++
				return pos, true
			}, scanner)
			feeder.Start(cfg.Timeout)
			defer feeder.Close()

			wg.Wait()
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file with one FEN per line")
	cmd.Flags().StringVar(&configPath, "config", "", "yaml config path")
	cmd.Flags().IntVar(&poolSize, "pool", 0, "analyzer pool size (overrides config)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "motifscan",
		Short: "Chess tactical motif detection for coaching",
	}
	root.AddCommand(analyzeCmd(), scanCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
