package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/dungeon-pcg/view"
)

var (
	sampleStrategy string
	sampleSeed     uint64
	sampleCount    int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate unevolved dungeons and show their evaluator scores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if sampleStrategy != "" {
			cfg.MuLambda.Strategy = sampleStrategy
		}
		setup, err := cfg.Build()
		if err != nil {
			return err
		}

		seed := sampleSeed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed))
		glyphs := view.DefaultGlyphs().With(setup.Glyphs)
		out := cmd.OutOrStdout()

		for i := 0; i < sampleCount; i++ {
			d := setup.Template.Initialize(rng).Generate()
			metrics := setup.Aggregator.Measure(d)

			fmt.Fprintf(out, "%s sample %d (seed %d)\n%s", setup.Kind, i+1, seed, view.Text(d, glyphs))
			for _, term := range setup.Aggregator.Terms() {
				fmt.Fprintf(out, "  %-22s %8.3f x %6.2f\n", term.Name, metrics.Get(term.Name, 0), term.Weight)
			}
			fmt.Fprintf(out, "  %-22s %8.3f\n\n", "fitness", setup.Aggregator.Weigh(metrics))
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleStrategy, "strategy", "s", "", "strategy to sample (overrides mu-lambda.strategy)")
	sampleCmd.Flags().Uint64Var(&sampleSeed, "seed", 0, "sampling seed, 0 for entropy")
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 1, "number of dungeons")
	rootCmd.AddCommand(sampleCmd)
}
