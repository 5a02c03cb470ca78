package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/dungeon-pcg/config"
	"github.com/lixenwraith/dungeon-pcg/genetic"
	"github.com/lixenwraith/dungeon-pcg/genetic/tracking"
	"github.com/lixenwraith/dungeon-pcg/report"
	"github.com/lixenwraith/dungeon-pcg/view"
)

var (
	runSeed       uint64
	runIterations int
	runTop        int
	runPlot       string
	runView       bool
	runQuiet      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evolve a population and print the best dungeons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Main.Seed = runSeed
		}
		if cmd.Flags().Changed("iterations") {
			cfg.MuLambda.Iterations = runIterations
		}
		setup, err := cfg.Build()
		if err != nil {
			return err
		}

		runID := ulid.Make().String()
		log.SetPrefix("[" + runID + "] ")
		log.Printf("run: strategy=%s %dx%d mu=%d lambda=%d iterations=%d seed=%d",
			setup.Kind, setup.Seed.Width, setup.Seed.Height,
			setup.Engine.Mu, setup.Engine.Lambda, setup.Engine.Iterations, setup.Engine.Seed)

		progress := cmd.ErrOrStderr()
		if runQuiet {
			progress = io.Discard
		}
		results, history, err := evolve(cmd.Context(), setup, progress)
		if err != nil {
			return fmt.Errorf("run %s: %w", runID, err)
		}

		glyphs := view.DefaultGlyphs().With(setup.Glyphs)
		out := cmd.OutOrStdout()
		for i, r := range results[:min(max(runTop, 0), len(results))] {
			fmt.Fprintf(out, "#%d fitness %.3f\n%s\n", i+1, r.Fitness, view.Text(r.Dungeon, glyphs))
		}

		title := fmt.Sprintf("%s %s", setup.Kind, runID)
		if runPlot != "" {
			if err := report.PlotHistory(history, title, runPlot); err != nil {
				return err
			}
			log.Printf("run: fitness plot written to %s", runPlot)
		}
		if runView {
			return browse(title, glyphs, results)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "engine seed, 0 for entropy (overrides main.seed)")
	runCmd.Flags().IntVar(&runIterations, "iterations", 0, "generations to run (overrides mu-lambda.iterations)")
	runCmd.Flags().IntVar(&runTop, "top", 1, "number of best dungeons to print")
	runCmd.Flags().StringVar(&runPlot, "plot", "", "write a fitness-per-generation chart to this file (.png, .svg, .pdf)")
	runCmd.Flags().BoolVar(&runView, "view", false, "browse the final population in the terminal")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "suppress per-generation progress")
	rootCmd.AddCommand(runCmd)
}

// evolve runs the engine and renders the ranked final population
func evolve(ctx context.Context, setup *config.Setup, progress io.Writer) ([]view.Result, []tracking.GenerationStats, error) {
	engine, err := genetic.NewMuLambda(setup.Template, setup.Aggregator.Calculate, setup.Engine)
	if err != nil {
		return nil, nil, err
	}
	engine.SetObserver(func(s tracking.GenerationStats) {
		fmt.Fprintf(progress, "generation %d/%d  best %.3f  avg %.3f  worst %.3f\n",
			s.Iteration+1, setup.Engine.Iterations, s.Best, s.Average, s.Worst)
	})

	members, err := engine.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	if best, err := engine.GetBest(); err == nil {
		log.Printf("evolve: best fitness %.3f from generation %d", best.Stat.Fitness, best.Stat.Iteration)
	}

	results := make([]view.Result, len(members))
	for i, m := range members {
		results[i] = view.Result{
			Dungeon:   m.Genotype.Generate(),
			Fitness:   m.Stat.Fitness,
			Iteration: m.Stat.Iteration,
		}
	}
	return results, engine.History(), nil
}

func browse(title string, glyphs view.Glyphs, results []view.Result) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	view.NewBrowser(screen, glyphs, title, results).Run()
	return nil
}
