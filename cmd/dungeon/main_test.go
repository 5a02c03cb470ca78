package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/dungeon-pcg/config"
)

const smallConfig = `
[main]
tiles_width = 15
tiles_height = 11
threads = 2
seed = 3

[mu-lambda]
mu = 4
lambda = 6
iterations = 3
strategy = "ListOfWalls"
evaluations = ["has_entrance_exit", "walkable_components"]
evaluation_weights = [1.0, -1.0]
`

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dungeon.toml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	useTempLogDir(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configPath = ""
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvolve_RankedResults(t *testing.T) {
	cfg, err := config.Parse(smallConfig)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	setup, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var progress bytes.Buffer
	results, history, err := evolve(context.Background(), setup, &progress)
	if err != nil {
		t.Fatalf("evolve: %v", err)
	}

	if len(results) != 10 {
		t.Errorf("expected mu+lambda = 10 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Fitness > results[i-1].Fitness {
			t.Errorf("results not ranked at %d: %v > %v", i, results[i].Fitness, results[i-1].Fitness)
		}
	}
	for _, r := range results {
		if r.Dungeon.Width() != 15 || r.Dungeon.Height() != 11 {
			t.Fatalf("expected 15x11 dungeons, got %dx%d", r.Dungeon.Width(), r.Dungeon.Height())
		}
	}
	if len(history) != 3 {
		t.Errorf("expected 3 generations of history, got %d", len(history))
	}
	if lines := strings.Count(progress.String(), "\n"); lines != 3 {
		t.Errorf("expected one progress line per generation, got %d", lines)
	}
}

func TestEvolve_Cancelled(t *testing.T) {
	cfg, err := config.Parse(smallConfig)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	setup, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := evolve(ctx, setup, &bytes.Buffer{}); err == nil {
		t.Error("expected cancellation error")
	}
}

func TestRunCommand_PrintsBest(t *testing.T) {
	path := writeConfig(t, smallConfig)
	plot := filepath.Join(t.TempDir(), "fitness.png")

	out, err := execute(t, "run", "--config", path, "--top", "2", "--quiet", "--plot", plot)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "#1 fitness") || !strings.Contains(out, "#2 fitness") {
		t.Errorf("expected two ranked dungeons, got:\n%s", out)
	}
	if _, err := os.Stat(plot); err != nil {
		t.Errorf("expected plot file: %v", err)
	}
}

func TestRunCommand_ConfigError(t *testing.T) {
	path := writeConfig(t, "[mu-lambda]\nstrategy = \"Cellular\"\n")

	_, err := execute(t, "run", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "mu-lambda.strategy") {
		t.Errorf("expected strategy key error, got %v", err)
	}
}

func TestSampleCommand(t *testing.T) {
	path := writeConfig(t, smallConfig)

	out, err := execute(t, "sample", "--config", path, "--strategy", "RandomSeed", "--seed", "5", "--count", "2")
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if strings.Count(out, "RandomSeed sample") != 2 {
		t.Errorf("expected two samples, got:\n%s", out)
	}
	if !strings.Contains(out, "walkable_components") || !strings.Contains(out, "fitness") {
		t.Errorf("expected evaluator breakdown, got:\n%s", out)
	}
}

func TestStrategiesCommand(t *testing.T) {
	out, err := execute(t, "strategies")
	if err != nil {
		t.Fatalf("strategies: %v", err)
	}
	for _, name := range []string{"RandomSeed", "ListOfWalls", "WallPatterns", "DesirableProperties", "check_1x1_rooms", "entrance_reaches_exit"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %s in listing", name)
		}
	}
}

func TestConfigCommand_RoundTrips(t *testing.T) {
	path := writeConfig(t, smallConfig)

	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg, err := config.Parse(out)
	if err != nil {
		t.Fatalf("printed config does not parse: %v", err)
	}
	if cfg.MuLambda.Strategy != "ListOfWalls" || cfg.Main.TilesWidth != 15 {
		t.Errorf("unexpected printed config: %+v", cfg.Main)
	}
}
