package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/dungeon-pcg/genetic"
	"github.com/lixenwraith/dungeon-pcg/strategy"
)

func TestDefault_Valid(t *testing.T) {
	setup, err := Default().Build()
	if err != nil {
		t.Fatalf("default config must build: %v", err)
	}
	if setup.Kind != strategy.KindDesirableProperties {
		t.Errorf("expected DesirableProperties, got %s", setup.Kind)
	}
	if setup.Engine.Mu != 100 || setup.Engine.Lambda != 100 || setup.Engine.Iterations != 100 {
		t.Errorf("unexpected engine defaults: %+v", setup.Engine)
	}
	if setup.Engine.Parents != genetic.ParentsSurvivors {
		t.Errorf("expected survivors, got %q", setup.Engine.Parents)
	}
	if setup.Seed.Width != 50 || setup.Seed.Height != 50 {
		t.Errorf("expected 50x50, got %dx%d", setup.Seed.Width, setup.Seed.Height)
	}
}

func TestDefault_FreshCopies(t *testing.T) {
	a := Default()
	a.Cells.Tiles[0] = "lava"
	a.Patterns.Rooms["open"][0] = "#####"

	b := Default()
	if b.Cells.Tiles[0] != "floor" {
		t.Errorf("defaults share the tiles slice")
	}
	if b.Patterns.Rooms["open"][0] != "....." {
		t.Errorf("defaults share the pattern library")
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.toml")
	text := `
[main]
tiles_width = 20
tiles_height = 15
threads = 3
seed = 7

[mu-lambda]
mu = 10
lambda = 30
strategy = "ListOfWalls"
parents = "laggards"
evaluations = ["has_entrance_exit", "doors_are_useful"]
evaluation_weights = [5.0, -2.0]

[glyphs]
monster = "M"
`
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	setup, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if setup.Seed.Width != 20 || setup.Seed.Height != 15 {
		t.Errorf("expected 20x15, got %dx%d", setup.Seed.Width, setup.Seed.Height)
	}
	want := genetic.EngineConfig{
		Mu:           10,
		Lambda:       30,
		MutationRate: 0.33,
		Iterations:   100,
		Parallelism:  3,
		Seed:         7,
		Parents:      genetic.ParentsLaggards,
	}
	if setup.Engine != want {
		t.Errorf("expected %+v, got %+v", want, setup.Engine)
	}
	if setup.Kind != strategy.KindListOfWalls || setup.Template.Kind() != strategy.KindListOfWalls {
		t.Errorf("expected ListOfWalls template, got %s", setup.Template.Kind())
	}

	terms := setup.Aggregator.Terms()
	if len(terms) != 2 || terms[0].Name != "has_entrance_exit" || terms[1].Weight != -2.0 {
		t.Errorf("unexpected terms: %+v", terms)
	}
	if setup.Glyphs["monster"] != 'M' {
		t.Errorf("expected monster glyph M, got %q", setup.Glyphs["monster"])
	}
	if cfg.Desirable.RoomSize != 9 {
		t.Errorf("untouched sections must keep defaults, got room_size %d", cfg.Desirable.RoomSize)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParse_ErrorsNameKey(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
	}{
		{"width", "[main]\ntiles_width = 0", "main.tiles_width"},
		{"threads", "[main]\nthreads = -1", "main.threads"},
		{"unknown key", "[main]\ncolour = 1", "main.colour"},
		{"duplicate tile", "[cells]\ntiles = [\"floor\", \"floor\"]", "cells.tiles"},
		{"occupant chance", "[cells]\noccupant_chance = 2.0", "cells.occupant_chance"},
		{"mu", "[mu-lambda]\nmu = 0", "mu-lambda.mu"},
		{"mutation", "[mu-lambda]\nmutation = 1.5", "mu-lambda.mutation"},
		{"strategy", "[mu-lambda]\nstrategy = \"Cellular\"", "mu-lambda.strategy"},
		{"parents", "[mu-lambda]\nparents = \"elders\"", "mu-lambda.parents"},
		{"evaluation", "[mu-lambda]\nevaluations = [\"nope\"]\nevaluation_weights = [1.0]", "mu-lambda.evaluations[0]"},
		{"weights", "[mu-lambda]\nevaluation_weights = [1.0]", "mu-lambda.evaluation_weights"},
		{"room size", "[desirable_patterns]\nroom_size = 2", "desirable_patterns"},
		{"coverage", "[mu-lambda]\nstrategy = \"ListOfWalls\"\n[list-of-walls]\ncoverage = 1.5", "list-of-walls"},
		{"pattern width type", "[mu-lambda]\nstrategy = \"WallPatterns\"\n[wallpatterns.tiles]\nwidth = \"five\"\nheight = 5", "wallpatterns.tiles.width"},
		{"pattern rows", "[mu-lambda]\nstrategy = \"WallPatterns\"\n[wallpatterns.tiles]\nwidth = 3\nheight = 3\nfloor = \".\"\n[wallpatterns.rooms]\nbad = [\"...\", \"...\"]", "wallpatterns.rooms.bad"},
		{"glyph", "[glyphs]\nfloor = \"ab\"", "glyphs.floor"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.text)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.key) {
			t.Errorf("%s: expected error naming %q, got %v", tt.name, tt.key, err)
		}
	}
}

func TestParse_PatternLibraryReplaced(t *testing.T) {
	text := `
[mu-lambda]
strategy = "WallPatterns"

[wallpatterns.tiles]
width = 2
height = 2
floor = "."
wall = "#"

[wallpatterns.rooms]
post = ["#.", ".."]
`
	cfg, err := Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cfg.Patterns.Rooms) != 1 {
		t.Errorf("expected the configured library only, got %d patterns", len(cfg.Patterns.Rooms))
	}

	setup, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if setup.Template.Kind() != strategy.KindWallPatterns {
		t.Errorf("expected WallPatterns, got %s", setup.Template.Kind())
	}
}

func TestEncode_ParsesBack(t *testing.T) {
	cfg := Default()
	cfg.Main.Seed = 99

	text, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Parse(text)
	if err != nil {
		t.Fatalf("parse encoded config: %v", err)
	}
	if back.Main.Seed != 99 || back.MuLambda.Strategy != cfg.MuLambda.Strategy {
		t.Errorf("expected seed 99 and %s, got %d and %s", cfg.MuLambda.Strategy, back.Main.Seed, back.MuLambda.Strategy)
	}
}
