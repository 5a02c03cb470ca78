package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/dungeon-pcg/config"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Evolve dungeon layouts with a mu+lambda strategy",
	Long: `dungeon evolves grid dungeons with one of four generation strategies
and ranks them by weighted structural evaluators.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logFile := setupLogging(debug); logFile != nil {
			cobra.OnFinalize(func() { logFile.Close() })
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file (default "+config.DefaultPath+" when present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
}

// loadConfig reads the --config file, the default file when present, or the built-in defaults
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if _, err := os.Stat(config.DefaultPath); err == nil {
		return config.Load(config.DefaultPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", config.DefaultPath, err)
	}
	return config.Default(), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
