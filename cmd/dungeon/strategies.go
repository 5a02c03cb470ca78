package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/dungeon-pcg/evaluate"
	"github.com/lixenwraith/dungeon-pcg/strategy"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List generation strategies and evaluators",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "strategies:")
		for _, k := range strategy.Kinds() {
			fmt.Fprintf(out, "  %s\n", k)
		}
		fmt.Fprintln(out, "evaluators:")
		for _, name := range evaluate.Registry().Names() {
			fmt.Fprintf(out, "  %s\n", name)
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		text, err := cfg.Encode()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd, configCmd)
}
