package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bird-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the built-in YAML config for a game.

Save the output to ~/.arcade/configs/<game>.yaml to override the defaults,
or pass an edited copy with --config.

Examples:
  arcade config flappy > ~/.arcade/configs/flappy.yaml
  arcade config crossy`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no config for game %q\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
