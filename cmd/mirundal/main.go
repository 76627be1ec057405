// Package main is the entry point for the mirundal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mirundal",
	Short: "Wizardry-style town navigator",
	Long: `Mirundal runs a Wizardry-style town on the terminal: guild, shop,
inn, temple and magic guild, plus deterministic dungeon floors, all
driven through a back-navigable menu stack.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dataCmd)
}
