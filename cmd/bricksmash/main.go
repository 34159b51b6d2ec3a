// bricksmash is a terminal Breakout-style arcade game.
//
// Usage:
//
//	bricksmash play          - Play in the current terminal
//	bricksmash serve         - Start SSH server for remote play
//	bricksmash scores        - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible particle bursts
//	--db <path>     - Set database path (default: ~/.bricksmash/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricksmash",
	Short: "Brick Smash - Breakout in your terminal",
	Long: `Brick Smash is a terminal rendition of the classic block-breaking
arcade game. Steer the paddle, keep the ball off the lava and clear
the wall of blocks.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  bricksmash play
  bricksmash play --seed 42 --mute
  bricksmash serve --ssh :2222
  bricksmash scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricksmash/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
