// kurumegrid is a tile-grid chase game for the terminal: guide the player
// token to the goal tile before the clock runs out, dodging patrolling
// enemies.
//
// Usage:
//
//	kurumegrid list              - List loadable levels
//	kurumegrid play [level-id]   - Play a level (or pick one from the title)
//	kurumegrid results [level]   - Show session results
//	kurumegrid serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60)
//	--db <path>      - Set database path (default: ~/.kurumegrid/results.db)
//	--levels <dir>   - Load levels from a directory instead of the built-in set
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmasubuchi/kurumegrid/internal/level"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kurumegrid",
	Short: "Tile-grid chase game for your terminal",
	Long: `kurumegrid is a terminal tile-grid game: reach the goal tile before
the time limit while patrolling enemies sweep the corridors.

Available commands:
  list     - Show all loadable levels
  play     - Play a level directly or pick one from the title screen
  results  - View past session results
  serve    - Start SSH server for remote play

Examples:
  kurumegrid list
  kurumegrid play 1
  kurumegrid play --levels ./mylevels
  kurumegrid serve --ssh :2222
  kurumegrid results 1`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kurumegrid/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

// openRepository loads the configured level set.
func openRepository() (*level.Repository, error) {
	if flagLevelsDir != "" {
		return level.LoadDir(flagLevelsDir)
	}
	return level.Default()
}
