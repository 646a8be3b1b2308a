package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmasubuchi/kurumegrid/internal/assets"
	"github.com/dmasubuchi/kurumegrid/internal/core"
	"github.com/dmasubuchi/kurumegrid/internal/game"
	"github.com/dmasubuchi/kurumegrid/internal/platform/tui"
	"github.com/dmasubuchi/kurumegrid/internal/storage"
)

var (
	flagAssets    string
	flagTimeLimit int
	flagDebug     bool
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play a level",
	Long: `Start a game session. With a level id the session begins immediately;
without one the title screen lets you pick a level.

Controls:
  Arrows     - Move one tile
  Esc        - End session
  R          - Retry (after a session ends)
  Q/Ctrl+C   - Quit

Examples:
  kurumegrid play
  kurumegrid play 2
  kurumegrid play 1 --time-limit 60
  kurumegrid play --assets ./my-assets.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Path to custom asset config YAML")
	playCmd.Flags().IntVar(&flagTimeLimit, "time-limit", 0, "Session time limit in seconds (0 = default)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log per-frame events to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	startID := 0
	if len(args) == 1 {
		id, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			fmt.Fprintf(os.Stderr, "Error: level id must be a number, got %q\n", args[0])
			os.Exit(1)
		}
		if _, findErr := repo.Find(id); findErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", findErr)
			fmt.Fprintln(os.Stderr, "Run 'kurumegrid list' to see loadable levels.")
			os.Exit(1)
		}
		startID = id
	}

	assetCfg, err := assets.Load(flagAssets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	gameCfg := game.DefaultConfig()
	if flagTimeLimit > 0 {
		gameCfg.TimeLimit = flagTimeLimit
	}

	sess := game.NewSession(repo, gameCfg)
	if flagDebug {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "kurumegrid",
			Level:           log.DebugLevel,
		})
		sess.SetEventSink(tui.NewLogSink(logger))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(sess, store, assetCfg, cfg, startID)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
