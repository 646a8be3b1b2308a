package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmasubuchi/kurumegrid/internal/platform/tui"
	"github.com/dmasubuchi/kurumegrid/internal/storage"
)

var flagBoard bool

var resultsCmd = &cobra.Command{
	Use:   "results [level-id]",
	Short: "Show session results",
	Long: `Display past session results. With a level id, shows the best
results for that level; without one, shows recent sessions across levels.

Examples:
  kurumegrid results
  kurumegrid results 1
  kurumegrid results --board`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive results board")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		repo, repoErr := openRepository()
		if repoErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", repoErr)
			os.Exit(1)
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if boardErr := tui.RunBoard(store, repo.List(), width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	if len(args) == 1 {
		id, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			fmt.Fprintf(os.Stderr, "Error: level id must be a number, got %q\n", args[0])
			os.Exit(1)
		}
		printLevelResults(store, id)
		return
	}

	printRecentResults(store)
}

func printLevelResults(store *storage.Store, levelID int) {
	results, err := store.Results(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results - level %d\n", levelID)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'kurumegrid play %d' to set the first result!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Outcome", "Time Left", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-------", "---------", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-10s  %s\n", i+1, r.Outcome, fmt.Sprintf("%ds", r.TimeRemaining), dateStr)
	}

	best, err := store.BestRemaining(levelID)
	if err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best clear: %ds remaining\n", best)
	}
}

func printRecentResults(store *storage.Store) {
	results, err := store.RecentResults(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-6s  %-10s  %-10s  %s\n", "Level", "Outcome", "Time Left", "Date")
	fmt.Printf("  %-6s  %-10s  %-10s  %s\n", "-----", "-------", "---------", "----")

	for _, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-10s  %-10s  %s\n", r.LevelID, r.Outcome, fmt.Sprintf("%ds", r.TimeRemaining), dateStr)
	}
}
