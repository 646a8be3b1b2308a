package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all loadable levels",
	Long:  `Shows every level in the configured level set.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	levels := repo.List()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Loadable levels:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-4s  %-*s  %-7s  %s\n", "ID", maxNameLen, "Name", "Size", "Enemies")
	fmt.Printf("  %-4s  %-*s  %-7s  %s\n", "--", maxNameLen, "----", "----", "-------")

	for _, l := range levels {
		fmt.Printf("  %-4d  %-*s  %2dx%-4d  %d\n", l.ID, maxNameLen, l.Name, l.Width, l.Height, l.EnemyCount())
	}

	fmt.Println()
	fmt.Println("Run 'kurumegrid play <id>' to play a level.")
}
