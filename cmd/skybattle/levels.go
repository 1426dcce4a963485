package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Long:  `Shows the campaign levels of the active configuration in play order.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Levels) == 0 {
		fmt.Println("No levels configured.")
		return nil
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range cfg.Levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-16s  %-6s  %-8s  %s\n", maxIDLen, "ID", "Name", "Health", "Goal", "Next")
	fmt.Printf("  %-*s  %-16s  %-6s  %-8s  %s\n", maxIDLen, "--", "----", "------", "----", "----")

	for _, l := range cfg.Levels {
		goal := fmt.Sprintf("%d kills", l.KillTarget)
		if l.Kind == config.KindBoss {
			goal = "boss"
		}
		next := l.Next
		if next == "" {
			next = "-"
		}
		fmt.Printf("  %-*s  %-16s  %-6d  %-8s  %s\n", maxIDLen, l.ID, l.Name, l.PlayerHealth, goal, next)
	}

	fmt.Println()
	fmt.Println("Run 'skybattle play <id>' to start from a level.")
	return nil
}
