package cmd

import (
	"fmt"

	"bettero/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Base URL: %s\n", cfg.API.BaseURL)
	fmt.Printf("    Timeout:  %ds\n", cfg.API.TimeoutSec)
	fmt.Println()

	fmt.Println("  [Paging]")
	fmt.Printf("    Page size:   %d\n", cfg.Paging.PageSize)
	fmt.Printf("    Window size: %d\n", cfg.Paging.WindowSize)
	fmt.Println()

	fmt.Println("  [Cache]")
	if cfg.Cache.Disable {
		fmt.Println("    Disabled")
	} else {
		fmt.Printf("    Max age: %ds\n", cfg.Cache.MaxAgeSec)
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default interval: %s\n", cfg.General.DefaultIntervalType)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Local store: %s\n", config.StorePath())
	return nil
}
