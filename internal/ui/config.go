package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  weekendly config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Schedule.SaturdayStartHour = promptHour(reader, "Saturday start hour", cfg.Schedule.SaturdayStartHour)
	cfg.Schedule.SaturdayEndHour = promptHour(reader, "Saturday end hour", cfg.Schedule.SaturdayEndHour)
	cfg.Schedule.SundayStartHour = promptHour(reader, "Sunday start hour", cfg.Schedule.SundayStartHour)
	cfg.Schedule.SundayEndHour = promptHour(reader, "Sunday end hour", cfg.Schedule.SundayEndHour)
	cfg.Places.APIKey = promptValue(reader, "Geoapify API key (empty to disable nearby search)", cfg.Places.APIKey)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptValue(reader, "UI theme (mocha, macchiato, frappe, latte)", cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[schedule]")
	fmt.Printf("  saturday_start_hour = %d\n", cfg.Schedule.SaturdayStartHour)
	fmt.Printf("  saturday_end_hour   = %d\n", cfg.Schedule.SaturdayEndHour)
	fmt.Printf("  sunday_start_hour   = %d\n", cfg.Schedule.SundayStartHour)
	fmt.Printf("  sunday_end_hour     = %d\n", cfg.Schedule.SundayEndHour)
	fmt.Println("\n[places]")
	key := cfg.Places.APIKey
	if key == "" {
		key = "(unset)"
	}
	fmt.Printf("  api_key             = %s\n", key)
	fmt.Printf("  radius_m            = %d\n", cfg.Places.RadiusM)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path             = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme               = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptHour(reader *bufio.Reader, label string, current int) int {
	for {
		input := promptValue(reader, label, strconv.Itoa(current))
		hour, err := strconv.Atoi(input)
		if err != nil || hour < 0 || hour > 23 {
			fmt.Printf("  Invalid hour %q. Use 0-23.\n", input)
			continue
		}
		return hour
	}
}
