package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hnordt/wordfeel/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wordfeel configuration",
	Long: `Write a default config.yaml to your config directory.

The file covers model settings (model name, max tokens, an optional
relay URL that injects the API key server-side) and the card geometry
and palette.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Export ANTHROPIC_API_KEY, or set api.relay_url in the config")
	fmt.Println("  2. Run 'wordfeel find <feeling description>' to find your first word")
	fmt.Println("  3. Run 'wordfeel' to browse your archive")

	return nil
}
