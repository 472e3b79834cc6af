// Package cmd contains all CLI commands for the wordfeel tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hnordt/wordfeel/internal/archive"
	"github.com/hnordt/wordfeel/internal/config"
	"github.com/hnordt/wordfeel/internal/llm"
	"github.com/hnordt/wordfeel/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wordfeel",
	Short: "Find the word for how you feel",
	Long: `wordfeel asks a language model to name the emotion you describe -
a real word from any language - then archives it locally and can render
it as a shareable card image.

Running 'wordfeel' without arguments opens the interactive archive browser.`,
	RunE: runBrowser,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/wordfeel)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "wordfeel"))
	}

	viper.SetEnvPrefix("WORDFEEL")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// newLogger builds the CLI logger, honoring --verbose.
func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if viper.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadUserConfig reads config.yaml from the config directory, falling
// back to defaults when it doesn't exist.
func loadUserConfig() *config.Config {
	path := filepath.Join(getConfigDir(), "config.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return config.Default()
	}
	return cfg
}

// openStore opens the archive, creating the config directory if needed.
func openStore(cfg *config.Config) (*archive.Store, error) {
	dir := getConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	return archive.Open(cfg.DatabasePath(dir))
}

// newLLMClient builds a client from config. Relay mode needs no key.
func newLLMClient(cfg *config.Config, logger *log.Logger) (*llm.Client, error) {
	return llm.NewClient(llm.Options{
		RelayURL:  cfg.API.RelayURL,
		Model:     cfg.API.Model,
		MaxTokens: cfg.API.MaxTokens,
		Logger:    logger,
	})
}

// runBrowser launches the interactive archive browser.
func runBrowser(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := loadUserConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	// Browsing works without a model; finding new words is disabled.
	client, err := newLLMClient(cfg, logger)
	if err != nil {
		logger.Debug("model unavailable", "err", err)
		client = nil
	}

	p := tea.NewProgram(
		tui.New(store, client),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}

	return nil
}
