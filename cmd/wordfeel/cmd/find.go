package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hnordt/wordfeel/internal/extract"
)

var findCmd = &cobra.Command{
	Use:   "find <feeling description>",
	Short: "Find the word for a feeling",
	Long: `Describe a feeling in plain language and let the model name it.
The result is archived unless --no-save is given; a word already in the
archive is shown from there instead of being stored twice.

Examples:
  wordfeel find missing a home that no longer exists
  wordfeel find "the comfort of rain on a roof" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

var (
	findNoSave bool
	findJSON   bool
)

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().BoolVar(&findNoSave, "no-save", false, "don't archive the result")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "print the result as JSON")
}

func runFind(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := loadUserConfig()

	client, err := newLLMClient(cfg, logger)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	raw, err := client.FindWord(query)
	if err != nil {
		return fmt.Errorf("asking the model: %w", err)
	}

	extractor := extract.New(logger)
	res, err := extractor.Extract(raw)
	if err != nil {
		return fmt.Errorf("the model's answer was unusable, try rephrasing: %w", err)
	}
	res.Query = query

	if findJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printResult(res.Word, res.Pronunciation, res.Origin, res.Definition)
	}

	if findNoSave {
		return nil
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if existing, err := store.FindWord(res.Word); err != nil {
		return err
	} else if existing != nil {
		fmt.Fprintf(os.Stderr, "%q is already in your archive\n", existing.Word)
		return nil
	}

	if _, err := store.Save(res); err != nil {
		return err
	}
	logger.Debug("archived", "word", res.Word)

	return nil
}

func printResult(w, pron, origin, definition string) {
	fmt.Println()
	fmt.Printf("  %s\n", w)
	if pron != "" {
		fmt.Printf("  /%s/\n", pron)
	}
	fmt.Printf("  %s\n", origin)
	fmt.Println()
	fmt.Printf("  %s\n", definition)
	fmt.Println()
}
