package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hnordt/wordfeel/internal/card"
	"github.com/hnordt/wordfeel/internal/clipboard"
)

var cardCmd = &cobra.Command{
	Use:   "card <word>",
	Short: "Render an archived word as a card image",
	Long: `Render an archived word as a PNG card.

The default variant carries today's date in the footer; --share swaps it
for an attribution line, for posting elsewhere.

Examples:
  wordfeel card saudade
  wordfeel card saudade --share --out saudade-share.png
  wordfeel card hygge --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runCard,
}

var (
	cardShare bool
	cardOut   string
	cardCopy  bool
)

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.Flags().BoolVar(&cardShare, "share", false, "use the share variant (attribution footer)")
	cardCmd.Flags().StringVarP(&cardOut, "out", "o", "", "output path (default <word>.png)")
	cardCmd.Flags().BoolVar(&cardCopy, "copy", false, "also copy the image to the clipboard")
}

func runCard(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.FindWord(args[0])
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%q is not in your archive, find it first", args[0])
	}

	faces, err := card.NewFaceSet()
	if err != nil {
		return err
	}

	geom := cfg.Card.Geometry()
	planner := card.NewPlanner(geom)

	var ops []card.Op
	if cardShare {
		ops = planner.Share(entry.Result, faces)
	} else {
		ops = planner.Archive(entry.Result, faces)
	}

	img := card.Draw(ops, geom, faces)

	out := cardOut
	if out == "" {
		out = sanitizeFilename(entry.Word) + ".png"
	}
	if err := card.SaveFile(out, img); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)

	if cardCopy {
		if err := clipboard.WriteImage(out); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		} else {
			fmt.Println("Copied to clipboard")
		}
	}

	return nil
}

// sanitizeFilename makes a word safe to use as a file name.
func sanitizeFilename(w string) string {
	w = strings.ToLower(strings.TrimSpace(w))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '-'
		}
		return r
	}, w)
}
