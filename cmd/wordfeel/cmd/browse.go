package cmd

import (
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse your archived words",
	Long: `Open the interactive archive browser. Same as running wordfeel
with no arguments.

Keys:
  up/down  navigate
  f        find a new word
  y        copy word and definition
  d        delete the selected word
  q        quit`,
	RunE: runBrowser,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
