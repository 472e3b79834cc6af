// Package main is the entry point for the wordfeel CLI.
package main

import (
	"os"

	"github.com/hnordt/wordfeel/cmd/wordfeel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
