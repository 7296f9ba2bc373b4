package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/open-cli-collective/filing-cli/internal/cmd/root"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
