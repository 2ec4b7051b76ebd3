package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/recall/cmd"
	"github.com/thenoetrevino/recall/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands that already printed their error only need the exit code
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
