// Package main implements the worksheet CLI: an interactive terminal
// form by default, plus a one-shot generate subcommand for scripting.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
