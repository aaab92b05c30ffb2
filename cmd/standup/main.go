package main

import (
	"os"

	"github.com/standup-cli/standup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
