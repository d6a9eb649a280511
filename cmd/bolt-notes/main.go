package main

import (
	"os"

	"github.com/boltnotes/bolt-notes/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
