package main

import (
	"context"
	"os"

	"github.com/broccoli/backend/internal/cli"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := cli.NewRootCommand(Version).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
