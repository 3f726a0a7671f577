package main

import (
	"os"

	"github.com/84emllc/mcp-toggl/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
