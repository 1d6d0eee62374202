package main

import (
	"os"

	"bookshelf/internal/cli"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli.Version = version
	os.Exit(cli.Execute())
}
