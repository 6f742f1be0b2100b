package main

import (
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

// Same entry point as cmd/tada, so `go install github.com/Makepad-fr/tada@latest` works.
func main() {
	os.Exit(cli.Execute())
}
