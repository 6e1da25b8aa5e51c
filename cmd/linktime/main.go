package main

import (
	"os"

	"github.com/arthur-debert/linktime/internal/cli"

	// Linking a plug-in package in is what registers it.
	_ "github.com/arthur-debert/linktime/pkg/shapes/circle"
	_ "github.com/arthur-debert/linktime/pkg/shapes/square"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
