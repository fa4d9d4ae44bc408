// Package main is the entry point for the tablo CLI.
package main

import (
	"os"

	"github.com/hnimtadd/tablo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
