package main

import (
	"os"

	"github.com/charmbracelet/log"
)

const (
	RepoURL = "https://github.com/benjamonnguyen/pomomo-tui"
	Version = "0.1.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
