package main

import (
	"os"

	"github.com/i474232898/wethr/internal/cli"
	"github.com/i474232898/wethr/internal/config"
)

func main() {
	config.LoadDotEnv()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
