package main

import (
	"os"

	"github.com/spacesedan/sentimind/config"
	"github.com/spacesedan/sentimind/internal/cli"
)

func main() {
	settings := config.Load()

	err := cli.Execute(cli.Options{
		Settings: settings,
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Terminal: os.Stdout,
	})
	if err != nil {
		// cobra has already printed the error and usage
		os.Exit(1)
	}
}
