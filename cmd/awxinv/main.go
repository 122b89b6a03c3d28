package main

import (
	"os"

	"github.com/viert/awxinv/cli"
	"github.com/viert/awxinv/term"
)

func main() {
	if err := cli.Execute(); err != nil {
		term.Errorf("%s\n", err)
		os.Exit(1)
	}
}
