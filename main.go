package main

import (
	"os"

	"github.com/compozy/fixturegen/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
