package main

import (
	"os"

	"github.com/andyollylarkin/echo-net/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
