package main

import (
	"os"

	"github.com/ayato/kioku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
