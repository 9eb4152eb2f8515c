package main

import (
	"os"

	"github.com/vicharak-in/tlinker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
