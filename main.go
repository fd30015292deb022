package main

import (
	"os"

	"github.com/terpdex/terpdex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
