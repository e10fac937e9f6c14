package main

import (
	"os"

	"github.com/edufi/edufi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
