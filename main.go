package main

import (
	"os"

	"github.com/pathgenius/genius/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
