package main

import (
	"os"

	"github.com/tormodhaugland/scriptnav/cmd/scriptnav/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
