package main

import (
	"os"

	"github.com/cnkang/mathgenie-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
