package main

import (
	"os"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
