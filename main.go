package main

import (
	"os"

	"github.com/xperh004/air-quality-monitoring-prague/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
