package main

import (
	"os"

	"github.com/joycejAGMT/casadi/cmd/sxdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
