// Package main provides the sqldialect command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/sqldialect/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
