package main

import (
	"fmt"
	"os"

	"github.com/go-arcade/aoc2021/internal/cli"
)

/**
 * @author: gagral.x@gmail.com
 * @file: main.go
 * @description: aoc command line entry
 */

func main() {
	if err := cli.NewRootCmd(initApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
