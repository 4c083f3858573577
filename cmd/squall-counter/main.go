package main

import (
	"squall/internal/cli"
	"squall/pkg/squall"
	"squall/suites/counter"
)

func main() {
	// The deferred flush drains any tests still pending if a command
	// path returns without running them.
	defer squall.Flush()

	cli.Main("squall-counter", counter.Tests())
}
