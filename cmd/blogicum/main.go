package main

import (
	"os"

	"github.com/blogicum/blogicum/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
