package main

import (
	"github.com/tacogips/kickstart/internal/cli"
)

func main() {
	// Execute the root command
	cli.Execute()
}
