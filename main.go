package main

import (
	"os"

	"github.com/thenoetrevino/roster/cmd"
	"github.com/thenoetrevino/roster/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cmd.Execute()))
}
