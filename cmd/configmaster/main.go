// Command configmaster renders configurable multilingual greetings.
package main

import (
	"os"

	"github.com/configmaster/configmaster/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
