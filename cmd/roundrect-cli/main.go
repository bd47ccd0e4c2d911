// CLI-only version (no GUI dependencies)
package main

import (
	"os"

	"roundrect/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
