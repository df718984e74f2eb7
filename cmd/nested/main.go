// Command nested reads and edits values inside JSON, YAML and TOML documents
// addressed by a path.
package main

import (
	"os"

	"github.com/cybergodev/nested/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
