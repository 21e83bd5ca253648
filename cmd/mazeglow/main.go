// Command mazeglow carves random mazes and animates a colour wave through them.
package main

import (
	"os"

	"mazeglow/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
