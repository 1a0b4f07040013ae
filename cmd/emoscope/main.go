// Command emoscope analyses the emotion of target phrases within sentences
// using the IBM Watson Natural Language Understanding API.
package main

import (
	"github.com/halcyon-labs/emoscope-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
