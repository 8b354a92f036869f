// Command schemctl drives the connector geometry engine from the
// shell: each editing invocation loads a canvas document, applies one
// operation, and saves the result, one subcommand per engine entry
// point; new creates a document and export writes it out as PNG or
// JSON.
package main

import (
	"gridwire/cmd/schemctl/cmd"
)

func main() {
	cmd.Execute()
}
