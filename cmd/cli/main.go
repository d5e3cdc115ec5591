// Package main implements the landscapectl CLI tool.
// It provides commands for managing scripts, attachments, and registered
// hosts through the Landscape API.
package main

import "github.com/landscapectl/landscapectl/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
