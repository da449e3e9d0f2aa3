// Package main is the entry point for the DataHive admin CLI.
package main

import (
	"datahive/admincli/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
