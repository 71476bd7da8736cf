// Package main provides the cc0photos CLI application.
// cc0photos creates a CSV file of CC0 photos annotated with common names.
package main

import "github.com/gnames/cc0photos/cmd"

func main() {
	cmd.Execute()
}
