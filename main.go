// Package main is the entry point for the aledit CLI.
package main

import "aledit.dev/pkg/aledit/cmd"

func main() {
	cmd.Execute()
}
