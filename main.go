// Package main is the entry point for the typest CLI.
package main

import "typest.dev/pkg/typest/cmd"

func main() {
	cmd.Execute()
}
