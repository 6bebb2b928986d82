// Package main is the entry point for the registration portal service.
package main

import (
	"os"

	"regportal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
