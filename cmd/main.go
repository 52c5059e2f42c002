// Package main is the entry point for the musicstream CLI.
//
// Build:
//
//	go build -o build/musicstream ./cmd
//
// Run:
//
//	./build/musicstream --help
package main

import (
	"github.com/hoangtrungvu/musicstream/internal/cli"
)

func main() {
	cli.Execute()
}
