// Package main is the entry point for the resizer CLI
package main

import (
	"os"

	"github.com/ironsheep/image-resizer/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	info := cli.BuildInfo{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildTime,
	}
	os.Exit(cli.Execute(info, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
