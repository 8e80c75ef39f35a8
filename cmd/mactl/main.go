package main

import (
	"mactl/internal/cli"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, buildTime)
	cli.Execute()
}
