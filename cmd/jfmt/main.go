// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

// Program jfmt reformats JSON documents.
package main

import (
	"os"

	"github.com/halfmoss/jfmt/internal/cli"
	"github.com/halfmoss/jfmt/internal/logging"
)

// Populated at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if err := root.Execute(); err != nil {
		logging.Default().Error(err.Error())
		return 1
	}
	return 0
}
