// Package main is the entry point for the fwupgrade CLI.
//
// fwupgrade drives the firmware upgrade workflow of a single network
// appliance through its management API: configuration backup, content
// refresh, base image staging, target install and the post-reboot
// readiness wait. Every device-side action is an asynchronous job that
// is polled to completion before the next step starts.
//
// Commands: run, init, version, completion.
//
// For detailed usage information, run:
//
//	fwupgrade --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/fwupgrade/cmd/fwupgrade/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
