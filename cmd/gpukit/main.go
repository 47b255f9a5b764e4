// Package main is the entry point for the gpukit CLI.
//
// gpukit deploys the NVIDIA GPU Operator stack onto an existing
// Kubernetes cluster: namespace, pod quota, GPU driver installer
// DaemonSet, and the gpu-operator Helm chart.
//
// Commands: init, install, uninstall, status, version.
//
// For detailed usage information, run:
//
//	gpukit --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/gpukit/cmd/gpukit/commands"
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
