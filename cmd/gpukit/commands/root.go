// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the gpukit CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gpukit",
		Short: "Deploy the NVIDIA GPU Operator stack to Kubernetes",
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Install())
	cmd.AddCommand(Uninstall())
	cmd.AddCommand(Status())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
