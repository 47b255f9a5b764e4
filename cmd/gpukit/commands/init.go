package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gpukit/cmd/gpukit/handlers"
)

// Init returns the command for interactively creating a configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "gpukit.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command guides you through configuring the GPU operator
deployment step by step. It will ask about:

  - Target namespace
  - GPU hardware flavor (a100, l4, t4)
  - gpu-operator chart version
  - Pod quota for critical priority classes
  - GPU driver installer manifest

The generated file can be deployed with 'gpukit install'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "gpukit.yaml", "Output file path")

	return cmd
}
