package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gpukit/cmd/gpukit/handlers"
)

// Status returns the command that verifies the deployed stack.
func Status() *cobra.Command {
	var opts handlers.StatusOptions

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Verify the deployed GPU operator stack",
		Long: `Verify the deployed GPU operator stack.

Checks that the driver installer DaemonSet has completed its rollout
and that the gpu-operator Helm release is in the deployed state.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: gpukit.yaml)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig file")

	return cmd
}
