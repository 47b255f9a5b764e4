package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gpukit/cmd/gpukit/handlers"
)

// Uninstall returns the command that removes the GPU operator stack.
func Uninstall() *cobra.Command {
	var opts handlers.UninstallOptions

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the GPU operator stack",
		Long: `Remove the gpu-operator Helm release from the cluster.

The driver installer DaemonSet is left in place because removing it
would strip drivers from nodes that may still run GPU workloads.

Examples:
  # Remove the Helm release
  gpukit uninstall

  # Remove the release and the namespace (including the quota)
  gpukit uninstall --delete-namespace`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Uninstall(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: gpukit.yaml)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig file")
	cmd.Flags().BoolVar(&opts.DeleteNamespace, "delete-namespace", false, "Also delete the namespace")

	return cmd
}
