package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gpukit/cmd/gpukit/handlers"
)

// Install returns the command that deploys the GPU operator stack.
//
// Optional flags:
//
//	--config, -c:  Path to configuration YAML file (default: auto-detect gpukit.yaml)
//	--kubeconfig:  Path to kubeconfig (default: $KUBECONFIG or ~/.kube/config)
//	--verify:      Wait for the driver DaemonSet rollout after installing
func Install() *cobra.Command {
	var opts handlers.InstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Deploy the GPU operator stack",
		Long: `Deploy the GPU operator stack to the cluster.

Creates the namespace and pod quota, applies the GPU driver installer
DaemonSet, and installs the gpu-operator Helm chart from the NVIDIA NGC
repository, in that order.

If no config file is specified, gpukit.yaml in the current directory is
used when present; otherwise built-in defaults apply. Use 'gpukit init'
to create a configuration file.

Examples:
  # Install with defaults (namespace gpu-operator, flavor a100)
  gpukit install

  # Install using a specific config file
  gpukit install -c l4-cluster.yaml

  # Install and wait for the driver rollout
  gpukit install --verify`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Install(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: gpukit.yaml)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig file")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Verify the deployment after installing")

	return cmd
}
