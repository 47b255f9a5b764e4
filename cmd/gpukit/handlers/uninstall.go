package handlers

import (
	"context"
	"fmt"
	"log"
)

// UninstallOptions holds the flags of the uninstall command.
type UninstallOptions struct {
	ConfigPath      string
	Kubeconfig      string
	DeleteNamespace bool
}

// Uninstall removes the gpu-operator Helm release and, when requested,
// the namespace. The driver installer DaemonSet is left in place so
// nodes keep their drivers for workloads still running.
func Uninstall(ctx context.Context, opts UninstallOptions) error {
	cfg, err := loadStackConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	kubeconfig, err := resolveKubeconfig(opts.Kubeconfig, cfg)
	if err != nil {
		return err
	}

	log.Printf("Uninstalling GPU operator stack from namespace %s", cfg.Namespace)

	runner, err := newStack(cfg, kubeconfig)
	if err != nil {
		return err
	}

	if err := runner.Uninstall(ctx, opts.DeleteNamespace); err != nil {
		return err
	}

	fmt.Printf("\nGPU operator stack removed from namespace %s.\n", cfg.Namespace)
	if !opts.DeleteNamespace {
		fmt.Printf("The namespace was kept. Remove it with:\n")
		fmt.Printf("  gpukit uninstall --delete-namespace\n")
	}

	return nil
}
