package handlers

import (
	"context"
	"fmt"
	"log"
)

// StatusOptions holds the flags of the status command.
type StatusOptions struct {
	ConfigPath string
	Kubeconfig string
}

// Status verifies the deployed stack: the driver installer DaemonSet
// rollout and the Helm release state.
func Status(ctx context.Context, opts StatusOptions) error {
	cfg, err := loadStackConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	kubeconfig, err := resolveKubeconfig(opts.Kubeconfig, cfg)
	if err != nil {
		return err
	}

	log.Printf("Checking GPU operator stack in namespace %s", cfg.Namespace)

	runner, err := newStack(cfg, kubeconfig)
	if err != nil {
		return err
	}

	if err := runner.Verify(ctx); err != nil {
		return fmt.Errorf("stack is not healthy: %w", err)
	}

	fmt.Printf("GPU operator stack in namespace %s is healthy.\n", cfg.Namespace)
	return nil
}
