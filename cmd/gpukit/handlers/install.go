// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"k8s.io/client-go/util/homedir"

	"github.com/imamik/gpukit/internal/config"
	"github.com/imamik/gpukit/internal/helm"
	"github.com/imamik/gpukit/internal/k8s"
	"github.com/imamik/gpukit/internal/manifest"
	"github.com/imamik/gpukit/internal/stack"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "gpukit.yaml"

// InstallOptions holds the flags of the install command.
type InstallOptions struct {
	ConfigPath string
	Kubeconfig string
	Verify     bool
}

// stackRunner matches stack.Installer for testing.
type stackRunner interface {
	Install(ctx context.Context) error
	Verify(ctx context.Context) error
	Uninstall(ctx context.Context, removeNamespace bool) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.LoadFile

	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// readFile reads the kubeconfig bytes (for testing injection).
	readFile = os.ReadFile

	// newStack builds the installer with real cluster clients.
	newStack = func(cfg *config.Config, kubeconfig []byte) (stackRunner, error) {
		kubeClient, err := k8s.NewFromKubeconfig(kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
		}

		helmClient, err := helm.NewClient(kubeconfig, cfg.Namespace, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create helm client: %w", err)
		}

		return stack.NewInstaller(cfg, kubeClient, helmClient, manifest.NewFetcher()), nil
	}
)

// Install deploys the GPU operator stack onto the cluster.
//
// The workflow:
//  1. Loads configuration (explicit --config path, gpukit.yaml in the
//     working directory, or built-in defaults)
//  2. Reads the kubeconfig (flag, config file, KUBECONFIG, ~/.kube/config)
//  3. Applies namespace, quota, driver DaemonSet, and the Helm release
//     in order, halting at the first failure
//  4. Optionally verifies the driver rollout and release status
func Install(ctx context.Context, opts InstallOptions) error {
	cfg, err := loadStackConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	kubeconfig, err := resolveKubeconfig(opts.Kubeconfig, cfg)
	if err != nil {
		return err
	}

	log.Printf("Installing GPU operator stack (namespace %s, flavor %s, chart %s)",
		cfg.Namespace, cfg.Flavor, cfg.Chart.Version)

	runner, err := newStack(cfg, kubeconfig)
	if err != nil {
		return err
	}

	if err := runner.Install(ctx); err != nil {
		return err
	}

	if opts.Verify {
		log.Println("Verifying deployment...")
		if err := runner.Verify(ctx); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}

	printInstallSuccess(cfg, opts.Verify)
	return nil
}

// loadStackConfig loads and validates the configuration. An empty path
// falls back to gpukit.yaml in the working directory when present, and
// to built-in defaults otherwise.
func loadStackConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		if !fileExists(defaultConfigFile) {
			return config.Default(), nil
		}
		configPath = defaultConfigFile
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Using config: %s", configPath)
	return cfg, nil
}

// resolveKubeconfig reads the kubeconfig bytes, preferring the flag,
// then the config file, then KUBECONFIG, then ~/.kube/config.
func resolveKubeconfig(flagPath string, cfg *config.Config) ([]byte, error) {
	path := flagPath
	if path == "" {
		path = cfg.Kubeconfig
	}
	if path == "" {
		path = os.Getenv("KUBECONFIG")
	}
	if path == "" {
		path = filepath.Join(homedir.HomeDir(), ".kube", "config")
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read kubeconfig %s: %w", path, err)
	}

	return data, nil
}

// printInstallSuccess outputs completion message and next steps.
func printInstallSuccess(cfg *config.Config, verified bool) {
	fmt.Printf("\nGPU operator stack installed!\n\n")
	fmt.Printf("  Namespace: %s\n", cfg.Namespace)
	fmt.Printf("  Release:   %s (chart %s)\n", stack.ReleaseName, cfg.Chart.Version)
	fmt.Printf("  Flavor:    %s\n", cfg.Flavor)
	fmt.Println()

	if verified {
		fmt.Println("Deployment verified.")
		return
	}

	fmt.Println("Check the rollout with:")
	fmt.Printf("  gpukit status\n")
	fmt.Printf("  kubectl -n %s get pods\n", cfg.Namespace)
}
