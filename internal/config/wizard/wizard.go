// Package wizard implements the interactive gpukit.yaml generator
// behind the `gpukit init` command.
package wizard

import (
	"context"
	"fmt"

	"github.com/imamik/gpukit/internal/config"
	"github.com/imamik/gpukit/internal/dcgm"
)

// Result holds the answers collected by the wizard.
type Result struct {
	Namespace    string
	Flavor       string
	ChartVersion string

	QuotaEnabled bool
	PodLimit     int

	DriverEnabled bool
	ManifestURL   string
}

// RunWizard runs the interactive configuration wizard. The context is
// used for cancellation (Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{
		Namespace:     config.DefaultNamespace,
		Flavor:        dcgm.DefaultFlavor,
		ChartVersion:  config.DefaultChartVersion,
		QuotaEnabled:  true,
		PodLimit:      config.DefaultPodLimit,
		DriverEnabled: true,
		ManifestURL:   config.DefaultDriverManifestURL,
	}

	if err := runDeploymentGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("deployment: %w", err)
	}

	// An empty answer means "use the default".
	if result.Namespace == "" {
		result.Namespace = config.DefaultNamespace
	}
	if result.ChartVersion == "" {
		result.ChartVersion = config.DefaultChartVersion
	}

	if err := runQuotaGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("quota: %w", err)
	}

	if err := runDriverGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	return result, nil
}
