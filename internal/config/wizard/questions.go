package wizard

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/imamik/gpukit/internal/config"
	"github.com/imamik/gpukit/internal/dcgm"
)

// namespaceRegex validates namespace format: RFC 1123 label, at most
// 63 characters.
var namespaceRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// runDeploymentGroup prompts for namespace, GPU flavor, and chart version.
func runDeploymentGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Namespace").
				Description("Namespace the GPU operator is deployed to").
				Placeholder(config.DefaultNamespace).
				Value(&result.Namespace).
				Validate(validateNamespace),
			huh.NewSelect[string]().
				Title("GPU Flavor").
				Description("Selects the DCGM exporter metric profile").
				Options(flavorOptions()...).
				Value(&result.Flavor),
			huh.NewInput().
				Title("Chart Version").
				Description("gpu-operator chart version from the NVIDIA NGC repository").
				Placeholder(config.DefaultChartVersion).
				Value(&result.ChartVersion).
				Validate(validateNotEmpty("chart version")),
		).Title("Deployment"),
	).RunWithContext(ctx)
}

// runQuotaGroup prompts for the pod-count quota.
func runQuotaGroup(ctx context.Context, result *Result) error {
	podLimitInput := strconv.Itoa(result.PodLimit)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create ResourceQuota?").
				Description("Caps pod count for critical priority classes in the namespace").
				Value(&result.QuotaEnabled),
			huh.NewInput().
				Title("Pod Limit").
				Description(fmt.Sprintf("Between %d and %d", config.MinPodLimit, config.MaxPodLimit)).
				Value(&podLimitInput).
				Validate(validatePodLimit),
		).Title("Resource Quota"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	limit, err := config.CoerceInt("pod_limit", podLimitInput,
		config.DefaultPodLimit, config.MinPodLimit, config.MaxPodLimit)
	if err != nil {
		return err
	}
	result.PodLimit = limit

	return nil
}

// runDriverGroup prompts for the driver installer DaemonSet.
func runDriverGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Apply driver installer DaemonSet?").
				Description("Installs GPU drivers on eligible nodes from a remote manifest").
				Value(&result.DriverEnabled),
			huh.NewInput().
				Title("Driver Manifest URL").
				Value(&result.ManifestURL).
				Validate(validateURL),
		).Title("Driver"),
	).RunWithContext(ctx)
}

// flavorOptions returns the supported flavors as select options.
func flavorOptions() []huh.Option[string] {
	flavors := dcgm.KnownFlavors()
	options := make([]huh.Option[string], len(flavors))
	for i, f := range flavors {
		options[i] = huh.NewOption(f, f)
	}
	return options
}

func validateNamespace(s string) error {
	if s == "" {
		return nil // empty falls back to the default
	}
	if !namespaceRegex.MatchString(s) {
		return fmt.Errorf("must be a valid namespace name (lowercase alphanumeric and hyphens)")
	}
	return nil
}

func validateNotEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

func validatePodLimit(s string) error {
	_, err := config.CoerceInt("pod_limit", s,
		config.DefaultPodLimit, config.MinPodLimit, config.MaxPodLimit)
	return err
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https")
	}
	return nil
}
