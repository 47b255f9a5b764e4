package helm

import (
	"context"
	"fmt"
	"os"
	"time"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/getter"
	"helm.sh/helm/v3/pkg/release"
	"helm.sh/helm/v3/pkg/repo"
)

// Client provides Helm release operations scoped to a namespace.
type Client struct {
	namespace    string
	timeout      time.Duration
	actionConfig *action.Configuration
}

// NewClient creates a Helm client from kubeconfig bytes. Release state
// is stored in secrets in the target namespace, matching helm CLI
// behavior.
func NewClient(kubeconfig []byte, namespace string, timeout time.Duration) (*Client, error) {
	actionConfig := new(action.Configuration)
	restGetter := NewInMemoryRESTClientGetter(kubeconfig, namespace)

	// Suppress helm debug output.
	if err := actionConfig.Init(restGetter, namespace, "secret", func(format string, v ...interface{}) {}); err != nil {
		return nil, fmt.Errorf("failed to initialize helm action config: %w", err)
	}

	return &Client{
		namespace:    namespace,
		timeout:      timeout,
		actionConfig: actionConfig,
	}, nil
}

// InstallOrUpgrade installs the chart described by spec, or upgrades it
// if a release with the given name already exists.
func (c *Client) InstallOrUpgrade(ctx context.Context, releaseName string, spec ChartSpec, values Values) (*release.Release, error) {
	histClient := action.NewHistory(c.actionConfig)
	histClient.Max = 1
	if _, err := histClient.Run(releaseName); err != nil {
		return c.install(ctx, releaseName, spec, values)
	}
	return c.upgrade(ctx, releaseName, spec, values)
}

func (c *Client) install(ctx context.Context, releaseName string, spec ChartSpec, values Values) (*release.Release, error) {
	installClient := action.NewInstall(c.actionConfig)
	installClient.ReleaseName = releaseName
	installClient.Namespace = c.namespace
	installClient.Version = spec.Version
	installClient.Wait = true
	installClient.Timeout = c.timeout

	ch, err := c.loadChart(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	return installClient.RunWithContext(ctx, ch, values.ToMap())
}

func (c *Client) upgrade(ctx context.Context, releaseName string, spec ChartSpec, values Values) (*release.Release, error) {
	upgradeClient := action.NewUpgrade(c.actionConfig)
	upgradeClient.Namespace = c.namespace
	upgradeClient.Version = spec.Version
	upgradeClient.Wait = true
	upgradeClient.Timeout = c.timeout
	upgradeClient.ReuseValues = false

	ch, err := c.loadChart(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	return upgradeClient.RunWithContext(ctx, releaseName, ch, values.ToMap())
}

// loadChart locates the chart in its repository, downloads it, and
// loads it into memory. The downloaded archive is removed afterwards.
func (c *Client) loadChart(spec ChartSpec) (*chart.Chart, error) {
	settings := cli.New()

	chartPath, err := repo.FindChartInRepoURL(
		spec.Repository,
		spec.Name,
		spec.Version,
		"", "", "",
		getter.All(settings),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find chart %s in repo %s: %w", spec.Name, spec.Repository, err)
	}

	defer func() {
		_ = os.Remove(chartPath)
	}()

	return loader.Load(chartPath)
}

// Uninstall removes a Helm release.
func (c *Client) Uninstall(releaseName string) error {
	uninstallClient := action.NewUninstall(c.actionConfig)
	uninstallClient.Wait = true
	uninstallClient.Timeout = c.timeout

	_, err := uninstallClient.Run(releaseName)
	return err
}

// Status returns the status of a release.
func (c *Client) Status(releaseName string) (release.Status, error) {
	statusClient := action.NewStatus(c.actionConfig)
	rel, err := statusClient.Run(releaseName)
	if err != nil {
		return release.StatusUnknown, err
	}
	return rel.Info.Status, nil
}

// ReleaseExists checks if a release exists.
func (c *Client) ReleaseExists(releaseName string) bool {
	histClient := action.NewHistory(c.actionConfig)
	histClient.Max = 1
	_, err := histClient.Run(releaseName)
	return err == nil
}
