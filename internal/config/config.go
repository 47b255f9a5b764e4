// Package config loads and validates the gpukit configuration.
//
// Configuration comes from an optional YAML file (gpukit.yaml by
// default). Every field is optional; missing fields resolve to static
// defaults. Absence is detected through pointer fields so that
// explicitly configured zero values are preserved rather than
// overwritten by defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/imamik/gpukit/internal/dcgm"
)

// Defaults for the GPU operator stack.
const (
	DefaultNamespace       = "gpu-operator"
	DefaultChartRepository = "https://helm.ngc.nvidia.com/nvidia"
	DefaultChartName       = "gpu-operator"
	DefaultChartVersion    = "v25.3.4"

	// DefaultDriverManifestURL points at the GKE COS driver installer
	// DaemonSet. The in-chart driver is disabled in favor of this.
	DefaultDriverManifestURL = "https://raw.githubusercontent.com/GoogleCloudPlatform/container-engine-accelerators/master/nvidia-driver-installer/cos/daemonset-preloaded.yaml"
	DefaultDriverNamespace   = "kube-system"
	DefaultDriverName        = "nvidia-driver-installer"

	DefaultPodLimit   = 100
	DefaultIntervalMs = 1000

	DefaultTimeout = 10 * time.Minute
)

// Bounds for integer options.
const (
	MinPodLimit = 1
	MaxPodLimit = 10000

	MinIntervalMs = 100
	MaxIntervalMs = 60000
)

// Config is the resolved gpukit configuration with all defaults
// applied.
type Config struct {
	// Kubeconfig is the path to the kubeconfig file. Empty means the
	// standard client-go loading rules apply (KUBECONFIG, ~/.kube/config).
	Kubeconfig string

	// Namespace is the namespace the operator is deployed to.
	Namespace string

	// Flavor is the GPU hardware flavor (a100, l4, t4).
	Flavor string

	Chart  ChartConfig
	Quota  QuotaConfig
	Driver DriverConfig
	DCGM   DCGMConfig

	// Timeout bounds the whole install operation.
	Timeout time.Duration
}

// ChartConfig identifies the gpu-operator Helm chart.
type ChartConfig struct {
	Repository string
	Name       string
	Version    string
}

// QuotaConfig controls the pod-count ResourceQuota.
type QuotaConfig struct {
	Enabled  bool
	PodLimit int
}

// DriverConfig controls the GPU driver installer DaemonSet.
type DriverConfig struct {
	Enabled     bool
	ManifestURL string
	// Namespace and Name locate the DaemonSet the manifest creates,
	// used for rollout verification.
	Namespace string
	Name      string
}

// DCGMConfig controls the DCGM exporter.
type DCGMConfig struct {
	CollectIntervalMs int
	PublishIntervalMs int
}

// fileConfig mirrors the YAML file layout. Pointer and `any` typed
// fields distinguish absent values from explicit zero values; `any`
// fields go through CoerceInt to accept numeric strings and floats.
type fileConfig struct {
	Kubeconfig *string `mapstructure:"kubeconfig"`
	Namespace  *string `mapstructure:"namespace"`
	Flavor     *string `mapstructure:"flavor"`
	Version    *string `mapstructure:"version"`

	Chart struct {
		Repository *string `mapstructure:"repository"`
		Name       *string `mapstructure:"name"`
	} `mapstructure:"chart"`

	Quota struct {
		Enabled  *bool `mapstructure:"enabled"`
		PodLimit any   `mapstructure:"pod_limit"`
	} `mapstructure:"quota"`

	Driver struct {
		Enabled     *bool   `mapstructure:"enabled"`
		ManifestURL *string `mapstructure:"manifest_url"`
		Namespace   *string `mapstructure:"namespace"`
		Name        *string `mapstructure:"name"`
	} `mapstructure:"driver"`

	DCGM struct {
		CollectIntervalMs any `mapstructure:"collect_interval_ms"`
		PublishIntervalMs any `mapstructure:"publish_interval_ms"`
	} `mapstructure:"dcgm"`

	TimeoutMinutes any `mapstructure:"timeout_minutes"`
}

// Default returns the configuration with every field at its default.
func Default() *Config {
	cfg, err := resolve(&fileConfig{})
	if err != nil {
		// resolve on an empty file config only applies static
		// defaults, which are in range.
		panic(err)
	}
	return cfg
}

// LoadFile reads and resolves the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Load(data)
}

// Load resolves the configuration from YAML bytes.
func Load(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var fc fileConfig
	if err := mapstructure.Decode(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg, err := resolve(&fc)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolve applies defaults and integer coercion to a raw file config.
func resolve(fc *fileConfig) (*Config, error) {
	cfg := &Config{
		Kubeconfig: StringOr(fc.Kubeconfig, ""),
		Namespace:  StringOr(fc.Namespace, DefaultNamespace),
		Flavor:     StringOr(fc.Flavor, dcgm.DefaultFlavor),
		Chart: ChartConfig{
			Repository: StringOr(fc.Chart.Repository, DefaultChartRepository),
			Name:       StringOr(fc.Chart.Name, DefaultChartName),
			Version:    StringOr(fc.Version, DefaultChartVersion),
		},
		Quota: QuotaConfig{
			Enabled: BoolOr(fc.Quota.Enabled, true),
		},
		Driver: DriverConfig{
			Enabled:     BoolOr(fc.Driver.Enabled, true),
			ManifestURL: StringOr(fc.Driver.ManifestURL, DefaultDriverManifestURL),
			Namespace:   StringOr(fc.Driver.Namespace, DefaultDriverNamespace),
			Name:        StringOr(fc.Driver.Name, DefaultDriverName),
		},
	}

	podLimit, err := CoerceInt("quota.pod_limit", fc.Quota.PodLimit, DefaultPodLimit, MinPodLimit, MaxPodLimit)
	if err != nil {
		return nil, err
	}
	cfg.Quota.PodLimit = podLimit

	collect, err := CoerceInt("dcgm.collect_interval_ms", fc.DCGM.CollectIntervalMs, DefaultIntervalMs, MinIntervalMs, MaxIntervalMs)
	if err != nil {
		return nil, err
	}
	cfg.DCGM.CollectIntervalMs = collect

	publish, err := CoerceInt("dcgm.publish_interval_ms", fc.DCGM.PublishIntervalMs, DefaultIntervalMs, MinIntervalMs, MaxIntervalMs)
	if err != nil {
		return nil, err
	}
	cfg.DCGM.PublishIntervalMs = publish

	timeoutMinutes, err := CoerceInt("timeout_minutes", fc.TimeoutMinutes, int(DefaultTimeout/time.Minute), 1, 120)
	if err != nil {
		return nil, err
	}
	cfg.Timeout = time.Duration(timeoutMinutes) * time.Minute

	return cfg, nil
}

// Validate checks the resolved configuration for invalid values.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if c.Chart.Repository == "" {
		return fmt.Errorf("chart.repository must not be empty")
	}
	if c.Chart.Name == "" {
		return fmt.Errorf("chart.name must not be empty")
	}
	if c.Chart.Version == "" {
		return fmt.Errorf("version must not be empty")
	}
	if c.Driver.Enabled && c.Driver.ManifestURL == "" {
		return fmt.Errorf("driver.manifest_url must not be empty when the driver is enabled")
	}
	return nil
}
