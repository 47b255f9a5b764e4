package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "gpu-operator", cfg.Namespace)
	assert.Equal(t, "a100", cfg.Flavor)
	assert.Equal(t, "https://helm.ngc.nvidia.com/nvidia", cfg.Chart.Repository)
	assert.Equal(t, "gpu-operator", cfg.Chart.Name)
	assert.Equal(t, "v25.3.4", cfg.Chart.Version)
	assert.True(t, cfg.Quota.Enabled)
	assert.Equal(t, 100, cfg.Quota.PodLimit)
	assert.True(t, cfg.Driver.Enabled)
	assert.Equal(t, "kube-system", cfg.Driver.Namespace)
	assert.Equal(t, "nvidia-driver-installer", cfg.Driver.Name)
	assert.Equal(t, 1000, cfg.DCGM.CollectIntervalMs)
	assert.Equal(t, 1000, cfg.DCGM.PublishIntervalMs)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load([]byte(``))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesApplied(t *testing.T) {
	t.Parallel()

	cfg, err := Load([]byte(`
namespace: nvidia
version: v25.3.0
flavor: l4
chart:
  repository: https://example.com/charts
quota:
  enabled: false
  pod_limit: 50
driver:
  manifest_url: https://example.com/driver.yaml
dcgm:
  collect_interval_ms: 5000
timeout_minutes: 30
`))
	require.NoError(t, err)

	assert.Equal(t, "nvidia", cfg.Namespace)
	assert.Equal(t, "v25.3.0", cfg.Chart.Version)
	assert.Equal(t, "l4", cfg.Flavor)
	assert.Equal(t, "https://example.com/charts", cfg.Chart.Repository)
	assert.False(t, cfg.Quota.Enabled)
	assert.Equal(t, 50, cfg.Quota.PodLimit)
	assert.Equal(t, "https://example.com/driver.yaml", cfg.Driver.ManifestURL)
	assert.Equal(t, 5000, cfg.DCGM.CollectIntervalMs)
	// publish interval was not set and keeps its default
	assert.Equal(t, 1000, cfg.DCGM.PublishIntervalMs)
	assert.Equal(t, 30*time.Minute, cfg.Timeout)
}

func TestLoad_IntegerCoercion(t *testing.T) {
	t.Parallel()

	// YAML strings and floats are coerced to integers.
	cfg, err := Load([]byte(`
quota:
  pod_limit: "200"
dcgm:
  collect_interval_ms: 2000.0
`))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Quota.PodLimit)
	assert.Equal(t, 2000, cfg.DCGM.CollectIntervalMs)
}

func TestLoad_InvalidIntegers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{
			name:        "boolean pod limit",
			yaml:        "quota:\n  pod_limit: true\n",
			errContains: "expected an integer, got boolean",
		},
		{
			name:        "non-numeric pod limit",
			yaml:        "quota:\n  pod_limit: many\n",
			errContains: "expected an integer",
		},
		{
			name:        "pod limit out of range",
			yaml:        "quota:\n  pod_limit: 0\n",
			errContains: "out of range",
		},
		{
			name:        "interval below minimum",
			yaml:        "dcgm:\n  collect_interval_ms: 10\n",
			errContains: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoad_EmptyNamespaceRejected(t *testing.T) {
	t.Parallel()

	// An explicit empty namespace is preserved by the normalizer and
	// then rejected by validation, not silently replaced.
	_, err := Load([]byte(`namespace: ""` + "\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespace must not be empty")
}

func TestLoad_ExplicitFalsePreserved(t *testing.T) {
	t.Parallel()

	cfg, err := Load([]byte(`
quota:
  enabled: false
driver:
  enabled: false
`))
	require.NoError(t, err)
	assert.False(t, cfg.Quota.Enabled)
	assert.False(t, cfg.Driver.Enabled)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(`{invalid: [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "gpukit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flavor: t4\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "t4", cfg.Flavor)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
