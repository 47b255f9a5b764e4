package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/gpukit/internal/config"
)

func testResult() *Result {
	return &Result{
		Namespace:     "gpu-operator",
		Flavor:        "l4",
		ChartVersion:  "v25.3.4",
		QuotaEnabled:  true,
		PodLimit:      100,
		DriverEnabled: true,
		ManifestURL:   config.DefaultDriverManifestURL,
	}
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpukit.yaml")

	err := WriteConfig(testResult(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "# gpukit configuration")
	assert.Contains(t, content, "flavor: l4")
	assert.Contains(t, content, "pod_limit: 100")

	// The generated file must load cleanly.
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "l4", cfg.Flavor)
	assert.Equal(t, 100, cfg.Quota.PodLimit)
}

func TestWriteConfig_OverwriteDeclined(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpukit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: keep\n"), 0o600))

	original := confirmOverwrite
	confirmOverwrite = func(string) (bool, error) { return false, nil }
	defer func() { confirmOverwrite = original }()

	err := WriteConfig(testResult(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "namespace: keep\n", string(data))
}

func TestWriteConfig_OverwriteAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpukit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: old\n"), 0o600))

	original := confirmOverwrite
	confirmOverwrite = func(string) (bool, error) { return true, nil }
	defer func() { confirmOverwrite = original }()

	err := WriteConfig(testResult(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flavor: l4")
}
