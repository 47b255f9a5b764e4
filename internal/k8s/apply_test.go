package k8s

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Server-Side Apply needs a real apiserver; these tests cover input
// validation, decoding, and error handling against fake clients.

func TestApplyManifests_EmptyInput(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	err := client.ApplyManifests(context.Background(), []byte(``), "gpukit")
	require.NoError(t, err)
}

func TestApplyManifests_EmptyDocumentsSkipped(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	err := client.ApplyManifests(context.Background(), []byte("---\n---\n---\n"), "gpukit")
	require.NoError(t, err)
}

func TestApplyManifests_InvalidYAML(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	err := client.ApplyManifests(context.Background(), []byte(`{invalid yaml: [`), "gpukit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode manifest")
}

func TestApplyManifests_MissingKind(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	manifests := []byte(`apiVersion: v1
metadata:
  name: test
`)

	err := client.ApplyManifests(context.Background(), manifests, "gpukit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Kind")
}

func TestApplyManifests_UnknownKind(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	manifests := []byte(`apiVersion: example.com/v1
kind: Widget
metadata:
  name: test
`)

	err := client.ApplyManifests(context.Background(), manifests, "gpukit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REST mapping")
}

func TestNewFromKubeconfig_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewFromKubeconfig([]byte(`not a kubeconfig`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create REST config")
}
