// Package stack composes the GPU operator deployment: namespace,
// resource quota, driver installer DaemonSet, and the gpu-operator
// Helm release, applied in that fixed order. Each resource depends on
// the previous one; the first failure halts the sequence and surfaces
// the underlying client error unmodified.
package stack

import (
	"context"
	"fmt"
	"log"
	"time"

	"helm.sh/helm/v3/pkg/release"

	"github.com/imamik/gpukit/internal/config"
	"github.com/imamik/gpukit/internal/helm"
)

const (
	// ReleaseName is the Helm release name for the operator chart.
	ReleaseName = "gpu-operator"

	// QuotaName is the ResourceQuota object name.
	QuotaName = "gpu-operator-quota"

	// FieldManager identifies gpukit in server-side apply operations.
	FieldManager = "gpukit"
)

// KubeClient is the subset of Kubernetes operations the stack needs.
type KubeClient interface {
	EnsureNamespace(ctx context.Context, name string) error
	DeleteNamespace(ctx context.Context, name string) error
	ApplyResourceQuota(ctx context.Context, namespace, name string, podLimit int) error
	ApplyManifests(ctx context.Context, manifests []byte, fieldManager string) error
	WaitForDaemonSet(ctx context.Context, namespace, name string, timeout time.Duration) error
}

// HelmClient is the subset of Helm operations the stack needs.
type HelmClient interface {
	InstallOrUpgrade(ctx context.Context, releaseName string, spec helm.ChartSpec, values helm.Values) (*release.Release, error)
	Uninstall(releaseName string) error
	Status(releaseName string) (release.Status, error)
	ReleaseExists(releaseName string) bool
}

// Fetcher downloads remote manifests.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Step is one resource of the stack. Steps run in declaration order.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Installer deploys the GPU operator stack onto a cluster.
type Installer struct {
	cfg     *config.Config
	kube    KubeClient
	helm    HelmClient
	fetcher Fetcher
}

// NewInstaller creates an Installer for the given configuration.
func NewInstaller(cfg *config.Config, kube KubeClient, helmClient HelmClient, fetcher Fetcher) *Installer {
	return &Installer{
		cfg:     cfg,
		kube:    kube,
		helm:    helmClient,
		fetcher: fetcher,
	}
}

// Steps returns the ordered resource steps. Disabled resources are
// omitted; the relative order of the remaining steps is fixed:
// namespace, quota, driver, release.
func (i *Installer) Steps() []Step {
	steps := []Step{
		{
			Name: "namespace",
			Run: func(ctx context.Context) error {
				return i.kube.EnsureNamespace(ctx, i.cfg.Namespace)
			},
		},
	}

	if i.cfg.Quota.Enabled {
		steps = append(steps, Step{
			Name: "resource-quota",
			Run: func(ctx context.Context) error {
				return i.kube.ApplyResourceQuota(ctx, i.cfg.Namespace, QuotaName, i.cfg.Quota.PodLimit)
			},
		})
	}

	if i.cfg.Driver.Enabled {
		steps = append(steps, Step{
			Name: "driver-daemonset",
			Run:  i.applyDriver,
		})
	}

	steps = append(steps, Step{
		Name: "helm-release",
		Run:  i.applyRelease,
	})

	return steps
}

// Install runs all steps in order, halting at the first failure.
func (i *Installer) Install(ctx context.Context) error {
	steps := i.Steps()

	for n, step := range steps {
		log.Printf("[%d/%d] Applying %s...", n+1, len(steps), step.Name)
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
	}

	log.Printf("GPU operator stack installed in namespace %s", i.cfg.Namespace)
	return nil
}

// applyDriver fetches the driver installer manifest and applies it.
func (i *Installer) applyDriver(ctx context.Context) error {
	manifests, err := i.fetcher.Fetch(ctx, i.cfg.Driver.ManifestURL)
	if err != nil {
		return err
	}

	return i.kube.ApplyManifests(ctx, manifests, FieldManager)
}

// applyRelease installs or upgrades the gpu-operator chart.
func (i *Installer) applyRelease(ctx context.Context) error {
	spec := helm.GPUOperatorChart.WithOverrides(
		i.cfg.Chart.Repository, i.cfg.Chart.Name, i.cfg.Chart.Version)

	_, err := i.helm.InstallOrUpgrade(ctx, ReleaseName, spec, BuildValues(i.cfg))
	return err
}
