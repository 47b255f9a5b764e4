package stack

import (
	"context"
	"fmt"
	"log"

	"helm.sh/helm/v3/pkg/release"
)

// Verify checks the deployed stack: the driver DaemonSet must have
// completed its rollout and the Helm release must be in the deployed
// state.
func (i *Installer) Verify(ctx context.Context) error {
	if i.cfg.Driver.Enabled {
		log.Printf("Waiting for DaemonSet %s/%s rollout...", i.cfg.Driver.Namespace, i.cfg.Driver.Name)
		if err := i.kube.WaitForDaemonSet(ctx, i.cfg.Driver.Namespace, i.cfg.Driver.Name, i.cfg.Timeout); err != nil {
			return fmt.Errorf("driver daemonset %s/%s not ready: %w", i.cfg.Driver.Namespace, i.cfg.Driver.Name, err)
		}
	}

	status, err := i.helm.Status(ReleaseName)
	if err != nil {
		return fmt.Errorf("failed to get release %s status: %w", ReleaseName, err)
	}
	if status != release.StatusDeployed {
		return fmt.Errorf("release %s is %s, expected %s", ReleaseName, status, release.StatusDeployed)
	}

	log.Printf("Release %s is deployed", ReleaseName)
	return nil
}
