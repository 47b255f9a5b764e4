package stack

import (
	"context"
	"fmt"
	"log"
)

// Uninstall removes the Helm release and, when removeNamespace is set,
// the namespace along with everything in it (including the resource
// quota). The driver DaemonSet lives in its own namespace and is left
// in place; removing it would strip drivers from nodes still running
// GPU workloads.
func (i *Installer) Uninstall(ctx context.Context, removeNamespace bool) error {
	if i.helm.ReleaseExists(ReleaseName) {
		log.Printf("Uninstalling release %s...", ReleaseName)
		if err := i.helm.Uninstall(ReleaseName); err != nil {
			return fmt.Errorf("failed to uninstall release %s: %w", ReleaseName, err)
		}
	} else {
		log.Printf("Release %s not found, skipping", ReleaseName)
	}

	if removeNamespace {
		log.Printf("Deleting namespace %s...", i.cfg.Namespace)
		if err := i.kube.DeleteNamespace(ctx, i.cfg.Namespace); err != nil {
			return err
		}
	}

	return nil
}
