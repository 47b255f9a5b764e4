package stack

import (
	"github.com/imamik/gpukit/internal/config"
	"github.com/imamik/gpukit/internal/dcgm"
	"github.com/imamik/gpukit/internal/helm"
)

// driverInstallDir is where the out-of-band driver installer places
// the driver and toolkit binaries on GKE nodes. The chart's host paths
// must point at the same location.
const driverInstallDir = "/home/kubernetes/bin/nvidia"

// BuildValues produces the gpu-operator chart values. The in-chart
// driver is disabled because the driver installer DaemonSet handles
// driver installation; CDI is enabled and made the default device
// interface; the DCGM exporter scrapes the field set matching the
// configured GPU flavor.
func BuildValues(cfg *config.Config) helm.Values {
	return helm.Values{
		"hostPaths": helm.Values{
			"driverInstallDir": driverInstallDir,
		},
		"toolkit": helm.Values{
			"installDir": driverInstallDir,
		},
		"cdi": helm.Values{
			"enabled": true,
			"default": true,
		},
		"driver": helm.Values{
			"enabled": false,
		},
		"dcgmExporter": helm.Values{
			"enabled": true,
			"serviceMonitor": helm.Values{
				"enabled": true,
			},
			"config": helm.Values{
				"collectInterval": cfg.DCGM.CollectIntervalMs,
				"publishInterval": cfg.DCGM.PublishIntervalMs,
				"fieldIds":        dcgm.FieldIDs(cfg.Flavor),
			},
		},
	}
}
