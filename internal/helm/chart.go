// Package helm installs Helm charts programmatically using the Helm v3
// action API. Charts are downloaded at runtime from their repository
// and installed or upgraded against a cluster reached through in-memory
// kubeconfig bytes or a kubeconfig path.
package helm

// ChartSpec identifies a chart in a Helm repository.
type ChartSpec struct {
	// Repository is the Helm repository URL.
	Repository string

	// Name is the chart name within the repository.
	Name string

	// Version is the chart version to install.
	Version string
}

// GPUOperatorChart is the default chart specification for the NVIDIA
// GPU Operator, published in the NGC Helm repository.
var GPUOperatorChart = ChartSpec{
	Repository: "https://helm.ngc.nvidia.com/nvidia",
	Name:       "gpu-operator",
	Version:    "v25.3.4",
}

// WithOverrides returns a copy of the spec with non-empty override
// fields applied.
func (s ChartSpec) WithOverrides(repository, name, version string) ChartSpec {
	if repository != "" {
		s.Repository = repository
	}
	if name != "" {
		s.Name = name
	}
	if version != "" {
		s.Version = version
	}
	return s
}
