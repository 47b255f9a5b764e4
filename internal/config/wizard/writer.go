package wizard

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// fileLayout mirrors the gpukit.yaml schema. Only values that differ
// from the defaults would be strictly necessary, but writing the full
// set documents the available knobs.
type fileLayout struct {
	Namespace string `yaml:"namespace"`
	Flavor    string `yaml:"flavor"`
	Version   string `yaml:"version"`

	Quota struct {
		Enabled  bool `yaml:"enabled"`
		PodLimit int  `yaml:"pod_limit"`
	} `yaml:"quota"`

	Driver struct {
		Enabled     bool   `yaml:"enabled"`
		ManifestURL string `yaml:"manifest_url"`
	} `yaml:"driver"`
}

// WriteConfig writes the wizard result to a YAML file with a
// descriptive header. An existing file triggers an overwrite prompt.
func WriteConfig(result *Result, outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted: %s already exists", outputPath)
		}
	}

	var layout fileLayout
	layout.Namespace = result.Namespace
	layout.Flavor = result.Flavor
	layout.Version = result.ChartVersion
	layout.Quota.Enabled = result.QuotaEnabled
	layout.Quota.PodLimit = result.PodLimit
	layout.Driver.Enabled = result.DriverEnabled
	layout.Driver.ManifestURL = result.ManifestURL

	yamlBytes, err := yaml.Marshal(&layout)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader())
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader produces the comment block at the top of the file.
func generateHeader() string {
	return fmt.Sprintf(`# gpukit configuration
# Generated by 'gpukit init' on %s
#
# Deploy with: gpukit install --config gpukit.yaml
`, time.Now().Format("2006-01-02"))
}

// defaultConfirmOverwrite asks on stdin whether to overwrite the file.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("%s already exists. Overwrite? [y/N]: ", path)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
