package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/gpukit/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.RunWizard

	// writeWizardConfig writes the wizard result to a file.
	writeWizardConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeWizardConfig(result, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, result)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("gpukit - NVIDIA GPU Operator deployment")
	fmt.Println("=======================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment configuration with sensible defaults.")
	fmt.Println("Press Enter to accept a default value.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, result *wizard.Result) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Namespace:     %s\n", result.Namespace)
	fmt.Printf("  GPU flavor:    %s\n", result.Flavor)
	fmt.Printf("  Chart version: %s\n", result.ChartVersion)
	if result.QuotaEnabled {
		fmt.Printf("  Pod quota:     %d (critical priority classes)\n", result.PodLimit)
	} else {
		fmt.Printf("  Pod quota:     disabled\n")
	}
	if result.DriverEnabled {
		fmt.Printf("  Driver:        %s\n", result.ManifestURL)
	} else {
		fmt.Printf("  Driver:        disabled\n")
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Deploy the stack:")
	fmt.Printf("     gpukit install --config %s\n", outputPath)
	fmt.Println()
}
