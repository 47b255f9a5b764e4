// Package dcgm defines the DCGM exporter metric profiles for supported
// GPU hardware flavors.
//
// The DCGM exporter is configured with a list of numeric field IDs that
// select which telemetry fields it scrapes and publishes. Different GPU
// boards expose different sensor sets, so the field list varies by
// flavor. Unknown flavors fall back to the A100 profile, which is the
// richest set.
package dcgm

import "strings"

// Supported GPU flavors.
const (
	FlavorA100 = "a100"
	FlavorL4   = "l4"
	FlavorT4   = "t4"
)

// DefaultFlavor is used when no flavor is configured.
const DefaultFlavor = FlavorA100

// DCGM field IDs referenced by the profiles below.
const (
	FieldGPUUtil           = 1001 // DCGM_FI_DEV_GPU_UTIL - GPU utilization percentage
	FieldSMClock           = 1002 // DCGM_FI_DEV_SM_CLOCK - SM clock frequency
	FieldPowerUsage        = 1004 // DCGM_FI_DEV_POWER_USAGE - power usage
	FieldMemCopyUtil       = 1005 // DCGM_FI_DEV_MEM_COPY_UTIL - memory utilization
	FieldPCIeReplayCounter = 1010 // DCGM_FI_DEV_PCIE_REPLAY_COUNTER - PCIe replay counter
	FieldGPUTemp           = 1013 // DCGM_FI_DEV_GPU_TEMP - GPU temperature
	FieldMemoryTemp        = 1018 // DCGM_FI_DEV_MEMORY_TEMP - HBM memory temperature
)

// Per-flavor field profiles. Order matters: the exporter publishes
// fields in the order listed here.
//
// The L4 profile drops the memory temperature field (no HBM on that
// board). The T4 profile additionally drops the SM clock field, which
// is not reported reliably on that generation.
var profiles = map[string][]int{
	FlavorA100: {
		FieldGPUUtil,
		FieldMemCopyUtil,
		FieldSMClock,
		FieldPowerUsage,
		FieldGPUTemp,
		FieldMemoryTemp,
		FieldPCIeReplayCounter,
	},
	FlavorL4: {
		FieldGPUUtil,
		FieldMemCopyUtil,
		FieldSMClock,
		FieldPowerUsage,
		FieldGPUTemp,
		FieldPCIeReplayCounter,
	},
	FlavorT4: {
		FieldGPUUtil,
		FieldMemCopyUtil,
		FieldPowerUsage,
		FieldGPUTemp,
		FieldPCIeReplayCounter,
	},
}

// FieldIDs returns the ordered DCGM field ID list for the given GPU
// flavor. Matching is case-insensitive; unrecognized flavors return
// the A100 list. The returned slice is a copy and safe to mutate.
func FieldIDs(flavor string) []int {
	ids, ok := profiles[strings.ToLower(strings.TrimSpace(flavor))]
	if !ok {
		ids = profiles[FlavorA100]
	}

	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// IsKnown reports whether the flavor has a dedicated profile.
func IsKnown(flavor string) bool {
	_, ok := profiles[strings.ToLower(strings.TrimSpace(flavor))]
	return ok
}

// KnownFlavors returns the supported flavor names in display order.
func KnownFlavors() []string {
	return []string{FlavorA100, FlavorL4, FlavorT4}
}
