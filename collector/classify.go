package collector

import "strings"

// nonVolatileMarkers identify persistent-memory backed block devices.
// NVDIMM namespaces usually surface as pmem*, but some platforms expose
// an nvdimm-prefixed name, so both are matched.
var nonVolatileMarkers = []string{"pmem", "nvdimm"}

// IsNonVolatile reports whether the device identifier names a
// non-volatile-memory module. Matching is a case-sensitive substring
// test; such devices are out of scope for the statistics check and the
// caller short-circuits with success.
func IsNonVolatile(device string) bool {
	for _, marker := range nonVolatileMarkers {
		if strings.Contains(device, marker) {
			return true
		}
	}
	return false
}
