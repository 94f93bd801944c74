package collector

import "testing"

func TestIsNonVolatile(t *testing.T) {
	tests := []struct {
		device string
		want   bool
	}{
		{"pmem0", true},
		{"pmem12", true},
		{"nvdimm0", true},
		{"xpmem", true},
		{"sda", false},
		{"sdb", false},
		{"nvme0n1", false},
		{"PMEM0", false}, // case-sensitive by contract
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			if got := IsNonVolatile(tt.device); got != tt.want {
				t.Errorf("IsNonVolatile(%q) = %v, want %v", tt.device, got, tt.want)
			}
		})
	}
}
