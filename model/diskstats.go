package model

// DiskStats holds one parsed /proc/diskstats row. The comparator never
// looks at these fields; they exist for display in the watch view and
// the JSON report.
type DiskStats struct {
	Major           int    `json:"major"`
	Minor           int    `json:"minor"`
	Name            string `json:"name"`
	ReadsCompleted  uint64 `json:"reads_completed"`
	ReadsMerged     uint64 `json:"reads_merged"`
	SectorsRead     uint64 `json:"sectors_read"`
	ReadTimeMs      uint64 `json:"read_time_ms"`
	WritesCompleted uint64 `json:"writes_completed"`
	WritesMerged    uint64 `json:"writes_merged"`
	SectorsWritten  uint64 `json:"sectors_written"`
	WriteTimeMs     uint64 `json:"write_time_ms"`
	IOsInProgress   uint64 `json:"ios_in_progress"`
	IOTimeMs        uint64 `json:"io_time_ms"`
	WeightedIOMs    uint64 `json:"weighted_io_ms"`
}
