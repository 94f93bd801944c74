package model

import "time"

// Status is the two-valued outcome classification every probe and the
// overall process share.
type Status int

const (
	Success      Status = 0
	GeneralError Status = 1
)

func (s Status) String() string {
	if s == Success {
		return "SUCCESS"
	}
	return "ERROR"
}

// CheckStatus represents the outcome of a single pipeline check.
type CheckStatus int

const (
	CheckOK   CheckStatus = 0
	CheckFail CheckStatus = 1
	CheckSkip CheckStatus = 2
)

func (s CheckStatus) String() string {
	switch s {
	case CheckOK:
		return "OK"
	case CheckFail:
		return "FAIL"
	case CheckSkip:
		return "SKIP"
	}
	return "UNKNOWN"
}

// CheckResult holds the outcome of a single check.
type CheckResult struct {
	Category string      `json:"category"`
	Name     string      `json:"name"`
	Status   CheckStatus `json:"status"`
	Detail   string      `json:"detail"`
}

// StatsSnapshot is an opaque-text capture of the two kernel statistics
// sources at one instant. The comparator only ever tests the two blobs
// for exact string equality; read errors are captured as the error text
// so they surface in the comparison rather than aborting it.
type StatsSnapshot struct {
	DiskstatsLine string `json:"diskstats_line"`
	StatFile      string `json:"stat_file"`
}

// ActivityResult describes the outcome of the read benchmark step.
// The step is never fatal: a missing tool or failed run is recorded
// here and the downstream comparison decides the verdict.
type ActivityResult struct {
	Ran         bool   `json:"ran"`
	ToolMissing bool   `json:"tool_missing"`
	Output      string `json:"output,omitempty"`
	// ThroughputBps is hdparm's reported read rate in bytes/sec,
	// zero when it could not be parsed from the output.
	ThroughputBps float64 `json:"throughput_bps,omitempty"`
}

// Report is the full outcome of one check run.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Device    string         `json:"device"`
	Skipped   bool           `json:"skipped"`
	Checks    []CheckResult  `json:"checks"`
	Activity  ActivityResult `json:"activity"`
	Before    StatsSnapshot  `json:"before"`
	After     StatsSnapshot  `json:"after"`
	Status    Status         `json:"status"`
}

// Failed reports whether any check in the report failed.
func (r *Report) Failed() bool {
	for _, c := range r.Checks {
		if c.Status == CheckFail {
			return true
		}
	}
	return false
}
