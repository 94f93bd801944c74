package collector

import (
	"context"
	"os/exec"
	"path/filepath"
	"time"
)

// Sources locates the kernel-exposed text sources for block devices.
// The roots are configurable so tests can point them at fixture trees.
type Sources struct {
	ProcRoot string
	SysRoot  string
	DevRoot  string
}

// DefaultSources returns the live kernel interfaces.
func DefaultSources() Sources {
	return Sources{ProcRoot: "/proc", SysRoot: "/sys", DevRoot: "/dev"}
}

// PartitionsPath is the system-wide partitions table.
func (s Sources) PartitionsPath() string {
	return filepath.Join(s.ProcRoot, "partitions")
}

// DiskstatsPath is the system-wide per-partition statistics table.
func (s Sources) DiskstatsPath() string {
	return filepath.Join(s.ProcRoot, "diskstats")
}

// BlockDir is the per-device sysfs directory.
func (s Sources) BlockDir(device string) string {
	return filepath.Join(s.SysRoot, "block", device)
}

// StatPath is the per-device statistics file.
func (s Sources) StatPath(device string) string {
	return filepath.Join(s.SysRoot, "block", device, "stat")
}

// DevicePath is the device node the benchmark reads from.
func (s Sources) DevicePath(device string) string {
	return filepath.Join(s.DevRoot, device)
}

// Runner executes an external text-producing command and captures its
// combined output. It is the only capability the pipeline needs beyond
// reading files, which keeps the benchmark step testable and the core
// independent of any particular tool being installed.
type Runner interface {
	LookPath(name string) (string, error)
	Run(name string, args ...string) (string, error)
}

// CmdRunner runs commands with a bounded context.
type CmdRunner struct {
	Timeout time.Duration
}

// NewCmdRunner returns a runner with a timeout generous enough for a
// read benchmark (hdparm -t reads for about 3 seconds per pass but can
// stall on a struggling device).
func NewCmdRunner() CmdRunner {
	return CmdRunner{Timeout: 60 * time.Second}
}

func (r CmdRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r CmdRunner) Run(name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
