package engine

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ftahirops/diskcheck/collector"
	"github.com/ftahirops/diskcheck/model"
)

// DefaultSettle is how long the pipeline waits after the benchmark for
// the kernel to update and flush the statistics counters.
const DefaultSettle = 5 * time.Second

// Options configures one check run.
type Options struct {
	Device  string
	Sources collector.Sources
	Runner  collector.Runner
	Settle  time.Duration

	// SkipActivity captures both snapshots without running the
	// benchmark, for testing a quiescent device.
	SkipActivity bool

	// Sleep is swappable so tests do not wait out the settle window.
	// Nil means time.Sleep.
	Sleep func(time.Duration)
}

func (o *Options) fill() {
	if o.Sources == (collector.Sources{}) {
		o.Sources = collector.DefaultSources()
	}
	if o.Runner == nil {
		o.Runner = collector.NewCmdRunner()
	}
	if o.Settle <= 0 {
		o.Settle = DefaultSettle
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
}

// Run executes the whole pipeline for one device: classify, probe
// existence, snapshot, generate activity, snapshot again, compare.
// Control flows strictly forward; the first failing probe ends the run
// with GeneralError before any snapshot is captured. Only the two
// comparator checks are independent of each other and both always
// execute.
func Run(opts Options) *model.Report {
	opts.fill()
	rep := &model.Report{
		Timestamp: time.Now(),
		Device:    opts.Device,
		Status:    model.Success,
	}

	// Non-volatile-memory modules are out of scope; a match is an
	// early success, not a failure.
	if collector.IsNonVolatile(opts.Device) {
		rep.Skipped = true
		rep.Checks = append(rep.Checks, model.CheckResult{
			Category: "Classify",
			Name:     "Device type",
			Status:   model.CheckSkip,
			Detail:   fmt.Sprintf("Disk %s appears to be an NVDIMM, skipping", opts.Device),
		})
		return rep
	}

	probes := []func(collector.Sources, string) model.CheckResult{
		collector.CheckPartitions,
		collector.CheckBlockDir,
		collector.CheckDiskstatsEntry,
		collector.CheckStatFile,
	}
	for _, probe := range probes {
		res := probe(opts.Sources, opts.Device)
		rep.Checks = append(rep.Checks, res)
		if res.Status == model.CheckFail {
			rep.Status = model.GeneralError
			return rep
		}
	}

	rep.Before = collector.CaptureSnapshot(opts.Sources, opts.Device)

	if !opts.SkipActivity {
		rep.Activity = collector.GenerateActivity(opts.Runner, opts.Sources, opts.Device)
		rep.Checks = append(rep.Checks, activityCheck(rep.Activity))
		opts.Sleep(opts.Settle)
	}

	rep.After = collector.CaptureSnapshot(opts.Sources, opts.Device)

	rep.Checks = append(rep.Checks, CompareSnapshots(opts.Sources, opts.Device, rep.Before, rep.After)...)
	if rep.Failed() {
		rep.Status = model.GeneralError
	}
	return rep
}

// activityCheck reports the benchmark outcome. Never a failure: the
// comparator decides the verdict.
func activityCheck(act model.ActivityResult) model.CheckResult {
	res := model.CheckResult{Category: "Activity", Name: "Read benchmark"}
	switch {
	case act.ToolMissing:
		res.Status = model.CheckSkip
		res.Detail = fmt.Sprintf("%s not found, relying on ambient disk activity", collector.BenchmarkTool)
	case !act.Ran:
		res.Status = model.CheckSkip
		res.Detail = fmt.Sprintf("%s failed: %s", collector.BenchmarkTool, firstLine(act.Output))
	case act.ThroughputBps > 0:
		res.Status = model.CheckOK
		res.Detail = fmt.Sprintf("read %s/sec", humanize.IBytes(uint64(act.ThroughputBps)))
	default:
		res.Status = model.CheckOK
		res.Detail = "benchmark completed"
	}
	return res
}

// CompareSnapshots requires both snapshot components to have changed.
// The two checks are independent: both always run, each unchanged
// source produces its own diagnostic with the captured values, and
// neither can mask the other.
func CompareSnapshots(src collector.Sources, device string, before, after model.StatsSnapshot) []model.CheckResult {
	var checks []model.CheckResult

	procCheck := model.CheckResult{Category: "Compare", Name: "Diskstats table", Status: model.CheckOK,
		Detail: fmt.Sprintf("Stats in %s changed", src.DiskstatsPath())}
	if before.DiskstatsLine == after.DiskstatsLine {
		procCheck.Status = model.CheckFail
		procCheck.Detail = fmt.Sprintf("Stats in %s did not change\noutput: %s\noutput: %s",
			src.DiskstatsPath(), before.DiskstatsLine, after.DiskstatsLine)
	}
	checks = append(checks, procCheck)

	statCheck := model.CheckResult{Category: "Compare", Name: "Stat file", Status: model.CheckOK,
		Detail: fmt.Sprintf("Stats in %s changed", src.StatPath(device))}
	if before.StatFile == after.StatFile {
		statCheck.Status = model.CheckFail
		statCheck.Detail = fmt.Sprintf("Stats in %s did not change\noutput: %s\noutput: %s",
			src.StatPath(device), before.StatFile, after.StatFile)
	}
	checks = append(checks, statCheck)

	return checks
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
