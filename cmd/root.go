package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/diskcheck/config"
	"github.com/ftahirops/diskcheck/engine"
	"github.com/ftahirops/diskcheck/history"
	"github.com/ftahirops/diskcheck/model"
	"github.com/ftahirops/diskcheck/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

const fallbackDevice = "sda"

// Flags holds CLI configuration.
type Flags struct {
	Device       string
	Settle       time.Duration
	Interval     time.Duration
	JSONMode     bool
	WatchMode    bool
	SkipActivity bool
	HistoryMode  bool
	HistoryCount int
	NoRecord     bool
	DataDir      string
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `diskcheck v%s — block device statistics check for Linux

Verifies a disk is recognized by the OS and that its I/O statistics
counters advance after a short read benchmark. Non-volatile-memory
devices (pmem/nvdimm) are out of scope and skipped with success.

Usage:
  diskcheck [OPTIONS] [DEVICE]

Modes:
  (default)         One-shot check, human-readable output
  -json             One-shot check, JSON report to stdout
  -watch            Live view re-running the check on an interval
  -history          Print recent recorded runs and exit
  -version          Print version and exit

Options:
  -settle N         Seconds to wait after the benchmark before the
                    second snapshot (default: 5)
  -interval N       Re-run interval in seconds for -watch (default: 30)
  -skip-activity    Capture both snapshots without running the benchmark
  -count N          Number of history entries to print (default: 20)
  -no-record        Do not record this run in the history ledger
  -datadir PATH     History directory (default: ~/.diskcheck/)
  -save-config      Save the effective settings as defaults and exit

Positional:
  DEVICE            Block device name, e.g. sdb (default: %s, or the
                    device key in ~/.config/diskcheck/config.json)

Exit status:
  0                 All checks passed, or the device is an NVDIMM
  1                 Any probe or comparison failure

Examples:
  sudo diskcheck sdb
  sudo diskcheck -json sdb
  sudo diskcheck -watch -interval 60 nvme0n1
  diskcheck -history
`, Version, fallbackDevice)
}

// Run parses flags and executes the selected mode.
func Run() error {
	cfg := config.Load()

	var f Flags
	var settleSec, intervalSec int
	var showVersion, saveConfig bool

	flag.IntVar(&settleSec, "settle", cfg.SettleSec, "Seconds between benchmark and second snapshot")
	flag.IntVar(&intervalSec, "interval", cfg.IntervalSec, "Re-run interval in seconds for -watch")
	flag.BoolVar(&f.JSONMode, "json", false, "Output the report as JSON and exit")
	flag.BoolVar(&f.WatchMode, "watch", false, "Live view re-running the check on an interval")
	flag.BoolVar(&f.SkipActivity, "skip-activity", false, "Do not run the read benchmark")
	flag.BoolVar(&f.HistoryMode, "history", false, "Print recent recorded runs and exit")
	flag.IntVar(&f.HistoryCount, "count", 20, "Number of history entries to print")
	flag.BoolVar(&f.NoRecord, "no-record", false, "Do not record this run")
	flag.StringVar(&f.DataDir, "datadir", "", "History directory (default: ~/.diskcheck/)")
	flag.BoolVar(&saveConfig, "save-config", false, "Save the effective settings as defaults and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("diskcheck v%s\n", Version)
		return nil
	}

	f.Device = cfg.Device
	if f.Device == "" {
		f.Device = fallbackDevice
	}
	if args := flag.Args(); len(args) > 0 {
		f.Device = args[0]
	}
	f.Settle = time.Duration(settleSec) * time.Second
	f.Interval = time.Duration(intervalSec) * time.Second

	if f.DataDir == "" {
		f.DataDir = cfg.DataDir
	}
	if f.DataDir == "" {
		f.DataDir = config.DefaultDataDir()
	}

	if saveConfig {
		cfg.Device = f.Device
		cfg.SettleSec = settleSec
		cfg.IntervalSec = intervalSec
		cfg.DataDir = f.DataDir
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Printf("Saved config to %s\n", config.Path())
		return nil
	}

	if f.HistoryMode {
		return runHistory(f)
	}

	// Reads under /sys/block and hdparm both want root.
	if os.Geteuid() != 0 {
		fmt.Fprintln(os.Stderr, "Warning: running without root — the read benchmark may be unavailable")
	}

	if f.WatchMode {
		m := ui.NewModel(checkOptions(f), f.Interval)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	return runCheck(f)
}

func checkOptions(f Flags) engine.Options {
	return engine.Options{
		Device:       f.Device,
		Settle:       f.Settle,
		SkipActivity: f.SkipActivity,
	}
}

// runCheck performs a single check run and renders the report.
func runCheck(f Flags) error {
	rep := engine.Run(checkOptions(f))

	if !f.NoRecord {
		recordRun(f.DataDir, rep)
	}

	if f.JSONMode {
		if err := renderReportJSON(rep); err != nil {
			return err
		}
	} else {
		renderReportCLI(rep)
	}

	if rep.Status != model.Success {
		return ExitCodeError{Code: int(rep.Status)}
	}
	return nil
}

// recordRun appends the run to the history ledger, best-effort.
func recordRun(dataDir string, rep *model.Report) {
	store, err := history.Open(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(rep); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history record failed: %v\n", err)
	}
}

// runHistory prints recent recorded runs.
func runHistory(f Flags) error {
	store, err := history.Open(f.DataDir)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(f.HistoryCount)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	renderHistory(entries)
	return nil
}
