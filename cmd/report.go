package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ftahirops/diskcheck/history"
	"github.com/ftahirops/diskcheck/model"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	R = "\033[0m" // reset
	B = "\033[1m" // bold
	D = "\033[2m" // dim

	FBRed = "\033[91m"
	FBGrn = "\033[92m"
	FBYel = "\033[93m"
)

// ExitCodeError signals a non-zero exit code without calling os.Exit directly.
type ExitCodeError struct{ Code int }

func (e ExitCodeError) Error() string { return fmt.Sprintf("exit %d", e.Code) }

// renderReportCLI prints the check results as human-readable lines, one
// per failure or milestone, then the final verdict line.
func renderReportCLI(rep *model.Report) {
	const nameW = 18

	lastCategory := ""
	for _, c := range rep.Checks {
		if c.Category != lastCategory {
			fmt.Printf("%s%s%s\n", D, c.Category, R)
			lastCategory = c.Category
		}

		var icon string
		switch c.Status {
		case model.CheckOK:
			icon = fmt.Sprintf("%s✓%s", FBGrn, R)
		case model.CheckFail:
			icon = fmt.Sprintf("%s%s✗%s", B, FBRed, R)
		case model.CheckSkip:
			icon = fmt.Sprintf("%s○%s", FBYel, R)
		}

		name := c.Name
		if len(name) > nameW {
			name = name[:nameW]
		}
		padded := name + strings.Repeat(" ", nameW-len(name))

		lines := strings.Split(c.Detail, "\n")
		fmt.Printf(" %s %s%s%s  %s\n", icon, B, padded, R, lines[0])
		indent := strings.Repeat(" ", nameW+5)
		for _, extra := range lines[1:] {
			fmt.Printf("%s%s\n", indent, extra)
		}
	}

	fmt.Println()
	if rep.Skipped {
		return
	}
	if rep.Status == model.Success {
		fmt.Printf("PASS: Finished testing stats for %s\n", rep.Device)
	} else {
		fmt.Printf("%s%sFAIL:%s stats check failed for %s\n", B, FBRed, R, rep.Device)
	}
}

// renderReportJSON writes the full report as indented JSON to stdout.
func renderReportJSON(rep *model.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// renderHistory prints recorded runs, newest first.
func renderHistory(entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Println("No recorded runs")
		return
	}
	for _, e := range entries {
		color := FBGrn
		if e.Status != model.Success {
			color = FBRed
		}
		fmt.Printf(" %s%-7s%s %s  %s%-8s%s %s\n",
			color, e.Status, R,
			e.Time.Format("2006-01-02 15:04:05"),
			B, e.Device, R,
			e.Summary)
	}
}
