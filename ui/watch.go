package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/ftahirops/diskcheck/collector"
	"github.com/ftahirops/diskcheck/engine"
	"github.com/ftahirops/diskcheck/model"
)

type tickMsg time.Time

type reportMsg struct {
	rep *model.Report
}

// Model is the bubbletea model for -watch mode: it re-runs the check on
// an interval and renders the latest report.
type Model struct {
	opts     engine.Options
	interval time.Duration

	rep     *model.Report
	runs    int
	running bool
	lastRun time.Time

	spin   spinner.Model
	width  int
	height int
}

// NewModel creates the watch model.
func NewModel(opts engine.Options, interval time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = dimStyle
	return Model{opts: opts, interval: interval, spin: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runCheck(), m.spin.Tick)
}

// runCheck executes one pipeline run off the UI goroutine. The settle
// sleep happens inside, so a run occupies several seconds of spinner.
func (m Model) runCheck() tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		return reportMsg{rep: engine.Run(opts)}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.running {
				m.running = true
				return m, m.runCheck()
			}
		}
		return m, nil

	case tickMsg:
		if m.running {
			// Previous run still in flight; skip this interval.
			return m, m.tick()
		}
		m.running = true
		return m, tea.Batch(m.runCheck(), m.tick())

	case reportMsg:
		m.rep = msg.rep
		m.runs++
		m.running = false
		m.lastRun = time.Now()
		if m.runs == 1 {
			return m, m.tick()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	title := titleStyle.Render(fmt.Sprintf("diskcheck — %s", m.opts.Device))
	status := dimStyle.Render(fmt.Sprintf("every %s  runs %d", m.interval, m.runs))
	if m.running {
		status = m.spin.View() + dimStyle.Render(" checking...")
	}
	sb.WriteString(fmt.Sprintf("%s  %s\n\n", title, status))

	if m.rep == nil {
		sb.WriteString(dimStyle.Render("Waiting for first run..."))
		return sb.String()
	}

	sb.WriteString(panelStyle.Render(renderChecks(m.rep)))
	sb.WriteString("\n\n")
	sb.WriteString(renderVerdict(m.rep))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("last run %s  ", m.lastRun.Format("15:04:05"))))
	sb.WriteString(dimStyle.Render("r rerun  q quit"))
	return sb.String()
}

func renderChecks(rep *model.Report) string {
	var lines []string
	for _, c := range rep.Checks {
		var icon string
		switch c.Status {
		case model.CheckOK:
			icon = okStyle.Render("✓")
		case model.CheckFail:
			icon = failStyle.Render("✗")
		case model.CheckSkip:
			icon = skipStyle.Render("○")
		}
		detail := strings.Split(c.Detail, "\n")[0]
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			icon, valueStyle.Render(fmt.Sprintf("%-18s", c.Name)), detail))
	}
	if rep.Activity.ThroughputBps > 0 {
		lines = append(lines, dimStyle.Render(
			fmt.Sprintf("  benchmark %s/sec", humanize.IBytes(uint64(rep.Activity.ThroughputBps)))))
	}
	if delta := renderCounterDelta(rep); delta != "" {
		lines = append(lines, delta)
	}
	return strings.Join(lines, "\n")
}

// renderCounterDelta shows how far the diskstats counters moved across
// the activity window, when both captures parse.
func renderCounterDelta(rep *model.Report) string {
	before, okB := collector.ParseDiskstatsLine(rep.Before.DiskstatsLine)
	after, okA := collector.ParseDiskstatsLine(rep.After.DiskstatsLine)
	if !okB || !okA {
		return ""
	}
	return dimStyle.Render(fmt.Sprintf("  +%s reads  +%s sectors  +%s writes",
		humanize.Comma(int64(after.ReadsCompleted-before.ReadsCompleted)),
		humanize.Comma(int64(after.SectorsRead-before.SectorsRead)),
		humanize.Comma(int64(after.WritesCompleted-before.WritesCompleted))))
}

func renderVerdict(rep *model.Report) string {
	switch {
	case rep.Skipped:
		return skipStyle.Render(fmt.Sprintf("SKIP  %s is non-volatile memory, out of scope", rep.Device))
	case rep.Status == model.Success:
		return okStyle.Render(fmt.Sprintf("PASS  stats advanced for %s", rep.Device))
	default:
		return failStyle.Render(fmt.Sprintf("FAIL  stats check failed for %s", rep.Device))
	}
}
