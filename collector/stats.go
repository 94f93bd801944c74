package collector

import (
	"strings"

	"github.com/ftahirops/diskcheck/model"
	"github.com/ftahirops/diskcheck/util"
)

// CaptureSnapshot captures the two statistics sources for a device as
// opaque text. Both reads are best-effort: a failure is recorded as the
// error text instead of aborting, so an unreadable source shows up as a
// (non-)mismatch in the later comparison rather than a separate fatal
// path.
func CaptureSnapshot(src Sources, device string) model.StatsSnapshot {
	var snap model.StatsSnapshot

	lines, err := util.ReadFileLines(src.DiskstatsPath())
	if err != nil {
		snap.DiskstatsLine = err.Error()
	} else {
		snap.DiskstatsLine = diskstatsLineFor(lines, device)
	}

	content, err := util.ReadFileString(src.StatPath(device))
	if err != nil {
		snap.StatFile = err.Error()
	} else {
		snap.StatFile = content
	}
	return snap
}

// diskstatsLineFor returns the first diskstats line whose device-name
// column matches exactly. Whole-word matching keeps "sda" from ever
// capturing the "sda1" row.
func diskstatsLineFor(lines []string, device string) string {
	for _, line := range lines {
		if util.FieldsAt(line, 2) == device {
			return line
		}
	}
	return ""
}

// ParseDiskstatsLine parses a /proc/diskstats row for display purposes.
// Format: major minor name reads_completed reads_merged sectors_read read_time
//         writes_completed writes_merged sectors_written write_time ios_in_progress io_time weighted_io_time
func ParseDiskstatsLine(line string) (model.DiskStats, bool) {
	fields := strings.Fields(line)
	if len(fields) < 14 {
		return model.DiskStats{}, false
	}
	return model.DiskStats{
		Major:           util.ParseInt(fields[0]),
		Minor:           util.ParseInt(fields[1]),
		Name:            fields[2],
		ReadsCompleted:  util.ParseUint64(fields[3]),
		ReadsMerged:     util.ParseUint64(fields[4]),
		SectorsRead:     util.ParseUint64(fields[5]),
		ReadTimeMs:      util.ParseUint64(fields[6]),
		WritesCompleted: util.ParseUint64(fields[7]),
		WritesMerged:    util.ParseUint64(fields[8]),
		SectorsWritten:  util.ParseUint64(fields[9]),
		WriteTimeMs:     util.ParseUint64(fields[10]),
		IOsInProgress:   util.ParseUint64(fields[11]),
		IOTimeMs:        util.ParseUint64(fields[12]),
		WeightedIOMs:    util.ParseUint64(fields[13]),
	}, true
}
