package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ftahirops/diskcheck/model"
	"github.com/ftahirops/diskcheck/util"
)

// CheckPartitions verifies the device appears in the partitions table.
func CheckPartitions(src Sources, device string) model.CheckResult {
	return checkTableEntry("Partitions table", src.PartitionsPath(), device)
}

// CheckDiskstatsEntry verifies the device appears in the disk-statistics table.
func CheckDiskstatsEntry(src Sources, device string) model.CheckResult {
	return checkTableEntry("Diskstats table", src.DiskstatsPath(), device)
}

// checkTableEntry searches a system-wide table for the device identifier.
// Substring match per line, same as the grep the kernel docs suggest.
func checkTableEntry(name, path, device string) model.CheckResult {
	res := model.CheckResult{Category: "Existence", Name: name}
	lines, err := util.ReadFileLines(path)
	if err != nil {
		res.Status = model.CheckFail
		res.Detail = fmt.Sprintf("Disk %s not found in %s: %v", device, path, err)
		return res
	}
	for _, line := range lines {
		if strings.Contains(line, device) {
			res.Status = model.CheckOK
			res.Detail = fmt.Sprintf("Disk %s present in %s", device, path)
			return res
		}
	}
	res.Status = model.CheckFail
	res.Detail = fmt.Sprintf("Disk %s not found in %s", device, path)
	return res
}

// CheckBlockDir verifies the per-device sysfs entry exists.
func CheckBlockDir(src Sources, device string) model.CheckResult {
	res := model.CheckResult{Category: "Existence", Name: "Sysfs entry"}
	dir := src.BlockDir(device)
	if _, err := os.Stat(dir); err != nil {
		res.Status = model.CheckFail
		res.Detail = fmt.Sprintf("Disk %s not found in %s", device, filepath.Dir(dir))
		return res
	}
	res.Status = model.CheckOK
	res.Detail = fmt.Sprintf("Disk %s present in %s", device, filepath.Dir(dir))
	return res
}

// CheckStatFile verifies the per-device statistics file exists and is
// non-empty. The two failure modes share a status code and differ only
// in the message.
func CheckStatFile(src Sources, device string) model.CheckResult {
	res := model.CheckResult{Category: "Statistics", Name: "Stat file"}
	path := src.StatPath(device)
	fi, err := os.Stat(path)
	switch {
	case err != nil:
		res.Status = model.CheckFail
		res.Detail = fmt.Sprintf("stat is nonexistent in %s/", src.BlockDir(device))
	case fi.Size() == 0:
		res.Status = model.CheckFail
		res.Detail = fmt.Sprintf("stat is empty in %s/", src.BlockDir(device))
	default:
		res.Status = model.CheckOK
		res.Detail = fmt.Sprintf("%s present (%s)", path, humanize.Bytes(uint64(fi.Size())))
	}
	return res
}
