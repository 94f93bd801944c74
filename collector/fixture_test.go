package collector

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	fixturePartitions = `major minor  #blocks  name

   8        0  488386584 sda
   8        1  488385543 sda1
   8       16  976762584 sdb
`
	fixtureDiskstats = `   8       0 sda 12001 704 343586 1154 4790 214 58544 2372 0 3572 3526
   8       1 sda1 11850 620 339707 1102 4601 214 58544 2301 0 3481 3403
   8      16 sdb 5301 12 128744 501 1204 88 20176 811 0 1120 1312
`
	fixtureStat = "    5301       12   128744      501     1204       88    20176      811        0     1120     1312\n"
)

// newFixtureSources builds a /proc + /sys lookalike tree for one device.
func newFixtureSources(t *testing.T, device string) Sources {
	t.Helper()
	root := t.TempDir()
	src := Sources{
		ProcRoot: filepath.Join(root, "proc"),
		SysRoot:  filepath.Join(root, "sys"),
		DevRoot:  filepath.Join(root, "dev"),
	}
	mustMkdir(t, src.ProcRoot)
	mustWrite(t, src.PartitionsPath(), fixturePartitions)
	mustWrite(t, src.DiskstatsPath(), fixtureDiskstats)
	if device != "" {
		mustMkdir(t, src.BlockDir(device))
		mustWrite(t, src.StatPath(device), fixtureStat)
	}
	return src
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
