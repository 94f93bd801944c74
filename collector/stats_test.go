package collector

import (
	"strings"
	"testing"
)

func TestCaptureSnapshot(t *testing.T) {
	src := newFixtureSources(t, "sdb")

	snap := CaptureSnapshot(src, "sdb")
	if !strings.Contains(snap.DiskstatsLine, " sdb ") {
		t.Errorf("diskstats capture = %q, want the sdb row", snap.DiskstatsLine)
	}
	if snap.StatFile != fixtureStat {
		t.Errorf("stat capture = %q, want the full file contents", snap.StatFile)
	}
}

func TestCaptureSnapshotWholeWord(t *testing.T) {
	// "sda" must capture the sda row, never sda1's.
	src := newFixtureSources(t, "sda")
	snap := CaptureSnapshot(src, "sda")
	if !strings.Contains(snap.DiskstatsLine, " sda ") || strings.Contains(snap.DiskstatsLine, "sda1") {
		t.Errorf("diskstats capture = %q, want the whole-word sda row", snap.DiskstatsLine)
	}
}

func TestCaptureSnapshotAbsentDevice(t *testing.T) {
	src := newFixtureSources(t, "sdb")
	snap := CaptureSnapshot(src, "zzz")
	if snap.DiskstatsLine != "" {
		t.Errorf("absent device diskstats capture = %q, want empty", snap.DiskstatsLine)
	}
	// Unreadable stat file surfaces as the error text, not a panic or abort.
	if snap.StatFile == "" {
		t.Error("absent device stat capture is empty, want the read error text")
	}
}

func TestParseDiskstatsLine(t *testing.T) {
	ds, ok := ParseDiskstatsLine("   8      16 sdb 5301 12 128744 501 1204 88 20176 811 0 1120 1312")
	if !ok {
		t.Fatal("ParseDiskstatsLine rejected a valid row")
	}
	if ds.Name != "sdb" || ds.ReadsCompleted != 5301 || ds.WritesCompleted != 1204 || ds.WeightedIOMs != 1312 {
		t.Errorf("parsed row = %+v", ds)
	}

	if _, ok := ParseDiskstatsLine("too short"); ok {
		t.Error("ParseDiskstatsLine accepted a truncated row")
	}
}
