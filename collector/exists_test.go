package collector

import (
	"os"
	"strings"
	"testing"

	"github.com/ftahirops/diskcheck/model"
)

func TestCheckPartitions(t *testing.T) {
	src := newFixtureSources(t, "sdb")

	if res := CheckPartitions(src, "sdb"); res.Status != model.CheckOK {
		t.Errorf("present device: status = %v, detail = %q", res.Status, res.Detail)
	}

	res := CheckPartitions(src, "zzz")
	if res.Status != model.CheckFail {
		t.Fatalf("absent device: status = %v, want CheckFail", res.Status)
	}
	if !strings.Contains(res.Detail, src.PartitionsPath()) {
		t.Errorf("failure detail %q does not name the source file", res.Detail)
	}
}

func TestCheckBlockDir(t *testing.T) {
	src := newFixtureSources(t, "sdb")

	if res := CheckBlockDir(src, "sdb"); res.Status != model.CheckOK {
		t.Errorf("present device: status = %v", res.Status)
	}
	if res := CheckBlockDir(src, "zzz"); res.Status != model.CheckFail {
		t.Errorf("absent device: status = %v, want CheckFail", res.Status)
	}
}

func TestCheckDiskstatsEntry(t *testing.T) {
	src := newFixtureSources(t, "sdb")

	if res := CheckDiskstatsEntry(src, "sdb"); res.Status != model.CheckOK {
		t.Errorf("present device: status = %v", res.Status)
	}
	if res := CheckDiskstatsEntry(src, "zzz"); res.Status != model.CheckFail {
		t.Errorf("absent device: status = %v, want CheckFail", res.Status)
	}
}

func TestCheckStatFile(t *testing.T) {
	src := newFixtureSources(t, "sdb")

	if res := CheckStatFile(src, "sdb"); res.Status != model.CheckOK {
		t.Errorf("non-empty stat file: status = %v", res.Status)
	}

	// Empty and missing share the status code but not the message.
	if err := os.WriteFile(src.StatPath("sdb"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	empty := CheckStatFile(src, "sdb")
	if empty.Status != model.CheckFail || !strings.Contains(empty.Detail, "empty") {
		t.Errorf("empty stat file: status = %v, detail = %q", empty.Status, empty.Detail)
	}

	if err := os.Remove(src.StatPath("sdb")); err != nil {
		t.Fatal(err)
	}
	missing := CheckStatFile(src, "sdb")
	if missing.Status != model.CheckFail || !strings.Contains(missing.Detail, "nonexistent") {
		t.Errorf("missing stat file: status = %v, detail = %q", missing.Status, missing.Detail)
	}
}
