package collector

import (
	"errors"
	"testing"
)

// fakeRunner scripts LookPath and Run outcomes.
type fakeRunner struct {
	missing bool
	out     string
	err     error

	ranName string
	ranArgs []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/sbin/" + name, nil
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	f.ranName = name
	f.ranArgs = args
	return f.out, f.err
}

const hdparmOut = `
/dev/sdb:
 Timing buffered disk reads: 1234 MB in  3.00 seconds = 411.33 MB/sec
`

func TestGenerateActivity(t *testing.T) {
	src := DefaultSources()

	t.Run("tool missing", func(t *testing.T) {
		r := &fakeRunner{missing: true}
		res := GenerateActivity(r, src, "sdb")
		if !res.ToolMissing || res.Ran {
			t.Errorf("result = %+v, want ToolMissing and not Ran", res)
		}
		if r.ranName != "" {
			t.Error("Run was called despite missing tool")
		}
	})

	t.Run("benchmark fails", func(t *testing.T) {
		r := &fakeRunner{out: "read failed: Input/output error", err: errors.New("exit status 5")}
		res := GenerateActivity(r, src, "sdb")
		if res.Ran || res.ToolMissing {
			t.Errorf("result = %+v, want neither Ran nor ToolMissing", res)
		}
		if res.Output == "" {
			t.Error("failed run did not capture the tool output")
		}
	})

	t.Run("benchmark succeeds", func(t *testing.T) {
		r := &fakeRunner{out: hdparmOut}
		res := GenerateActivity(r, src, "sdb")
		if !res.Ran {
			t.Fatalf("result = %+v, want Ran", res)
		}
		if r.ranName != BenchmarkTool || len(r.ranArgs) != 2 || r.ranArgs[1] != "/dev/sdb" {
			t.Errorf("ran %s %v, want %s -t /dev/sdb", r.ranName, r.ranArgs, BenchmarkTool)
		}
		want := 411.33 * (1 << 20)
		if res.ThroughputBps < want-1 || res.ThroughputBps > want+1 {
			t.Errorf("throughput = %f, want ~%f", res.ThroughputBps, want)
		}
	})
}

func TestParseThroughput(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want float64
		ok   bool
	}{
		{"MB", "= 411.33 MB/sec", 411.33 * (1 << 20), true},
		{"kB", "= 900 kB/sec", 900 * (1 << 10), true},
		{"GB", "= 1.5 GB/sec", 1.5 * (1 << 30), true},
		{"no match", "nothing here", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseThroughput(tt.out)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (got < tt.want-1 || got > tt.want+1) {
				t.Errorf("throughput = %f, want ~%f", got, tt.want)
			}
		})
	}
}
