package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSummaries(t *testing.T) {
	base := t.TempDir()
	writeLog(t, filepath.Join(base, "noise_2d", "cfg-a.csv"),
		"s1,0.1,2.0,0.25\ns1,0.3,4.0,0.35\ns2,0.2,3.0,0.30\n")
	writeLog(t, filepath.Join(base, "noise_1d", "cfg-b.csv"),
		"s1,0.5,1.0,0.10\n")

	summaries, err := load(base, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	byGame := map[string]*summary{}
	for _, s := range summaries {
		byGame[s.game] = s
	}
	s := byGame["noise_2d"]
	if s == nil || s.attempts != 3 || s.sessions != 2 {
		t.Fatalf("noise_2d summary = %+v", s)
	}
	if got := mean(s.distances); got < 0.199 || got > 0.201 {
		t.Fatalf("mean distance = %g, want 0.2", got)
	}
	if got := median(s.distances); got != 0.2 {
		t.Fatalf("median distance = %g, want 0.2", got)
	}
	if s.meanTime != 3.0 {
		t.Fatalf("mean time = %g, want 3.0", s.meanTime)
	}
}

func TestLoadGameFilter(t *testing.T) {
	base := t.TempDir()
	writeLog(t, filepath.Join(base, "noise_2d", "cfg.csv"), "s1,0.1,2.0,0.25\n")
	writeLog(t, filepath.Join(base, "noise_1d", "cfg.csv"), "s1,0.5,1.0,0.10\n")

	summaries, err := load(base, "noise_1d")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(summaries) != 1 || summaries[0].game != "noise_1d" {
		t.Fatalf("summaries = %+v", summaries)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	summaries, err := load(filepath.Join(t.TempDir(), "absent"), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("got %d summaries from missing dir", len(summaries))
	}
}

func TestMedianEvenCount(t *testing.T) {
	if got := median([]float64{0.4, 0.1, 0.3, 0.2}); got != 0.25 {
		t.Fatalf("median = %g, want 0.25", got)
	}
}
