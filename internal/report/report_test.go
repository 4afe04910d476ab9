package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"faultmesh/internal/algorithm/define"
)

func sampleRows() []Row {
	return []Row{
		{InstanceName: "small", Result: &define.ResultRecord{
			Algorithm: "hgtm", ExecCost: 1.5, MigCost: 2.0, TargetOpt: -0.5,
			SurvivalRate: 0.9, ElapsedMillis: 12, UnreachableCount: 0,
		}},
		{InstanceName: "small", Result: &define.ResultRecord{
			Algorithm: "gbma", ExecCost: 1.8, MigCost: 1.0, TargetOpt: -0.6,
			SurvivalRate: 0.8, ElapsedMillis: 5, UnreachableCount: 1,
		}},
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	if err := WriteCSV(path, sampleRows()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written CSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "instance,algorithm") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "hgtm") {
		t.Fatalf("expected hgtm row, got %q", lines[1])
	}
}

func TestWriteMarkdownContainsAllRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	if err := WriteMarkdown(path, sampleRows()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written Markdown: %v", err)
	}

	content := string(data)
	for _, want := range []string{"hgtm", "gbma", "small", "Per-algorithm summary"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected markdown to contain %q, got:\n%s", want, content)
		}
	}
}

func TestSummarizeAveragesPerAlgorithm(t *testing.T) {
	rows := append(sampleRows(), Row{InstanceName: "other", Result: &define.ResultRecord{
		Algorithm: "hgtm", ExecCost: 2.5, MigCost: 4.0, TargetOpt: -1.5,
		SurvivalRate: 0.7, ElapsedMillis: 20, UnreachableCount: 2,
	}})

	summaries := Summarize(rows)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 algorithm summaries, got %d", len(summaries))
	}

	hgtm := summaries[0]
	if hgtm.Algorithm != "hgtm" {
		t.Fatalf("expected first summary to be hgtm (first-seen order), got %q", hgtm.Algorithm)
	}
	if hgtm.Runs != 2 {
		t.Fatalf("expected 2 hgtm runs, got %d", hgtm.Runs)
	}
	wantExecCost := (1.5 + 2.5) / 2
	if hgtm.ExecCost != wantExecCost {
		t.Fatalf("expected mean exec cost %v, got %v", wantExecCost, hgtm.ExecCost)
	}

	gbma := summaries[1]
	if gbma.Algorithm != "gbma" || gbma.Runs != 1 {
		t.Fatalf("unexpected gbma summary: %+v", gbma)
	}
}

func TestWriteSummaryCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.csv")

	if err := WriteSummaryCSV(path, sampleRows()); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written summary CSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 algorithm rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "algorithm,runs") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}
