package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func commandWithBuffer() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	return cmd, buf
}

func TestRenderRowsText(t *testing.T) {
	flagOutput = "text"
	cmd, buf := commandWithBuffer()

	rows := []reportRow{{Project: "Core", Version: "1.0.1", Changed: true, Rationale: "project files changed"}}
	if err := renderRows(cmd, rows); err != nil {
		t.Fatalf("renderRows: %v", err)
	}
	if !strings.Contains(buf.String(), "Core") || !strings.Contains(buf.String(), "1.0.1") {
		t.Fatalf("expected text table to contain project and version, got %q", buf.String())
	}
}

func TestRenderRowsJSON(t *testing.T) {
	flagOutput = "json"
	cmd, buf := commandWithBuffer()

	rows := []reportRow{{Project: "Data", Version: "1.0.0", Changed: false, Rationale: "no changes detected since base"}}
	if err := renderRows(cmd, rows); err != nil {
		t.Fatalf("renderRows: %v", err)
	}
	if !strings.Contains(buf.String(), `"project": "Data"`) {
		t.Fatalf("expected JSON output to contain project field, got %q", buf.String())
	}
}

func TestRenderRowsCSV(t *testing.T) {
	flagOutput = "csv"
	cmd, buf := commandWithBuffer()

	rows := []reportRow{{Project: "UI", Version: "1.0.0", Changed: false, Rationale: "no changes detected since base"}}
	if err := renderRows(cmd, rows); err != nil {
		t.Fatalf("renderRows: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "project,version,changed,rationale") {
		t.Fatalf("unexpected CSV output: %q", buf.String())
	}
}
