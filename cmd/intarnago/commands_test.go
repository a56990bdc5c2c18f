package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTempFasta writes a single-record FASTA file to a temp dir and
// returns its path, the way poly/commands_test.go keeps small fixture
// files next to its table-driven cases.
func writeTempFasta(t *testing.T, id, seq string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, id+".fasta")
	content := ">" + id + "\n" + seq + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestPredictCommandFullStack(t *testing.T) {
	query := writeTempFasta(t, "q", "AAAA")
	target := writeTempFasta(t, "t", "UUUU")

	var out bytes.Buffer
	app := application()
	app.Writer = &out

	args := []string{"intarnago", "predict", "--query", query, "--target", target, "--mode", "heuristic", "--n", "1"}
	if err := app.Run(args); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if !strings.Contains(out.String(), "|") {
		t.Fatalf("expected a dot-bar report line, got %q", out.String())
	}
}

func TestPredictCommandRejectsUnknownMode(t *testing.T) {
	query := writeTempFasta(t, "q", "AAAA")
	target := writeTempFasta(t, "t", "UUUU")

	app := application()
	args := []string{"intarnago", "predict", "--query", query, "--target", target, "--mode", "bogus"}
	if err := app.Run(args); err == nil {
		t.Fatal("expected an error for an unknown --mode")
	}
}
