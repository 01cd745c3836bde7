package cmd

import (
	"bytes"
	"strings"
	"testing"

	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

func quietLogger() logpkg.Logger {
	return logpkg.NewLogger(logpkg.WithOutput(logpkg.NewNullOutput()))
}

// execute runs the root command with args against an isolated data dir and
// returns captured stdout.
func execute(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	root := NewRoot(quietLogger())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--data-dir", dataDir))
	if err := root.Execute(); err != nil {
		t.Fatalf("hyperion %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func isolate(t *testing.T) string {
	t.Helper()
	// Keep an ambient config.json or HYPERION_CONFIG from leaking in.
	t.Setenv("HYPERION_CONFIG", "___does_not_exist___hyperion.json")
	return t.TempDir()
}

func TestStatusPrintsCounts(t *testing.T) {
	dir := isolate(t)
	out := execute(t, dir, "status")
	if !strings.Contains(out, "depth=0 leased=0") {
		t.Fatalf("status output: %q", out)
	}
}

func TestSubmitPrintsJobID(t *testing.T) {
	dir := isolate(t)
	out := execute(t, dir, "submit", "email", "Welcome to Hyperion!")
	if strings.TrimSpace(out) != "1" {
		t.Fatalf("submit output: %q", out)
	}
}

func TestLogsTailShowsSubmittedEvents(t *testing.T) {
	dir := isolate(t)
	execute(t, dir, "submit", "email", "first")
	execute(t, dir, "submit", "report", "second")

	out := execute(t, dir, "logs", "--tail", "10")
	if !strings.Contains(out, "submitted job 1 to email") {
		t.Fatalf("logs output missing first submit: %q", out)
	}
	if !strings.Contains(out, "submitted job 1 to report") {
		t.Fatalf("logs output missing second submit: %q", out)
	}
}

func TestLogsTailLimit(t *testing.T) {
	dir := isolate(t)
	for i := 0; i < 5; i++ {
		execute(t, dir, "submit", "email", "x")
	}
	out := execute(t, dir, "logs", "--tail", "2")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
}

func TestSubmitRequiresKindAndPayload(t *testing.T) {
	root := NewRoot(quietLogger())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"submit", "email"})
	if err := root.Execute(); err == nil {
		t.Fatalf("submit with one arg should fail")
	}
}
