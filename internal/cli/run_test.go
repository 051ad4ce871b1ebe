package cli

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	feed := "3\n0 5 1 3\n1 3 2 1\n2 2 1 2\n"
	out, err := execute(t, feed, "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.HasPrefix(out, "[P1:0-5] [P2:5-8] [P3:8-10]\n") {
		t.Errorf("missing or wrong Gantt line:\n%s", out)
	}
	if !strings.Contains(out, "Total Energy Used = 22") {
		t.Errorf("missing total energy line:\n%s", out)
	}
}

func TestRunCommand_IdleGap(t *testing.T) {
	out, err := execute(t, "1\n5 3 1 1\n", "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out, "[idle:0-5] [P1:5-8]\n") {
		t.Errorf("idle gap not rendered:\n%s", out)
	}
}

func TestRunCommand_AlgorithmFlag(t *testing.T) {
	// fcfs ignores the score, so the earliest arrival runs first
	feed := "2\n3 1 1 1\n0 5 1 3\n"
	out, err := execute(t, feed, "run", "--algorithm", "fcfs")
	if err != nil {
		t.Fatalf("run --algorithm fcfs: %v", err)
	}
	if !strings.HasPrefix(out, "[P2:0-5]") {
		t.Errorf("fcfs should dispatch P2 first:\n%s", out)
	}
}

func TestRunCommand_MalformedFeedFails(t *testing.T) {
	_, err := execute(t, "1\n0 x 1 1\n", "run")
	if err == nil {
		t.Fatal("expected an error for a malformed feed")
	}
}

func TestRunCommand_InvalidAttributeFails(t *testing.T) {
	_, err := execute(t, "1\n0 0 1 1\n", "run")
	if err == nil {
		t.Fatal("expected an error for zero burst time")
	}
}
