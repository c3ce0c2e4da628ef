package config

import (
	"bytes"
	"os"
	"testing"
)

func TestFexitfWritesMessageAndExits(t *testing.T) {
	var code int
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	var buf bytes.Buffer
	Fexitf(&buf, "fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "fatal: something broke\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestExitfExitsWithCodeOne(t *testing.T) {
	var code int
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	Exitf("fatal: %v", "boom")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
