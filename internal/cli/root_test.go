// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/halfmoss/jfmt"
	"github.com/halfmoss/jfmt/internal/cli"
)

var testInfo = cli.BuildInfo{Version: "test", Commit: "none", Date: "today"}

// execute runs the jfmt command with the given stdin and arguments, and
// returns its stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(testInfo)
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStdinPretty(t *testing.T) {
	got, err := execute(t, `{"a":1,"b":[true,null]}`, "--indent", "2")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	const want = "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}\n"
	if got != want {
		t.Errorf("Output:\ngot:  %#q\nwant: %#q", got, want)
	}
}

func TestStdinCompact(t *testing.T) {
	got, err := execute(t, "{ \"a\" : 1 }\n", "--compact")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "{\"a\":1}\n"; got != want {
		t.Errorf("Output:\ngot:  %#q\nwant: %#q", got, want)
	}
}

// An indent width of zero is the compact layout.
func TestStdinIndentZero(t *testing.T) {
	got, err := execute(t, "{ \"a\" : [ 1 , 2 ] }", "--indent", "0")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "{\"a\":[1,2]}\n"; got != want {
		t.Errorf("Output:\ngot:  %#q\nwant: %#q", got, want)
	}
}

func TestStdinTabs(t *testing.T) {
	got, err := execute(t, `[1,2]`, "--tab")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "[\n\t1,\n\t2\n]\n"; got != want {
		t.Errorf("Output:\ngot:  %#q\nwant: %#q", got, want)
	}
}

func TestStdinMalformed(t *testing.T) {
	_, err := execute(t, `{"a":1,}`)
	if err == nil {
		t.Fatal("Execute did not report an error")
	}
	if got := jfmt.ErrorCode(err); got != jfmt.CodeTrailingComma {
		t.Errorf("Execute: got code %v (%v), want %v", got, err, jfmt.CodeTrailingComma)
	}
	if !strings.Contains(err.Error(), "stdin") {
		t.Errorf("Error does not name the input: %v", err)
	}
}

func TestFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte("[ 1 ,\n2 ]"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	got, err := execute(t, "", "--compact", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "[1,2]\n"; got != want {
		t.Errorf("Output:\ngot:  %#q\nwant: %#q", got, want)
	}
}

func TestWriteInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte(`{"k": [1,  2],"m":{}}`), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	out, err := execute(t, "", "-w", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "" {
		t.Errorf("Unexpected output: %#q", out)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	const want = "{\n    \"k\": [\n        1,\n        2\n    ],\n    \"m\": {}\n}\n"
	if string(got) != want {
		t.Errorf("File content:\ngot:  %#q\nwant: %#q", string(got), want)
	}
}

// A malformed document must leave the target file untouched.
func TestWriteInPlaceMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	const original = `{"a":1,,}`
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	if _, err := execute(t, "", "-w", path); err == nil {
		t.Fatal("Execute did not report an error")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != original {
		t.Errorf("File content changed:\ngot:  %#q\nwant: %#q", string(got), original)
	}
}

func TestWriteRequiresFile(t *testing.T) {
	if _, err := execute(t, `{}`, "-w"); err == nil {
		t.Fatal("Execute did not report an error for -w without a file")
	}
	if _, err := execute(t, `{}`, "-w", "-"); err == nil {
		t.Fatal(`Execute did not report an error for -w with "-"`)
	}
}

func TestConfigFileApplies(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".jfmt.yml"), []byte("indent: 2\n"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	path := filepath.Join(dir, "in.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	got, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "{\n  \"a\": 1\n}\n"; got != want {
		t.Errorf("Output:\ngot:  %#q\nwant: %#q", got, want)
	}
}

// Flags the user sets explicitly win over the config file.
func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".jfmt.yml"), []byte("indent: 2\n"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	path := filepath.Join(dir, "in.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	got, err := execute(t, "", "--compact", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "{\"a\":1}\n"; got != want {
		t.Errorf("Output:\ngot:  %#q\nwant: %#q", got, want)
	}
}
