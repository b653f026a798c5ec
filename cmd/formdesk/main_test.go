package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTypesListsBundledForms(t *testing.T) {
	out, err := execute(t, "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	for _, want := range []string{"User Information", "Address Information", "Payment Information", "firstName *", "(3 fields, 2 required)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderTextShowsProgress(t *testing.T) {
	out, err := execute(t, "render", "--format", "text", "--type", "User Information", "--set", "firstName=Ada")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "50% Complete") {
		t.Fatalf("expected half progress:\n%s", out)
	}
	if !strings.Contains(out, "Ada") {
		t.Fatalf("expected entered value:\n%s", out)
	}
}

func TestRenderSubmitKeepsConfirmation(t *testing.T) {
	out, err := execute(t, "render", "--format", "text", "--type", "User Information",
		"--set", "firstName=Ada", "--set", "lastName=Lovelace", "--submit")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Form submitted successfully!") {
		t.Fatalf("expected confirmation:\n%s", out)
	}
}

func TestRenderRejectedSubmitShowsErrors(t *testing.T) {
	out, err := execute(t, "render", "--format", "text", "--type", "User Information", "--submit")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "First Name is required") {
		t.Fatalf("expected field error:\n%s", out)
	}
}

func TestRenderEditSampleWritesHTML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "page.html")
	_, err := execute(t, "render", "--type", "User Information",
		"--set", "firstName=Ada", "--set", "lastName=Lovelace", "--edit-sample", "--out", dest)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Update", "Cancel", "Lovelace"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page:\n%s", want, html)
		}
	}
}

func TestRenderFlagErrors(t *testing.T) {
	if _, err := execute(t, "render", "--set", "a=b"); err == nil {
		t.Fatal("expected error for --set without --type")
	}
	if _, err := execute(t, "render", "--format", "pdf"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := execute(t, "render", "--type", "User Information", "--set", "firstName"); err == nil {
		t.Fatal("expected error for malformed --set")
	}
	if _, err := execute(t, "render", "--type", "Shipping"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, good, "forms:\n  - type: Feedback\n    fields:\n      - name: comment\n        kind: text\n        label: Comment\n")
	writeFile(t, bad, "forms:\n  - type: Broken\n    fields:\n      - name: choice\n        kind: dropdown\n        label: Choice\n")

	out, err := execute(t, "lint", good)
	if err != nil {
		t.Fatalf("lint good: %v\n%s", err, out)
	}
	if !strings.Contains(out, "OK") {
		t.Fatalf("expected OK line:\n%s", out)
	}

	out, err = execute(t, "--forms", dir, "lint")
	if err == nil {
		t.Fatalf("expected lint failure:\n%s", out)
	}
	if !strings.Contains(out, "FAIL") || !strings.Contains(out, "bad.yaml") {
		t.Fatalf("expected failing document in output:\n%s", out)
	}
}

func TestLintDuplicateFieldNames(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dup.json")
	writeFile(t, file, `{"forms":[{"type":"Dup","fields":[{"name":"a","kind":"text","label":"A"},{"name":"a","kind":"text","label":"A again"}]}]}`)
	out, err := execute(t, "lint", file)
	if err == nil {
		t.Fatalf("expected duplicate field failure:\n%s", out)
	}
}

func TestConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "formdesk.toml")
	writeFile(t, cfg, "[render]\nformat = \"text\"\n\n[store]\nid_prefix = \"entry\"\n")

	out, err := execute(t, "--config", cfg, "render", "--type", "User Information",
		"--set", "firstName=Ada", "--set", "lastName=Lovelace", "--edit-sample")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "editing entry-1") {
		t.Fatalf("expected text output editing entry-1:\n%s", out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
