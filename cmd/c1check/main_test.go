package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("C1_LOG_LEVEL", "error")
}

func TestRunValidFiles(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "a.c1", "void foo() {}")
	writeFile(t, dir, "b.c1", "int bar() {return 0;}")
	writeFile(t, dir, "ignored.txt", "not c1")

	var stdout, stderr bytes.Buffer
	code := run([]string{dir}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "OK   "+filepath.Join(dir, "a.c1"))
	assert.Contains(t, stdout.String(), "OK   "+filepath.Join(dir, "b.c1"))
	assert.NotContains(t, stdout.String(), "ignored.txt")
}

func TestRunReportsFailure(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.c1", "void foo() {\n  x = 1\n}\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-q", bad}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitFail, code)
	assert.Contains(t, stdout.String(), "FAIL "+bad+": Expected ';' after statement at line 3 with text: '}'")
	assert.Contains(t, stdout.String(), "  |> }")
}

func TestRunStdinAndTokens(t *testing.T) {
	isolateEnv(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-tokens", "-"}, strings.NewReader("void f() {}"), &stdout, &stderr)

	assert.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Tokens <stdin> (6)")
	assert.Contains(t, stdout.String(), "KW_VOID")
	assert.Contains(t, stdout.String(), "OK   <stdin>")
}

func TestRunUsageErrors(t *testing.T) {
	isolateEnv(t)
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(nil, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage: c1check")

	missing := filepath.Join(t.TempDir(), "missing.c1")
	assert.Equal(t, exitUsage, run([]string{missing}, strings.NewReader(""), &stdout, &stderr))

	assert.Equal(t, exitUsage, run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr))
}
