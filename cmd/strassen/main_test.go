// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/matrixio"
)

// run executes the root command in dir and returns stdout and stderr.
func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMultiply_TwoByTwo(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "{{1,2},{3,4}}")
	b := writeFile(t, dir, "b.txt", "{{5,6},{7,8}}")

	out, _, err := run(t, dir, "multiply", a, b)
	require.NoError(t, err)
	assert.Equal(t, "[19 22]\n[43 50]\nTotal sum of the resulting: 134\n", out)
}

// TestMultiply_DefaultFiles: with no arguments the command reads 10a.txt
// and 10b.txt from the working directory.
func TestMultiply_DefaultFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, defaultFileA, "{{1,1,1},{1,1,1},{1,1,1}}")
	writeFile(t, dir, defaultFileB, "{{1,0,0},{0,1,0},{0,0,1}}")

	out, _, err := run(t, dir, "multiply")
	require.NoError(t, err)
	assert.Equal(t, "[1 1 1]\n[1 1 1]\n[1 1 1]\nTotal sum of the resulting: 9\n", out)
}

func TestMultiply_NoTrim(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, defaultFileA, "{{1,1,1},{1,1,1},{1,1,1}}")
	writeFile(t, dir, defaultFileB, "{{1,0,0},{0,1,0},{0,0,1}}")

	out, _, err := run(t, dir, "multiply", "--no-trim", "--no-summary", "--threshold", "1")
	require.NoError(t, err)
	assert.Equal(t, "[1 1 1 0]\n[1 1 1 0]\n[1 1 1 0]\n[0 0 0 0]\n", out)
}

func TestMultiply_TrimFromEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, defaultFileA, "{{2}}")
	writeFile(t, dir, defaultFileB, "{{3,4}}")
	writeFile(t, dir, ".env", config.EnvTrim+"=false\n")

	out, _, err := run(t, dir, "multiply", "--no-summary")
	require.NoError(t, err)
	assert.Equal(t, "[6 8]\n[0 0]\n", out)
}

func TestMultiply_Verbose(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, defaultFileA, "{{1,2},{3,4}}")
	writeFile(t, dir, defaultFileB, "{{5,6},{7,8}}")

	_, stderr, err := run(t, dir, "multiply", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "strassen: ")
	assert.Contains(t, stderr, "multiplied to 2x2")
}

func TestMultiply_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "{{1,2,3}}")
	b := writeFile(t, dir, "b.txt", "{{1,2,3}}")
	empty := writeFile(t, dir, "empty.txt", "")

	_, _, err := run(t, dir, "multiply", a)
	require.Error(t, err, "one file")

	_, _, err = run(t, dir, "multiply", a, b)
	require.ErrorContains(t, err, "cannot multiply 1x3 by 1x3")

	_, _, err = run(t, dir, "multiply", a, empty)
	require.ErrorIs(t, err, matrixio.ErrEmptyInput)

	_, _, err = run(t, dir, "multiply", "--kernel", "winograd", a, b)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, dir, "multiply")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, dir, "verify", "--sizes", "1,3,8,17", "--rounds", "2", "--threshold", "2", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "ok: 16 products verified\n", out)

	out, _, err = run(t, dir, "verify", "--sizes", "5", "--rounds", "1", "--no-trim", "--kernel", "blocked")
	require.NoError(t, err)
	assert.Equal(t, "ok: 2 products verified\n", out)

	_, _, err = run(t, dir, "verify", "--sizes", "0")
	require.Error(t, err)
}

// TestGenerateThenMultiply: generated files are valid multiply input.
func TestGenerateThenMultiply(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, dir, "generate", "--rows", "5", "--cols", "3", "--seed", "7", defaultFileA)
	require.NoError(t, err)
	_, _, err = run(t, dir, "generate", "--rows", "3", "--cols", "6", "--seed", "8", defaultFileB)
	require.NoError(t, err)

	out, _, err := run(t, dir, "multiply", "--threshold", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[5], matrixio.SummaryLabel))
	assert.Len(t, strings.Fields(lines[0]), 6)
}

func TestGenerate_MaxOutOfRange(t *testing.T) {
	dir := t.TempDir()
	for _, v := range []string{"-1", strconv.Itoa(maxGenerateAbs + 1), strconv.Itoa(math.MaxInt)} {
		out, _, err := run(t, dir, "generate", "--max="+v)
		require.ErrorContains(t, err, "--max", v)
		assert.Empty(t, out)
	}

	out, _, err := run(t, dir, "generate", "--rows", "1", "--cols", "3", "--max", strconv.Itoa(maxGenerateAbs))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{{"))
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "generate", "--rows", "2", "--cols", "2", "--max", "0")
	require.NoError(t, err)
	assert.Equal(t, "{{0,0},\n {0,0}}\n", out)
}
