// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

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

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRunValidFile(t *testing.T) {
	path := writeFile(t, "valid.json", `{"ok": [1, 2, 3], "name": "jparse"}`)

	var stderr bytes.Buffer
	code := run(path, strings.NewReader(""), &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String(), "success should print nothing")
}

func TestRunInvalidFile(t *testing.T) {
	path := writeFile(t, "invalid.json", `{"a": 1,}`)

	var stderr bytes.Buffer
	code := run(path, strings.NewReader(""), &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "parse error at line 1, column 9")
}

func TestRunMissingFile(t *testing.T) {
	var stderr bytes.Buffer
	code := run(filepath.Join(t.TempDir(), "nonesuch.json"), strings.NewReader(""), &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "jparse:")
}

func TestRunStdin(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run("", strings.NewReader(`[true, null]`), &stderr)
		assert.Equal(t, 0, code)
		assert.Empty(t, stderr.String())
	})
	t.Run("Invalid", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run("", strings.NewReader("[1,\n2,]"), &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "parse error at line 2, column 3")
	})
}
