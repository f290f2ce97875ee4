//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountNonBlankLines(t *testing.T) {
	assert.Equal(t, 0, countNonBlankLines(nil))
	assert.Equal(t, 2, countNonBlankLines([]byte("package a\n\n \t\r\nfunc f() {}")))
	assert.Equal(t, 1, countNonBlankLines([]byte("x\r\n\n")))
}

func TestCountGoLinesSplitsTestsAndSkipsReference(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("a.go", "package a\n\nvar x = 1\n")
	write("a_test.go", "package a\n")
	write("_examples/b.go", "package b\nvar y = 2\n")
	write("notes.md", "two words\n\nthree more words")

	prod, err := countGoLines(root, false)
	require.NoError(t, err)
	assert.Equal(t, 2, prod)

	tests, err := countGoLines(root, true)
	require.NoError(t, err)
	assert.Equal(t, 1, tests)

	words, err := countDocWords(root)
	require.NoError(t, err)
	assert.Equal(t, 5, words)
}
