package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/exhibit/item"
	"github.com/ByLCY/exhibit/layout"
)

func writeText(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exhibit.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadInputDropsFinalNewline(t *testing.T) {
	m, l := layout.DefaultMetrics(), layout.DefaultLimits()

	text, err := readInput(nil, writeText(t, "Hello\nWorld\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hello\nWorld", text)

	a, err := item.Basic(m, l, text, "out.png")
	require.NoError(t, err)
	assert.Equal(t, 57, a.Frame.Width)
	assert.Equal(t, 46, a.Frame.Height)

	text, err = readInput(nil, writeText(t, "Hello\r\nWorld\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hello\r\nWorld", text)

	// 只去掉一个换行，文件末尾的空行仍然计数。
	text, err = readInput(nil, writeText(t, "Hello\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, layout.LineCount(text))
}

func TestReadInputReachesLineBoundary(t *testing.T) {
	m, l := layout.DefaultMetrics(), layout.DefaultLimits()

	text, err := readInput(nil, writeText(t, strings.Repeat("x\n", 34)))
	require.NoError(t, err)
	_, err = item.Basic(m, l, text, "out.png")
	assert.NoError(t, err)

	text, err = readInput(nil, writeText(t, strings.Repeat("x\n", 35)))
	require.NoError(t, err)
	_, err = item.Basic(m, l, text, "out.png")
	assert.ErrorIs(t, err, layout.ErrTooManyLines)
}

func TestReadInputFromStdin(t *testing.T) {
	text, err := readInput(strings.NewReader("piped\n"), "-")
	require.NoError(t, err)
	assert.Equal(t, "piped", text)
}

func TestReadInputRequiresSource(t *testing.T) {
	_, err := readInput(strings.NewReader("ignored"), "")
	assert.Error(t, err)

	_, err = readInput(nil, filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestBasicCommandRequiresInputFlag(t *testing.T) {
	flag := basicCmd.Flags().Lookup("in")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
	assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])
}
