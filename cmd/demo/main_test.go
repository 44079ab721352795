package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunStack(t *testing.T) {
	var out bytes.Buffer
	err := runStack(strings.NewReader("1 2\n3 -1 99"), &out)
	require.NoError(t, err)

	block := "stack:\n-1\n---\n3\n2\n1\n"
	require.Equal(t, "s:\n"+block+"s2:\n"+block, out.String())
}

func TestRunStack_InvalidInput(t *testing.T) {
	var out bytes.Buffer
	err := runStack(strings.NewReader("1 x"), &out)
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestRunLists(t *testing.T) {
	var out bytes.Buffer
	runLists(&out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Contains(t, lines, "REVERSE d    6 5 4 3 2 1 0")
	require.Contains(t, lines, "PRINT s      1 2 3")
	require.Contains(t, lines, "NODES c      [ |1|2] [ |2|3] [ |3|1]")
}
