package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Numeric(t *testing.T) {
	out, _, err := execute(t, "--numeric", "--query", "4,6", "--remove", "5", "5", "3", "8", "1", "4", "7", "9")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"contains 4: true",
		"contains 6: false",
		"remove 5: true",
		"size: 6",
		"height: 3",
		"PRE_ORDER: 7 3 1 4 8 9",
		"IN_ORDER: 1 3 4 7 8 9",
		"POST_ORDER: 1 4 3 9 8 7",
		"LEVEL_ORDER: 7 3 8 1 4 9",
	}, "\n")+"\n", out)
}

func TestRootCmd_Strings(t *testing.T) {
	out, _, err := execute(t, "-o", "in_order", "9", "10", "Daniel", "Dyogo")
	require.NoError(t, err)
	assert.Contains(t, out, "size: 4\n")
	// strings compare lexically
	assert.Contains(t, out, "IN_ORDER: 10 9 Daniel Dyogo\n")
	assert.NotContains(t, out, "PRE_ORDER")

	out, _, err = execute(t, "-n", "-o", "IN_ORDER", "9", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "IN_ORDER: 9 10\n")
}

func TestRootCmd_Empty(t *testing.T) {
	out, _, err := execute(t, "-o", "LEVEL_ORDER", "-q", "x", "-r", "x")
	require.NoError(t, err)
	assert.Equal(t, "contains x: false\nremove x: false\nsize: 0\nheight: 0\nLEVEL_ORDER:\n", out)
}

func TestRootCmd_Display(t *testing.T) {
	out, _, err := execute(t, "-d", "-o", "IN_ORDER", "2", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, out, " 2 \n/ \\\n1 3\n")
}

func TestRootCmd_Logging(t *testing.T) {
	_, logs, err := execute(t, "1", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, "duplicate ignored")
	assert.Contains(t, logs, "tree built")
	assert.NotContains(t, logs, "inserted")

	_, logs, err = execute(t, "-v", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, logs, "inserted")
}

func TestRootCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "-o", "SIDEWAYS", "1")
	assert.ErrorContains(t, err, `unknown traversal order "SIDEWAYS"`)

	_, _, err = execute(t, "-n", "1", "two")
	assert.ErrorContains(t, err, `parse value "two"`)

	_, _, err = execute(t, "-n", "-q", "x", "1")
	assert.Error(t, err)
}
