package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	opts := &globalOptions{}
	var cmd = newProbeCmd(opts)
	if args[0] == "split" {
		cmd = newSplitCmd(opts)
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args[1:])
	err := cmd.Execute()
	return out.String(), err
}

func TestSplit(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "records.txt")
	require.NoError(t, os.WriteFile(file, []byte("alpha::beta::::gamma"), 0o644))

	out, err := runCmd(t, "split", "--delim", "::", "--chunk", "3", file)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n\ngamma\n", out)
}

func TestSplit_TrailingDelimiter(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(file, []byte("one\ntwo\n"), 0o644))

	out, err := runCmd(t, "split", file)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", out)
}

func TestProbe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"tag", "abc", "--input", "abcdef"}, `done taken="abc" rest="def"` + "\n"},
		{[]string{"tag", "abc", "--input", "abx"}, `fail kind="tag" at="abx"` + "\n"},
		{[]string{"tag-no-case", "ABC", "--input", "abcdef"}, `done taken="abc" rest="def"` + "\n"},
		{[]string{"take-until", "::", "--input", "key::value"}, `done taken="key" rest="::value"` + "\n"},
		{[]string{"is-a", "ab", "--input", "abba!"}, `done taken="abba" rest="!"` + "\n"},
		{[]string{"is-not", "!", "--input", "abba!"}, `done taken="abba" rest="!"` + "\n"},
		{[]string{"take", "4", "--input", "ab"}, `fail kind="eof" at="ab"` + "\n"},
		{[]string{"take-while1", "--class", "digit", "--input", "123abc"}, `done taken="123" rest="abc"` + "\n"},
		{[]string{"take-while", "--class", "digit", "--input", "abc"}, `done taken="" rest="abc"` + "\n"},
		{[]string{"take-till", "--class", "space", "--input", "ab cd"}, `done taken="ab" rest=" cd"` + "\n"},
		{[]string{"take-till1", "--class", "space", "--input", " cd"}, `fail kind="take till 1" at=" cd"` + "\n"},
		{[]string{"take-while-m-n", "2", "4", "--input", "abcdef"}, `done taken="abcd" rest="ef"` + "\n"},
		{[]string{"take-while-m-n", "2", "4", "--input", "a", "--stream"}, "incomplete needed=1 more\n"},
	}

	for _, tc := range tests {
		out, err := runCmd(t, append([]string{"probe"}, tc.args...)...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, out, tc.args)
	}
}

func TestProbe_Errors(t *testing.T) {
	t.Parallel()

	_, err := runCmd(t, "probe", "nope")
	assert.ErrorContains(t, err, "unknown combinator")

	_, err = runCmd(t, "probe", "tag")
	assert.ErrorContains(t, err, "takes 1 argument")

	_, err = runCmd(t, "probe", "take-while", "--class", "emoji")
	assert.ErrorContains(t, err, "unknown class")

	_, err = runCmd(t, "probe", "take-while-m-n", "4", "2")
	assert.ErrorContains(t, err, "greater than maximum")

	_, err = runCmd(t, "probe", "take", "-1")
	assert.Error(t, err)
}
