package input_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/nomnom/input"
)

func TestFeed(t *testing.T) {
	t.Parallel()

	f := input.NewFeedSize(strings.NewReader("abcdefgh"), 3)
	assert.Equal(t, 0, f.Input().Len())
	assert.False(t, f.Input().AtEOF())

	in, err := f.Fill()
	require.NoError(t, err)
	assert.Equal(t, "abc", in.String())
	assert.False(t, in.AtEOF())

	in, err = f.Fill()
	require.NoError(t, err)
	assert.Equal(t, "abcdef", in.String())

	first := in
	rest, _ := in.TakeSplit(4)
	f.Collect(rest)
	assert.Equal(t, "ef", f.Input().String())

	for !f.AtEOF() {
		in, err = f.Fill()
		require.NoError(t, err)
	}

	assert.Equal(t, "efgh", in.String())
	assert.True(t, in.AtEOF())
	assert.Equal(t, "abcdef", first.String(), "earlier views are not overwritten")

	in, err = f.Fill()
	require.NoError(t, err)
	assert.Equal(t, "efgh", in.String(), "fill after eof changes nothing")
}

func TestFeed_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := input.NewFeed(iotest.ErrReader(boom))

	_, err := f.Fill()
	assert.ErrorIs(t, err, boom)
	assert.False(t, f.AtEOF())
}

func TestFeed_OneByteReader(t *testing.T) {
	t.Parallel()

	f := input.NewFeed(iotest.OneByteReader(strings.NewReader("xyz")))
	for !f.AtEOF() {
		_, err := f.Fill()
		require.NoError(t, err)
	}

	assert.Equal(t, "xyz", f.Input().String())
}
