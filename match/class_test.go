package match_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/nomnom/input"
	"github.com/zostay/nomnom/match"
	"github.com/zostay/nomnom/parser"
)

func TestIsA(t *testing.T) {
	t.Parallel()

	hex := match.IsA[input.Bytes, byte](input.ByteString("0123456789abcdef"))

	res := hex(input.ByteString("beef cafe"))
	require.True(t, res.Ok())
	assert.Equal(t, "beef", res.Taken.String())
	assert.Equal(t, " cafe", res.Rest.String())

	res = hex(input.ByteString("dead"))
	require.True(t, res.Ok(), "whole input in the set")
	assert.Equal(t, "dead", res.Taken.String())
	assert.Equal(t, 0, res.Rest.Len())

	res = hex(input.ByteString("xyz"))
	require.Equal(t, parser.StatusFail, res.Status)
	assert.Equal(t, parser.KindIsA, res.Error.Kind)

	res = hex(input.ByteString(""))
	require.Equal(t, parser.StatusFail, res.Status, "empty input takes nothing")
	assert.Equal(t, parser.KindIsA, res.Error.Kind)
}

func TestIsNot(t *testing.T) {
	t.Parallel()

	word := match.IsNot[input.Text, rune](input.NewText(" \t\n"))

	res := word(input.NewText("größe ist"))
	require.True(t, res.Ok())
	assert.Equal(t, "größe", res.Taken.String())
	assert.Equal(t, " ist", res.Rest.String())

	res = word(input.NewText(" ist"))
	require.Equal(t, parser.StatusFail, res.Status)
	assert.Equal(t, parser.KindIsNot, res.Error.Kind)
}

func TestIsA_IsNot_Complementary(t *testing.T) {
	t.Parallel()

	set := input.ByteString("ab")
	isA := match.IsA[input.Bytes, byte](set)
	isNot := match.IsNot[input.Bytes, byte](set)

	for _, s := range []string{"abba-cd", "aaaa", "ab cd ab", "ba"} {
		res := isA(input.ByteString(s))
		require.True(t, res.Ok(), s)
		if res.Rest.Len() > 0 {
			assert.False(t, set.FindToken(res.Rest.Bytes()[0]), s)
		}

		res = isNot(res.Rest)
		if res.Ok() && res.Rest.Len() > 0 {
			assert.True(t, set.FindToken(res.Rest.Bytes()[0]), s)
		}
	}
}

func TestTakeWhile(t *testing.T) {
	t.Parallel()

	digits := match.TakeWhile[input.Bytes](match.IsDigit)

	res := digits(input.ByteString("123abc"))
	require.True(t, res.Ok())
	assert.Equal(t, "123", res.Taken.String())
	assert.Equal(t, "abc", res.Rest.String())

	res = digits(input.ByteString("abc"))
	require.True(t, res.Ok(), "zero length is a success")
	assert.Equal(t, 0, res.Taken.Len())
	assert.Equal(t, "abc", res.Rest.String())

	res = digits(input.ByteString(""))
	require.True(t, res.Ok())
	assert.Equal(t, 0, res.Taken.Len())
}

func TestTakeWhile1(t *testing.T) {
	t.Parallel()

	digits := match.TakeWhile1[input.Text](unicode.IsDigit)

	res := digits(input.NewText("123abc"))
	require.True(t, res.Ok())
	assert.Equal(t, "123", res.Taken.String())
	assert.Equal(t, "abc", res.Rest.String())

	res = digits(input.NewText("abc"))
	require.Equal(t, parser.StatusFail, res.Status)
	assert.Equal(t, parser.KindTakeWhile1, res.Error.Kind)
	assert.Equal(t, "abc", res.Error.Input.String())
}

func TestTakeTill(t *testing.T) {
	t.Parallel()

	line := match.TakeTill[input.Bytes](match.BytesInSet('\r', '\n'))

	res := line(input.ByteString("first\nsecond"))
	require.True(t, res.Ok())
	assert.Equal(t, "first", res.Taken.String())
	assert.Equal(t, "\nsecond", res.Rest.String())

	res = line(input.ByteString("no newline"))
	require.True(t, res.Ok(), "no stop element takes everything")
	assert.Equal(t, "no newline", res.Taken.String())
	assert.Equal(t, 0, res.Rest.Len())

	res = line(input.ByteString("\nsecond"))
	require.True(t, res.Ok())
	assert.Equal(t, 0, res.Taken.Len())
}

func TestTakeTill1(t *testing.T) {
	t.Parallel()

	value := match.TakeTill1[input.Tokens[string]](func(tok string) bool { return tok == ";" })

	res := value(input.NewTokens("a", "+", "b", ";", "c"))
	require.True(t, res.Ok())
	assert.Equal(t, []string{"a", "+", "b"}, res.Taken.Tokens())
	assert.Equal(t, []string{";", "c"}, res.Rest.Tokens())

	res = value(input.NewTokens(";", "c"))
	require.Equal(t, parser.StatusFail, res.Status)
	assert.Equal(t, parser.KindTakeTill1, res.Error.Kind)
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	ident := match.BytesInRange('a', 'z').AndAlso(match.BytesOf(match.IsDigit)...).ButNot(match.BytesInSet('x'))
	assert.True(t, ident('a'))
	assert.True(t, ident('7'))
	assert.False(t, ident('x'))
	assert.False(t, ident('A'))

	assert.True(t, match.NotBytes(match.IsAlpha)('1'))
	assert.False(t, match.AnyBytes()('a'))

	greek := match.RunesInRange('α', 'ω').AndAlso(match.RunesOf(unicode.IsDigit)...).ButNot(match.RunesInSet('λ'))
	assert.True(t, greek('β'))
	assert.True(t, greek('٣'))
	assert.False(t, greek('λ'))
	assert.True(t, match.NotRunes(unicode.IsSpace)('x'))
	assert.True(t, match.ThisButNotThatRunes(unicode.IsLetter, unicode.IsUpper)('q'))

	assert.True(t, match.IsHexDigit('F'))
	assert.False(t, match.IsOctDigit('8'))
	assert.True(t, match.IsAlphanumeric('Z'))
	assert.True(t, match.IsMultispace('\r'))
	assert.False(t, match.IsSpace('\n'))
}
