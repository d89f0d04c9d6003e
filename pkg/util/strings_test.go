package util_test

import (
	"strings"
	"testing"

	"github.com/jenkins-x/jx-strutil/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		left  string
		right string
		both  string
	}{
		{"", "", "", ""},
		{"   ", "", "", ""},
		{"     Hello World  ", "Hello World  ", "     Hello World", "Hello World"},
		{"\t\n\v\f\r x y \r\f\v\n\t", "x y \r\f\v\n\t", "\t\n\v\f\r x y", "x y"},
		{"no-space", "no-space", "no-space", "no-space"},
		{" x ", " x ", " x ", " x "},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.left, util.TrimLeft(tc.input), "TrimLeft(%q)", tc.input)
		assert.Equal(t, tc.right, util.TrimRight(tc.input), "TrimRight(%q)", tc.input)
		assert.Equal(t, tc.both, util.Trim(tc.input), "Trim(%q)", tc.input)
	}
}

func TestTrimIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", " a ", "\t\ta b\n", "  \v ", "x"} {
		once := util.Trim(text)
		assert.Equal(t, once, util.Trim(once), "Trim(%q) should be idempotent", text)
		if once != "" {
			assert.False(t, util.IsASCIISpace(once[0]), "leading whitespace left in %q", once)
			assert.False(t, util.IsASCIISpace(once[len(once)-1]), "trailing whitespace left in %q", once)
		}
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input     string
		delimiter string
		expected  []string
	}{
		{"apple,banana,cherry", ",", []string{"apple", "banana", "cherry"}},
		{"", ",", []string{""}},
		{"no delimiter", ",", []string{"no delimiter"}},
		{",a,,b,", ",", []string{"", "a", "", "b", ""}},
		{"a::b::c", "::", []string{"a", "b", "c"}},
		{"aaa", "aa", []string{"", "a"}},
	}
	for _, tc := range testCases {
		actual, err := util.Split(tc.input, tc.delimiter)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, actual, "Split(%q, %q)", tc.input, tc.delimiter)
		assert.Equal(t, tc.input, strings.Join(actual, tc.delimiter), "rejoining Split(%q, %q)", tc.input, tc.delimiter)
	}
}

func TestSplitPartCountMatchesOccurrences(t *testing.T) {
	t.Parallel()

	text := "x-y--z---"
	parts, err := util.Split(text, "-")
	require.NoError(t, err)
	assert.Len(t, parts, strings.Count(text, "-")+1)
}

func TestSplitRejectsEmptyDelimiter(t *testing.T) {
	t.Parallel()

	parts, err := util.Split("abc", "")
	require.Error(t, err)
	assert.Nil(t, parts)
	assert.True(t, util.IsInvalidArgument(err), "expected invalid argument but got %v", err)
	assert.False(t, util.IsInvalidArgument(nil))
}

func TestStartsWithEndsWith(t *testing.T) {
	t.Parallel()

	assert.True(t, util.StartsWith("Hello World", "Hello"))
	assert.True(t, util.EndsWith("Hello World", "World"))
	assert.True(t, util.StartsWith("Hello World", ""))
	assert.True(t, util.EndsWith("Hello World", ""))
	assert.True(t, util.StartsWith("", ""))
	assert.False(t, util.StartsWith("a", "ab"))
	assert.False(t, util.EndsWith("b", "ab"))
	assert.False(t, util.StartsWith("Hello World", "hello"))
	assert.False(t, util.EndsWith("Hello World", "world"))
}

func TestCaseConversion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", util.ToLower("Hello World"))
	assert.Equal(t, "HELLO WORLD", util.ToUpper("Hello World"))
	assert.Equal(t, "", util.ToLower(""))
	assert.Equal(t, "123 !?", util.ToUpper("123 !?"))
	assert.Equal(t, "ÄBC", util.ToUpper("Äbc"), "non-ASCII bytes pass through")
	assert.Equal(t, "straße", util.ToLower("STRAße"))

	input := "MiXeD"
	_ = util.ToLower(input)
	assert.Equal(t, "MiXeD", input)
}

func TestBoolToString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "true", util.BoolToString(true))
	assert.Equal(t, "false", util.BoolToString(false))
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, util.IsBlank(""))
	assert.True(t, util.IsBlank("   "))
	assert.True(t, util.IsBlank("\t\r\n\v\f"))
	assert.False(t, util.IsBlank(" a "))
}

func TestReplace(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		from     string
		to       string
		expected string
	}{
		{"I like apples and apples are good", "apples", "oranges", "I like oranges and oranges are good"},
		{"abc", "", "x", "abc"},
		{"abc", "z", "x", "abc"},
		{"aaaa", "aa", "b", "bb"},
		{"aaa", "a", "aa", "aaaaaa"},
		{"a.b.c", ".", "", "abc"},
		{"", "a", "b", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, util.Replace(tc.input, tc.from, tc.to), "Replace(%q, %q, %q)", tc.input, tc.from, tc.to)
	}
}

func TestReplaceIsIdempotentWhenReplacementLacksTarget(t *testing.T) {
	t.Parallel()

	once := util.Replace("one two one", "one", "three")
	assert.Equal(t, once, util.Replace(once, "one", "three"))
}
