package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dlist/internal/linkedlist"
)

const everyVerb = `# seed
append b
prepend a
append d
insert 2 c
print

get 0
get 3
set 1 B      # returns the replaced value
contains B
contains z
first
last
remove 0
size
empty
clear
empty
print
`

func TestRunEveryVerb(t *testing.T) {
	t.Parallel()

	cmds, err := Parse(strings.NewReader(everyVerb))
	require.NoError(t, err)
	require.Len(t, cmds, 18)

	list := linkedlist.New[string]()
	var out bytes.Buffer
	require.NoError(t, Run(list, cmds, &out))

	expected := []string{
		"[a b c d]",
		"a",
		"d",
		"b",
		"true",
		"false",
		"a",
		"d",
		"a",
		"3",
		"false",
		"true",
		"[]",
	}
	require.Equal(t, strings.Join(expected, "\n")+"\n", out.String())
	require.True(t, list.IsEmpty())
}

func TestRunOnSeededList(t *testing.T) {
	t.Parallel()

	cmds, err := Parse(strings.NewReader("insert 1 99\nprint\n"))
	require.NoError(t, err)

	list := linkedlist.New("10", "20", "30")
	var out bytes.Buffer
	require.NoError(t, Run(list, cmds, &out))

	require.Equal(t, "[10 99 20 30]\n", out.String())
	require.Equal(t, 4, list.Size())
}

func TestParseLineNumbers(t *testing.T) {
	t.Parallel()

	cmds, err := Parse(strings.NewReader("\n# comment\nAPPEND x\n\nget 0\n"))
	require.NoError(t, err)
	require.Equal(t, []Command{
		{Line: 3, Verb: Append, Value: "x"},
		{Line: 5, Verb: Get, Index: 0},
	}, cmds)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		line   string
	}{
		{name: "unknown verb", script: "append a\npop\n", line: "line 2"},
		{name: "missing value", script: "append\n", line: "line 1"},
		{name: "extra argument", script: "size 1\n", line: "line 1"},
		{name: "bad index", script: "print\n\nget one\n", line: "line 3"},
		{name: "insert arity", script: "insert 1\n", line: "line 1"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(strings.NewReader(tc.script))
			require.ErrorIs(t, err, ErrSyntax)
			require.ErrorContains(t, err, tc.line)
		})
	}
}

func TestRunStopsOnListError(t *testing.T) {
	t.Parallel()

	cmds, err := Parse(strings.NewReader("append a\nget 5\nappend b\n"))
	require.NoError(t, err)

	list := linkedlist.New[string]()
	var out bytes.Buffer
	err = Run(list, cmds, &out)
	require.ErrorIs(t, err, linkedlist.ErrOutOfRange)
	require.ErrorContains(t, err, "line 2: get 5")
	require.Equal(t, []string{"a"}, list.Values())
	require.Empty(t, out.String())
}

func TestRunFirstOnEmpty(t *testing.T) {
	t.Parallel()

	cmds, err := Parse(strings.NewReader("last\n"))
	require.NoError(t, err)

	err = Run(linkedlist.New[string](), cmds, &bytes.Buffer{})
	require.ErrorIs(t, err, linkedlist.ErrEmptyCollection)
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "insert 2 x", Command{Verb: Insert, Index: 2, Value: "x"}.String())
	require.Equal(t, "contains y", Command{Verb: Contains, Value: "y"}.String())
	require.Equal(t, "remove 0", Command{Verb: Remove}.String())
	require.Equal(t, "size", Command{Verb: Size}.String())
}
