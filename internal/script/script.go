// Package script runs line-oriented operation scripts against a list of strings.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dlist/internal/linkedlist"
)

var ErrSyntax = errors.New("syntax error")

// Verb names a single list operation.
type Verb string

const (
	Append   Verb = "append"
	Prepend  Verb = "prepend"
	Insert   Verb = "insert"
	Set      Verb = "set"
	Get      Verb = "get"
	Remove   Verb = "remove"
	Contains Verb = "contains"
	First    Verb = "first"
	Last     Verb = "last"
	Size     Verb = "size"
	Empty    Verb = "empty"
	Clear    Verb = "clear"
	Print    Verb = "print"
)

// signature describes the arguments a verb takes.
type signature struct {
	index bool // first argument is an index
	value bool // last argument is a value
}

var verbs = map[Verb]signature{
	Append:   {value: true},
	Prepend:  {value: true},
	Insert:   {index: true, value: true},
	Set:      {index: true, value: true},
	Get:      {index: true},
	Remove:   {index: true},
	Contains: {value: true},
	First:    {},
	Last:     {},
	Size:     {},
	Empty:    {},
	Clear:    {},
	Print:    {},
}

// Command is one parsed script line.
type Command struct {
	Line  int
	Verb  Verb
	Index int
	Value string
}

func (c Command) String() string {
	sig := verbs[c.Verb]
	parts := []string{string(c.Verb)}
	if sig.index {
		parts = append(parts, strconv.Itoa(c.Index))
	}
	if sig.value {
		parts = append(parts, c.Value)
	}
	return strings.Join(parts, " ")
}

// Parse reads one command per line. Blank lines and everything after '#' are ignored.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		cmd, err := parseFields(line, fields)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return cmds, nil
}

func parseFields(line int, fields []string) (Command, error) {
	verb := Verb(strings.ToLower(fields[0]))
	sig, ok := verbs[verb]
	if !ok {
		return Command{}, fmt.Errorf("line %d: unknown command %q: %w", line, fields[0], ErrSyntax)
	}

	args := fields[1:]
	want := 0
	if sig.index {
		want++
	}
	if sig.value {
		want++
	}
	if len(args) != want {
		return Command{}, fmt.Errorf("line %d: %s takes %d argument(s), got %d: %w", line, verb, want, len(args), ErrSyntax)
	}

	cmd := Command{Line: line, Verb: verb}
	if sig.index {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("line %d: bad index %q: %w", line, args[0], ErrSyntax)
		}
		cmd.Index = index
	}
	if sig.value {
		cmd.Value = args[len(args)-1]
	}
	return cmd, nil
}

// Run executes the commands in order and writes one line for every command that yields a result.
// It stops at the first failing command.
func Run(l linkedlist.List[string], cmds []Command, w io.Writer) error {
	for _, cmd := range cmds {
		if err := exec(l, cmd, w); err != nil {
			return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd, err)
		}
	}
	return nil
}

func exec(l linkedlist.List[string], cmd Command, w io.Writer) error {
	var (
		result string
		err    error
	)

	switch cmd.Verb {
	case Append:
		l.Append(cmd.Value)
		return nil
	case Prepend:
		l.Prepend(cmd.Value)
		return nil
	case Insert:
		return l.InsertAt(cmd.Index, cmd.Value)
	case Clear:
		l.Clear()
		return nil
	case Set:
		result, err = l.Set(cmd.Index, cmd.Value)
	case Get:
		result, err = l.Get(cmd.Index)
	case Remove:
		result, err = l.RemoveAt(cmd.Index)
	case First:
		result, err = l.First()
	case Last:
		result, err = l.Last()
	case Contains:
		result = strconv.FormatBool(l.Contains(cmd.Value))
	case Empty:
		result = strconv.FormatBool(l.IsEmpty())
	case Size:
		result = strconv.Itoa(l.Size())
	case Print:
		result = "[" + strings.Join(l.Values(), " ") + "]"
	default:
		return fmt.Errorf("unknown command %q: %w", cmd.Verb, ErrSyntax)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, result)
	return err
}
