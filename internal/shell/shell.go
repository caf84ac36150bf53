// Package shell parses interactive commands and applies them to a task list.
//
// The grammar is one command per input line, matched on the leading
// whitespace-delimited token, case-sensitive. Commands take at most one
// positional argument and no flags.
package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"smallt/internal/task"
)

// Kind identifies a recognized command.
type Kind int

const (
	KindAdd Kind = iota
	KindCheck
	KindDelete
	KindClear
	KindClearAll
	KindList
	KindHelp
	KindExit
)

// Mutates reports whether a successful command changes the task list and
// therefore needs a save.
func (k Kind) Mutates() bool {
	switch k {
	case KindAdd, KindCheck, KindDelete, KindClear, KindClearAll:
		return true
	}
	return false
}

// Command is one parsed input line.
type Command struct {
	Kind Kind
	Text string // add
	N    int    // check, delete
}

// Parse parses one input line. The returned error is user-presentable and
// never fatal to the loop. Blank lines are rejected as empty input; the
// caller decides whether to surface or swallow that.
func Parse(line string) (Command, error) {
	token, rest := splitToken(line)

	switch token {
	case "add":
		// Everything after the first space following "add" is the task
		// text; task.Add trims and validates it.
		return Command{Kind: KindAdd, Text: rest}, nil
	case "check":
		n, err := parseNumber("check", rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindCheck, N: n}, nil
	case "delete":
		n, err := parseNumber("delete", rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindDelete, N: n}, nil
	case "clear":
		return argless(KindClear, token, rest)
	case "clearall":
		return argless(KindClearAll, token, rest)
	case "list":
		return argless(KindList, token, rest)
	case "help":
		return argless(KindHelp, token, rest)
	case "exit":
		return argless(KindExit, token, rest)
	case "":
		return Command{}, errors.New("empty input (try help)")
	default:
		return Command{}, fmt.Errorf("unknown command %q (try help)", token)
	}
}

// Apply applies a command to the list, returning the updated list and a
// status message. On error the returned list is the input list, unchanged.
// List, help, and exit are no-ops here; the loop handles them itself.
func Apply(l task.List, c Command) (task.List, string, error) {
	switch c.Kind {
	case KindAdd:
		out, err := l.Add(c.Text)
		if err != nil {
			return l, "", err
		}
		return out, "Added: " + out[len(out)-1].Text, nil
	case KindCheck:
		out, err := l.Check(c.N)
		if err != nil {
			return l, "", err
		}
		return out, fmt.Sprintf("Checked off task %d", c.N), nil
	case KindDelete:
		out, err := l.Delete(c.N)
		if err != nil {
			return l, "", err
		}
		return out, "Deleted: " + l[c.N-1].Text, nil
	case KindClear:
		n := l.DoneCount()
		return l.ClearDone(), fmt.Sprintf("Cleared %d completed task(s)", n), nil
	case KindClearAll:
		return nil, fmt.Sprintf("Cleared all %d task(s)", len(l)), nil
	}
	return l, "", nil
}

// splitToken splits a line into its leading whitespace-delimited token and
// the remainder after the first separating space or tab.
func splitToken(line string) (string, string) {
	trimmed := strings.TrimLeft(line, " \t")
	i := strings.IndexAny(trimmed, " \t")
	if i < 0 {
		return trimmed, ""
	}
	return trimmed[:i], trimmed[i+1:]
}

func parseNumber(name, rest string) (int, error) {
	arg := strings.TrimSpace(rest)
	if arg == "" {
		return 0, fmt.Errorf("%s needs a task number", name)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, arg)
	}
	return n, nil
}

func argless(k Kind, token, rest string) (Command, error) {
	if strings.TrimSpace(rest) != "" {
		return Command{}, fmt.Errorf("%s takes no argument", token)
	}
	return Command{Kind: k}, nil
}
