// Package task defines the in-memory task list and its Markdown checkbox codec.
package task

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

const (
	uncheckedPrefix = "- [ ] "
	checkedPrefix   = "- [x] "
)

// ErrEmptyText is returned when a task would be created with no text.
var ErrEmptyText = errors.New("task text cannot be empty")

// Task is a single to-do item.
type Task struct {
	Text string
	Done bool
}

// Line renders the task as one Markdown checkbox line (without the newline).
func (t Task) Line() string {
	if t.Done {
		return checkedPrefix + t.Text
	}
	return uncheckedPrefix + t.Text
}

// List is an ordered sequence of tasks. A task's user-facing number is its
// 1-based position in the list; order in memory matches order in the file.
type List []Task

// IndexError reports a task number outside [1, len].
type IndexError struct {
	N   int
	Len int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("no task %d: the list is empty", e.N)
	}
	return fmt.Sprintf("no task %d: valid numbers are 1-%d", e.N, e.Len)
}

// ParseLine classifies one line of a task file. It returns ok=false for
// anything that is not a well-formed checkbox line, including checkbox lines
// whose text is blank. The x in a checked box matches case-insensitively.
func ParseLine(line string) (Task, bool) {
	line = strings.TrimRight(line, "\r\n")

	var done bool
	var text string
	switch {
	case strings.HasPrefix(line, uncheckedPrefix):
		text = line[len(uncheckedPrefix):]
	case len(line) >= len(checkedPrefix) && strings.EqualFold(line[:len(checkedPrefix)], checkedPrefix):
		done = true
		text = line[len(checkedPrefix):]
	default:
		return Task{}, false
	}

	if strings.TrimSpace(text) == "" {
		return Task{}, false
	}
	return Task{Text: text, Done: done}, true
}

// Parse reads a task file body. Lines that are not checkbox lines are
// dropped; they will not survive the next save.
func Parse(data []byte) List {
	var list List
	for _, line := range strings.Split(string(data), "\n") {
		if t, ok := ParseLine(line); ok {
			list = append(list, t)
		}
	}
	return list
}

// Marshal serializes the list, one newline-terminated checkbox line per task.
func (l List) Marshal() []byte {
	var b bytes.Buffer
	for _, t := range l {
		b.WriteString(t.Line())
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Add appends a new unchecked task. The text is trimmed before storing and
// must be non-empty after trimming.
func (l List) Add(text string) (List, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return l, ErrEmptyText
	}
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, Task{Text: text}), nil
}

// Check marks task n (1-based) as done. Checking an already-done task is a
// no-op and not an error.
func (l List) Check(n int) (List, error) {
	if err := l.validIndex(n); err != nil {
		return l, err
	}
	out := make(List, len(l))
	copy(out, l)
	out[n-1].Done = true
	return out, nil
}

// Delete removes task n (1-based), preserving the order of the rest.
func (l List) Delete(n int) (List, error) {
	if err := l.validIndex(n); err != nil {
		return l, err
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:n-1]...)
	return append(out, l[n:]...), nil
}

// ClearDone removes every done task, keeping the remaining tasks in their
// relative order.
func (l List) ClearDone() List {
	var out List
	for _, t := range l {
		if !t.Done {
			out = append(out, t)
		}
	}
	return out
}

// DoneCount returns the number of done tasks.
func (l List) DoneCount() int {
	n := 0
	for _, t := range l {
		if t.Done {
			n++
		}
	}
	return n
}

func (l List) validIndex(n int) error {
	if n < 1 || n > len(l) {
		return &IndexError{N: n, Len: len(l)}
	}
	return nil
}
