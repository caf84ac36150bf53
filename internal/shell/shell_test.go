package shell

import (
	"reflect"
	"testing"

	"smallt/internal/task"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{"add", "add Buy milk", Command{Kind: KindAdd, Text: "Buy milk"}, false},
		{"add keeps raw text", "add  leading space", Command{Kind: KindAdd, Text: " leading space"}, false},
		{"add without text", "add", Command{Kind: KindAdd}, false},
		{"check", "check 2", Command{Kind: KindCheck, N: 2}, false},
		{"check negative parses", "check -1", Command{Kind: KindCheck, N: -1}, false},
		{"check non-numeric", "check abc", Command{}, true},
		{"check fraction", "check 1.5", Command{}, true},
		{"check missing arg", "check", Command{}, true},
		{"delete", "delete 1", Command{Kind: KindDelete, N: 1}, false},
		{"delete non-numeric", "delete x", Command{}, true},
		{"clear", "clear", Command{Kind: KindClear}, false},
		{"clear with argument", "clear all", Command{}, true},
		{"clearall", "clearall", Command{Kind: KindClearAll}, false},
		{"list", "list", Command{Kind: KindList}, false},
		{"help", "help", Command{Kind: KindHelp}, false},
		{"exit", "exit", Command{Kind: KindExit}, false},
		{"exit with argument", "exit now", Command{}, true},
		{"leading whitespace ok", "  exit", Command{Kind: KindExit}, false},
		{"tab separator", "check\t3", Command{Kind: KindCheck, N: 3}, false},
		{"case sensitive", "Add thing", Command{}, true},
		{"unknown", "frobnicate", Command{}, true},
		{"empty", "", Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) err: got %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q): got %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestApplyAdd(t *testing.T) {
	list := task.List{{Text: "First"}}

	got, status, err := Apply(list, Command{Kind: KindAdd, Text: " Second "})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	want := task.List{{Text: "First"}, {Text: "Second"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("list: got %+v, want %+v", got, want)
	}
	if status != "Added: Second" {
		t.Errorf("status: got %q", status)
	}
}

func TestApplyAddEmpty(t *testing.T) {
	list := task.List{{Text: "First"}}

	got, _, err := Apply(list, Command{Kind: KindAdd, Text: "   "})
	if err == nil {
		t.Fatal("expected error for empty text")
	}
	if !reflect.DeepEqual(got, list) {
		t.Errorf("list changed on rejected add: %+v", got)
	}
}

func TestApplyCheckIdempotent(t *testing.T) {
	list := task.List{{Text: "a"}, {Text: "b"}}

	once, _, err := Apply(list, Command{Kind: KindCheck, N: 1})
	if err != nil {
		t.Fatalf("first check failed: %v", err)
	}
	twice, _, err := Apply(once, Command{Kind: KindCheck, N: 1})
	if err != nil {
		t.Fatalf("second check failed: %v", err)
	}
	if !once[0].Done || !reflect.DeepEqual(once, twice) {
		t.Errorf("check not idempotent: once=%+v twice=%+v", once, twice)
	}
}

func TestApplyCheckBoundary(t *testing.T) {
	list := task.List{{Text: "a"}, {Text: "b"}}
	for _, n := range []int{0, -1, 3} {
		got, _, err := Apply(list, Command{Kind: KindCheck, N: n})
		if err == nil {
			t.Errorf("check %d: expected error", n)
		}
		if !reflect.DeepEqual(got, list) {
			t.Errorf("check %d changed the list: %+v", n, got)
		}
	}

	if _, _, err := Apply(nil, Command{Kind: KindCheck, N: 1}); err == nil {
		t.Error("check on empty list: expected error")
	}
}

func TestApplyDelete(t *testing.T) {
	list := task.List{{Text: "a"}, {Text: "b"}, {Text: "c"}}

	got, status, err := Apply(list, Command{Kind: KindDelete, N: 2})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	want := task.List{{Text: "a"}, {Text: "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("list: got %+v, want %+v", got, want)
	}
	if status != "Deleted: b" {
		t.Errorf("status: got %q", status)
	}
}

func TestApplyClear(t *testing.T) {
	list := task.List{
		{Text: "a", Done: true},
		{Text: "b"},
		{Text: "c", Done: true},
	}

	got, status, err := Apply(list, Command{Kind: KindClear})
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	want := task.List{{Text: "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("list: got %+v, want %+v", got, want)
	}
	if status != "Cleared 2 completed task(s)" {
		t.Errorf("status: got %q", status)
	}

	// clear on a list with nothing done still succeeds.
	again, status, err := Apply(got, Command{Kind: KindClear})
	if err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
	if !reflect.DeepEqual(again, want) {
		t.Errorf("second clear changed the list: %+v", again)
	}
	if status != "Cleared 0 completed task(s)" {
		t.Errorf("status: got %q", status)
	}
}

func TestApplyClearAll(t *testing.T) {
	list := task.List{{Text: "a"}, {Text: "b", Done: true}}

	got, status, err := Apply(list, Command{Kind: KindClearAll})
	if err != nil {
		t.Fatalf("clearall failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("list not emptied: %+v", got)
	}
	if status != "Cleared all 2 task(s)" {
		t.Errorf("status: got %q", status)
	}
}

func TestKindMutates(t *testing.T) {
	mutating := map[Kind]bool{
		KindAdd:      true,
		KindCheck:    true,
		KindDelete:   true,
		KindClear:    true,
		KindClearAll: true,
		KindList:     false,
		KindHelp:     false,
		KindExit:     false,
	}
	for k, want := range mutating {
		if got := k.Mutates(); got != want {
			t.Errorf("Kind(%d).Mutates(): got %v, want %v", k, got, want)
		}
	}
}
