package todo

import (
	"reflect"
	"testing"

	"github.com/idilsaglam/tada/internal/liststate"
)

func titles(l *List) []string {
	var out []string
	for _, r := range l.Tasks() {
		out = append(out, r.Value.Title)
	}
	return out
}

func TestNewHoldsExampleTask(t *testing.T) {
	l := New()
	if got := titles(l); !reflect.DeepEqual(got, []string{ExampleTitle}) {
		t.Fatalf("expected example task, got %v", got)
	}
	if _, ok := l.Edit().(Viewing); !ok {
		t.Fatalf("expected viewing, got %#v", l.Edit())
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantOK  bool
		wantLen int
	}{
		{name: "title", title: "buy milk", wantOK: true, wantLen: 1},
		{name: "padded", title: "  call mum ", wantOK: true, wantLen: 1},
		{name: "empty", title: "", wantOK: false, wantLen: 0},
		{name: "whitespace", title: " \t\n", wantOK: false, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewEmpty()
			_, ok := l.Add(tt.title)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if l.Len() != tt.wantLen {
				t.Fatalf("expected %d tasks, got %d", tt.wantLen, l.Len())
			}
		})
	}
}

func TestAddTrimsTitle(t *testing.T) {
	l := NewEmpty()
	id, _ := l.Add("  call mum ")
	task, _ := l.Get(id)
	if task.Title != "call mum" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
}

func TestSequentialAddsGetDistinctIDs(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("a")
	b, _ := l.Add("b")
	if a == b {
		t.Fatalf("expected distinct ids, got %d twice", a)
	}
}

func TestRemove(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("a")
	l.Add("b")

	if l.Remove(a + 50) {
		t.Fatal("expected unknown id to be ignored")
	}
	if !l.Remove(a) {
		t.Fatal("expected remove to succeed")
	}
	if got := titles(l); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected [b], got %v", got)
	}
}

func TestRemoveTaskUnderEditLeavesEditMode(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("a")
	l.BeginEdit(a, "a")
	l.Remove(a)
	if _, ok := l.Edit().(Viewing); !ok {
		t.Fatalf("expected viewing, got %#v", l.Edit())
	}
}

func TestRemoveOtherTaskKeepsEdit(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("a")
	b, _ := l.Add("b")
	l.BeginEdit(a, "a")
	l.Remove(b)
	if id, ok := l.EditingID(); !ok || id != a {
		t.Fatalf("expected still editing %d, got %d (ok=%v)", a, id, ok)
	}
}

func TestEditCommit(t *testing.T) {
	l := NewEmpty()
	l.Add("a")
	b, _ := l.Add("b")

	if !l.BeginEdit(b, "b") {
		t.Fatal("expected begin edit to succeed")
	}
	l.SetBuffer("  bee ")
	if got := l.Edit(); got != (Editing{ID: b, Buffer: "  bee "}) {
		t.Fatalf("expected editing buffer, got %#v", got)
	}
	if !l.CommitEdit(b) {
		t.Fatal("expected commit to apply")
	}
	if got := titles(l); !reflect.DeepEqual(got, []string{"a", "bee"}) {
		t.Fatalf("expected [a bee], got %v", got)
	}
	if _, ok := l.Edit().(Viewing); !ok {
		t.Fatalf("expected viewing after commit, got %#v", l.Edit())
	}
}

func TestCommitBlankKeepsTitleAndExits(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("keep me")
	l.BeginEdit(a, "keep me")
	l.SetBuffer("   ")

	if l.CommitEdit(a) {
		t.Fatal("expected blank commit not to apply")
	}
	if got := titles(l); !reflect.DeepEqual(got, []string{"keep me"}) {
		t.Fatalf("expected title unchanged, got %v", got)
	}
	if _, ok := l.Edit().(Viewing); !ok {
		t.Fatalf("expected viewing after commit, got %#v", l.Edit())
	}
}

func TestCommitWrongIDIsNoop(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("a")
	b, _ := l.Add("b")
	l.BeginEdit(a, "a")
	l.SetBuffer("changed")

	if l.CommitEdit(b) {
		t.Fatal("expected commit for another task to do nothing")
	}
	if id, ok := l.EditingID(); !ok || id != a {
		t.Fatalf("expected still editing %d, got %d (ok=%v)", a, id, ok)
	}
}

func TestOnlyOneTaskEditedAtATime(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("a")
	b, _ := l.Add("b")
	l.BeginEdit(a, "a")
	l.BeginEdit(b, "b")

	if id, _ := l.EditingID(); id != b {
		t.Fatalf("expected editing %d, got %d", b, id)
	}
	if l.CommitEdit(a) {
		t.Fatal("expected stale edit of a to be gone")
	}
}

func TestBeginEditUnknownID(t *testing.T) {
	l := NewEmpty()
	if l.BeginEdit(liststate.ID(42), "x") {
		t.Fatal("expected unknown id to be ignored")
	}
	if _, ok := l.Edit().(Viewing); !ok {
		t.Fatalf("expected viewing, got %#v", l.Edit())
	}
}

func TestCancelEdit(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("a")
	l.BeginEdit(a, "a")
	l.SetBuffer("zzz")
	l.CancelEdit()

	if got := titles(l); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected title unchanged, got %v", got)
	}
	if _, ok := l.EditingID(); ok {
		t.Fatal("expected no task under edit")
	}
}

func TestSetBufferWhileViewing(t *testing.T) {
	l := NewEmpty()
	l.SetBuffer("ignored")
	if _, ok := l.Edit().(Viewing); !ok {
		t.Fatalf("expected viewing, got %#v", l.Edit())
	}
}

func TestSubscribeSeesCommits(t *testing.T) {
	l := NewEmpty()
	a, _ := l.Add("a")
	var seen [][]Row
	l.Subscribe(func(rows []Row) { seen = append(seen, rows) })

	l.BeginEdit(a, "a")
	l.SetBuffer("b")
	l.CommitEdit(a)

	if len(seen) != 1 {
		t.Fatalf("expected one notification, got %d", len(seen))
	}
	if seen[0][0].Value.Title != "b" {
		t.Fatalf("expected new title in snapshot, got %q", seen[0][0].Value.Title)
	}
}
