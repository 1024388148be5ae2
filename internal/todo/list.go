// Package todo implements the to-do list: tasks that can be added, renamed
// and deleted, with at most one task open for editing at a time.
package todo

import (
	"strings"

	"github.com/idilsaglam/tada/internal/liststate"
	"github.com/idilsaglam/tada/internal/model"
)

// ExampleTitle is the placeholder task a new list opens with.
const ExampleTitle = "e.g. type a task"

// Row is one task with its id.
type Row = liststate.Row[model.Task]

// EditState is either Viewing or Editing.
type EditState interface {
	isEditState()
}

// Viewing means no task is being edited.
type Viewing struct{}

// Editing holds the task under edit and the title typed so far.
type Editing struct {
	ID     liststate.ID
	Buffer string
}

func (Viewing) isEditState() {}
func (Editing) isEditState() {}

// List is the to-do state.
type List struct {
	tasks liststate.List[model.Task]
	edit  EditState
}

// New returns a list holding the example task.
func New() *List {
	l := NewEmpty()
	l.Add(ExampleTitle)
	return l
}

// NewEmpty returns a list with no tasks.
func NewEmpty() *List { return &List{edit: Viewing{}} }

// Add appends a task. Blank titles are ignored and report false.
func (l *List) Add(title string) (liststate.ID, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, false
	}
	return l.tasks.Add(model.Task{Title: title}), true
}

// Remove deletes the task. Removing the task under edit leaves edit mode.
func (l *List) Remove(id liststate.ID) bool {
	if e, ok := l.edit.(Editing); ok && e.ID == id {
		l.edit = Viewing{}
	}
	return l.tasks.Remove(id)
}

// BeginEdit opens id for editing with currentTitle in the buffer. Any other
// edit in progress is dropped.
func (l *List) BeginEdit(id liststate.ID, currentTitle string) bool {
	if _, ok := l.tasks.Get(id); !ok {
		return false
	}
	l.edit = Editing{ID: id, Buffer: currentTitle}
	return true
}

// SetBuffer replaces the text being typed. It does nothing while viewing.
func (l *List) SetBuffer(text string) {
	if e, ok := l.edit.(Editing); ok {
		e.Buffer = text
		l.edit = e
	}
}

// CommitEdit applies the buffer to id and leaves edit mode. A blank buffer
// leaves the title as it was. It reports whether the buffer was applied;
// when id is not the task under edit nothing happens.
func (l *List) CommitEdit(id liststate.ID) bool {
	e, ok := l.edit.(Editing)
	if !ok || e.ID != id {
		return false
	}
	l.edit = Viewing{}

	title := strings.TrimSpace(e.Buffer)
	if title == "" {
		return false
	}
	return l.tasks.Update(id, func(t model.Task) model.Task {
		t.Title = title
		return t
	})
}

// CancelEdit leaves edit mode without touching any task.
func (l *List) CancelEdit() { l.edit = Viewing{} }

// Edit reports the current edit state.
func (l *List) Edit() EditState {
	if l.edit == nil {
		return Viewing{}
	}
	return l.edit
}

// EditingID returns the id under edit, if any.
func (l *List) EditingID() (liststate.ID, bool) {
	e, ok := l.Edit().(Editing)
	return e.ID, ok
}

func (l *List) Get(id liststate.ID) (model.Task, bool) { return l.tasks.Get(id) }
func (l *List) Tasks() []Row                           { return l.tasks.Snapshot() }
func (l *List) Len() int                               { return l.tasks.Len() }

// Subscribe forwards change notifications from the underlying list.
func (l *List) Subscribe(fn func([]Row)) (cancel func()) { return l.tasks.Subscribe(fn) }
