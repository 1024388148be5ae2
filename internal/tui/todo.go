package tui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/liststate"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

// taskItem adapts a todo row to bubbles/list.Item.
type taskItem struct {
	id      liststate.ID
	title   string
	editing bool
}

func (i taskItem) Title() string       { return i.title }
func (i taskItem) Description() string { return "" }
func (i taskItem) FilterValue() string { return i.title }

// taskDelegate renders each task on a single line.
type taskDelegate struct{}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	t := ui.Current()
	line := fmt.Sprintf("%s %s", t.Muted.Render(t.Bullet), it.title)
	if it.editing {
		line += " " + t.Accent.Render("(editing)")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
	}
	fmt.Fprint(w, prefix+line)
}

// TodoModel is the interactive todo list.
type TodoModel struct {
	tasks *todo.List
	feed  *feed[todo.Row]
	rows  []todo.Row // last snapshot shown

	list list.Model

	// Inline add
	adding bool
	ti     textinput.Model // shared by add and edit
	addErr string
}

// NewTodoModel builds a view over tasks. The list keeps ownership of the
// data; the view re-renders whenever the list reports a change.
func NewTodoModel(tasks *todo.List) TodoModel {
	f := &feed[todo.Row]{}
	tasks.Subscribe(f.push)

	l := list.New(nil, taskDelegate{}, 0, 0)
	l.Title = "Todos"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.SetStatusBarItemName("task", "tasks")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, delBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, delBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := TodoModel{tasks: tasks, feed: f, rows: tasks.Tasks(), list: l, ti: ti}
	m.list.SetItems(m.items(m.rows))
	return m
}

// RunTodo runs the todo view until the user quits.
func RunTodo(tasks *todo.List, opt Options) error {
	_, err := run(NewTodoModel(tasks), opt)
	return err
}

func (m TodoModel) Init() tea.Cmd { return nil }

func (m TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(x.Width-4, x.Height-6)
		return m, nil
	case tea.KeyMsg:
		if x.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch {
	case m.adding:
		cmd = m.updateAdd(msg)
	case m.isEditing():
		cmd = m.updateEdit(msg)
	default:
		var quit bool
		cmd, quit = m.updateBrowse(msg)
		if quit {
			return m, tea.Quit
		}
	}
	syncCmd := m.sync()
	return m, tea.Batch(cmd, syncCmd)
}

func (m *TodoModel) updateAdd(msg tea.Msg) tea.Cmd {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			id, ok := m.tasks.Add(m.ti.Value())
			if !ok {
				m.addErr = "Title cannot be empty"
				return nil
			}
			log.Printf("todo: added %d", id)
			m.closeInput()
			m.adding = false
			return nil
		case "esc":
			m.closeInput()
			m.adding = false
			return nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.addErr = ""
	return cmd
}

func (m *TodoModel) updateEdit(msg tea.Msg) tea.Cmd {
	id, _ := m.tasks.EditingID()
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			applied := m.tasks.CommitEdit(id)
			log.Printf("todo: commit %d applied=%v", id, applied)
			m.closeInput()
			return nil
		case "esc":
			m.tasks.CancelEdit()
			m.closeInput()
			return nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.tasks.SetBuffer(m.ti.Value())
	return cmd
}

func (m *TodoModel) updateBrowse(msg tea.Msg) (tea.Cmd, bool) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "q", "esc":
			return nil, true
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title..."
			return m.ti.Focus(), false
		case "e":
			if it, ok := m.list.SelectedItem().(taskItem); ok {
				if m.tasks.BeginEdit(it.id, it.title) {
					m.ti.SetValue(it.title)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit task title..."
					return m.ti.Focus(), false
				}
			}
			return nil, false
		case "d":
			if it, ok := m.list.SelectedItem().(taskItem); ok {
				m.tasks.Remove(it.id)
				log.Printf("todo: removed %d", it.id)
			}
			return nil, false
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd, false
}

func (m *TodoModel) closeInput() {
	m.ti.SetValue("")
	m.ti.Blur()
	m.addErr = ""
}

// sync pulls a pending snapshot into the list widget. Items are rebuilt on
// every event because edit state changes do not notify.
func (m *TodoModel) sync() tea.Cmd {
	if rows, ok := m.feed.take(); ok {
		m.rows = rows
	}
	return m.list.SetItems(m.items(m.rows))
}

func (m TodoModel) items(rows []todo.Row) []list.Item {
	editID, editing := m.tasks.EditingID()
	out := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, taskItem{id: r.ID, title: r.Value.Title, editing: editing && r.ID == editID})
	}
	return out
}

func (m TodoModel) isEditing() bool {
	_, ok := m.tasks.EditingID()
	return ok
}

func (m TodoModel) View() string {
	content := m.list.View()
	if m.adding || m.isEditing() {
		t := ui.Current()
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		title := "Add task"
		if m.isEditing() {
			title = "Edit task"
		}
		if m.addErr != "" {
			title += " " + t.Error.Render(m.addErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.PanelString(strings.TrimRight(content, "\n"))
}
