package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/estimate"
	"github.com/idilsaglam/tada/internal/liststate"
	"github.com/idilsaglam/tada/internal/ui"
)

// column widths: name, quantity, price, subtotal
var colWidths = [...]int{24, 8, 10, 14}

var estimateKeys = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down", "tab"), key.WithHelp("↑↓/tab", "move")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
	key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add line")),
	key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete line")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// EstimateModel is the interactive estimator grid.
type EstimateModel struct {
	sheet *estimate.Sheet
	feed  *feed[estimate.Row]
	rows  []estimate.Row // last snapshot shown
	money interface{ Format(float64) string }

	row, col int

	// Cell edit
	editing  bool
	original string // cell text before the edit, restored on esc
	ti       textinput.Model
}

// NewEstimateModel builds a view over sheet.
func NewEstimateModel(sheet *estimate.Sheet, opt Options) EstimateModel {
	f := &feed[estimate.Row]{}
	sheet.Subscribe(f.push)

	money := opt.Money
	if money == nil {
		money = ui.NewMoney("ja", "¥")
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64

	return EstimateModel{sheet: sheet, feed: f, rows: sheet.Rows(), money: money, ti: ti}
}

// RunEstimate runs the estimator view until the user quits.
func RunEstimate(sheet *estimate.Sheet, opt Options) error {
	_, err := run(NewEstimateModel(sheet, opt), opt)
	return err
}

func (m EstimateModel) Init() tea.Cmd { return nil }

func (m EstimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	x, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.ti, cmd = m.ti.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if x.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.editing {
		cmd = m.updateEdit(x)
	} else if m.updateBrowse(x) {
		return m, tea.Quit
	}
	m.sync()
	return m, cmd
}

func (m *EstimateModel) updateEdit(x tea.KeyMsg) tea.Cmd {
	id, f, ok := m.cell()
	if !ok {
		m.stopEdit()
		return nil
	}
	switch x.String() {
	case "enter", "tab":
		m.stopEdit()
		if x.String() == "tab" {
			m.moveCol(1)
		}
		return nil
	case "esc":
		m.sheet.Update(id, f, m.original)
		m.stopEdit()
		return nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(x)
	// Each keystroke lands in the sheet so the total follows the typing.
	m.sheet.Update(id, f, m.ti.Value())
	return cmd
}

func (m *EstimateModel) updateBrowse(x tea.KeyMsg) (quit bool) {
	switch x.String() {
	case "q", "esc":
		return true
	case "up", "k":
		m.moveRow(-1)
	case "down", "j":
		m.moveRow(1)
	case "left", "h", "shift+tab":
		m.moveCol(-1)
	case "right", "l", "tab":
		m.moveCol(1)
	case "a":
		id := m.sheet.Add()
		log.Printf("estimate: added %d", id)
		m.row = m.sheet.Len() - 1
		m.col = 0
	case "d":
		if id, _, ok := m.cell(); ok {
			m.sheet.Remove(id)
			log.Printf("estimate: removed %d", id)
		}
	case "enter", "e":
		if id, f, ok := m.cell(); ok {
			it, _ := m.sheet.Get(id)
			m.original = estimate.FieldValue(it, f)
			m.ti.Width = colWidths[m.col] - 1
			m.ti.SetValue(m.original)
			m.ti.CursorEnd()
			m.ti.Focus()
			m.editing = true
		}
	}
	return false
}

func (m *EstimateModel) stopEdit() {
	m.editing = false
	m.original = ""
	m.ti.Blur()
	m.ti.SetValue("")
}

// cell resolves the cursor to a line id and column.
func (m EstimateModel) cell() (liststate.ID, estimate.Field, bool) {
	if m.row < 0 || m.row >= len(m.rows) {
		return 0, 0, false
	}
	return m.rows[m.row].ID, estimate.Fields[m.col], true
}

func (m *EstimateModel) moveRow(d int) {
	m.row = clamp(m.row+d, 0, len(m.rows)-1)
}

func (m *EstimateModel) moveCol(d int) {
	n := len(estimate.Fields)
	m.col = (m.col + d + n) % n
}

func (m *EstimateModel) sync() {
	if rows, ok := m.feed.take(); ok {
		m.rows = rows
	}
	m.row = clamp(m.row, 0, len(m.rows)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

func (m EstimateModel) View() string {
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Title.Render("Estimate"), "")

	header := []string{"Item", "Qty", "Price", "Subtotal"}
	var hcells []string
	for i, h := range header {
		hcells = append(hcells, pad(h, colWidths[i]))
	}
	lines = append(lines, t.Accent.Render(strings.Join(hcells, " ")))

	if len(m.rows) == 0 {
		lines = append(lines, t.Muted.Render("no lines"))
	}
	for r, row := range m.rows {
		prefix := "  "
		if r == m.row {
			prefix = t.Selected.Render(t.Cursor)
		}
		var cells []string
		for c, f := range estimate.Fields {
			text := pad(estimate.FieldValue(row.Value, f), colWidths[c])
			if r == m.row && c == m.col {
				if m.editing {
					text = pad(m.ti.View(), colWidths[c])
				} else {
					text = t.Cell.Render(text)
				}
			}
			cells = append(cells, text)
		}
		cells = append(cells, t.Muted.Render(pad(m.money.Format(estimate.Subtotal(row.Value)), colWidths[3])))
		lines = append(lines, prefix+strings.Join(cells, " "))
	}

	lines = append(lines, "", t.Title.Render("Total: "+m.money.Format(estimate.Total(m.rows))))
	lines = append(lines, t.Help.Render(helpLine(estimateKeys)))
	return ui.PanelString(strings.Join(lines, "\n"))
}

func helpLine(keys []key.Binding) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		h := k.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, " • ")
}

// pad fits s to exactly w cells.
func pad(s string, w int) string {
	if lipgloss.Width(s) > w {
		rs := []rune(s)
		for len(rs) > 0 && lipgloss.Width(string(rs)) > w-1 {
			rs = rs[:len(rs)-1]
		}
		s = string(rs) + "…"
	}
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}
