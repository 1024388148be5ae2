// Package tui holds the interactive Bubble Tea views for the todo list and
// the estimator.
package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// feed buffers the latest snapshot pushed by a list subscription until the
// model picks it up. It lives behind a pointer so that copies of a Bubble
// Tea model share it.
type feed[T any] struct {
	rows    []T
	pending bool
}

func (f *feed[T]) push(rows []T) {
	f.rows = rows
	f.pending = true
}

// take returns the buffered snapshot once per change.
func (f *feed[T]) take() ([]T, bool) {
	if !f.pending {
		return nil, false
	}
	f.pending = false
	return f.rows, true
}

// Options tune the interactive views.
type Options struct {
	Money interface{ Format(float64) string }
	// AltScreen runs the program full-window.
	AltScreen bool
}

func run(m tea.Model, opt Options) (tea.Model, error) {
	var popts []tea.ProgramOption
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		log.Printf("tui: program exited: %v", err)
		return nil, err
	}
	return final, nil
}
