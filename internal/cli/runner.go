package cli

import (
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/estimate"
	"github.com/idilsaglam/tada/internal/export"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options tune behavior from root flags and environment.
type Options struct {
	Export string // json | csv | pdf; empty skips the export
	Out    string // export path; defaults to <list>.<format>

	Money ui.Money

	// Interactive views are swapped in tests.
	runTodo     func(*todo.List, tui.Options) error
	runEstimate func(*estimate.Sheet, tui.Options) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "todo":
		return doTodo(opt)

	case "estimate":
		return doEstimate(opt)

	case "total":
		if len(a) == 0 {
			ui.Fail("usage: tada total <qty>:<price>...")
			return 2
		}
		return doTotal(a, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout(), `tada - list forms for the terminal

Usage:
  tada [flags] <subcommand> [args]

Subcommands:
  todo                  Edit a to-do list (a add, e edit, d delete, q quit)
  estimate              Edit a cost estimate (enter edit cell, a add line, d delete line)
  total <qty>:<price>...  Print the total of the given lines

Flags:
  -theme classic|neon|mono
  -export json|csv|pdf  Write the final list when the session ends (pdf: estimate only)
  -out <path>           Export path (default todos.<format> or estimate.<format>)

Environment:
  TADA_THEME, TADA_LOCALE, TADA_CURRENCY, TADA_DEBUG_LOG

Examples:
  tada todo
  tada -export pdf estimate
  tada total 2:300 1:500
`)
}

// SetupLogging sends the standard logger to path, or discards it when path
// is empty. Bubble Tea owns the terminal, so nothing may log to stderr.
func SetupLogging(path string) (closeFn func(), err error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "tada")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// -------------- subcommand impls ----------------

func doTodo(opt Options) int {
	if err := checkFormat(opt.Export, false); err != nil {
		ui.Fail(err.Error())
		return 2
	}
	run := opt.runTodo
	if run == nil {
		run = tui.RunTodo
	}

	tasks := todo.New()
	if err := run(tasks, tui.Options{Money: opt.Money, AltScreen: true}); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	log.Printf("todo: session ended with %d tasks", tasks.Len())

	if opt.Export == "" {
		return 0
	}
	b, err := export.Todo(tasks.Tasks(), opt.Export)
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	return writeExport(b, opt, "todos")
}

func doEstimate(opt Options) int {
	if err := checkFormat(opt.Export, true); err != nil {
		ui.Fail(err.Error())
		return 2
	}
	run := opt.runEstimate
	if run == nil {
		run = tui.RunEstimate
	}

	sheet := estimate.New()
	if err := run(sheet, tui.Options{Money: opt.Money, AltScreen: true}); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	ui.OK("total " + opt.Money.Format(sheet.Total()))
	return exportEstimate(sheet, opt)
}

func doTotal(args []string, opt Options) int {
	if err := checkFormat(opt.Export, true); err != nil {
		ui.Fail(err.Error())
		return 2
	}
	sheet := estimate.NewEmpty()
	for _, arg := range args {
		qty, price, ok := strings.Cut(arg, ":")
		if !ok {
			ui.Fail("total: want <qty>:<price>, got " + arg)
			return 2
		}
		id := sheet.Add()
		sheet.Update(id, estimate.FieldQuantity, qty)
		sheet.Update(id, estimate.FieldPrice, price)
	}

	t := ui.Current()
	var lines []string
	for i, r := range sheet.Rows() {
		lines = append(lines, fmt.Sprintf("%s %s × %s = %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)),
			r.Value.Quantity, r.Value.Price,
			opt.Money.Format(estimate.Subtotal(r.Value)),
		))
	}
	lines = append(lines, "")
	lines = append(lines, t.Title.Render("Total: "+opt.Money.Format(sheet.Total())))
	ui.Panel(lines)

	return exportEstimate(sheet, opt)
}

func exportEstimate(sheet *estimate.Sheet, opt Options) int {
	if opt.Export == "" {
		return 0
	}
	b, err := export.Estimate(sheet.Rows(), opt.Export, opt.Money.Format)
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	return writeExport(b, opt, "estimate")
}

func writeExport(b []byte, opt Options, base string) int {
	path := opt.Out
	if path == "" {
		path = base + "." + strings.ToLower(opt.Export)
	}
	if err := export.WriteFile(path, b); err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	ui.OK("exported " + path)
	return 0
}

// checkFormat validates an -export value before the session starts.
func checkFormat(format string, pdf bool) error {
	switch strings.ToLower(format) {
	case "", export.FormatJSON, export.FormatCSV:
		return nil
	case export.FormatPDF:
		if pdf {
			return nil
		}
	}
	return fmt.Errorf("unsupported export format %q", format)
}
