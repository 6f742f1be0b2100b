package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Exit codes: 0 ok, 1 runtime error, 2 usage.
const (
	codeOK    = 0
	codeError = 1
	codeUsage = 2
)

// Options wire the batch runner to a list.
type Options struct {
	List   *todo.List
	Logger *log.Logger
}

type runner struct {
	list   *todo.List
	logger *log.Logger
	out    io.Writer
	errw   io.Writer
	line   int
}

// Run executes one command per line of r against opt.List and returns the
// worst exit code seen. Blank lines and lines starting with # are skipped.
func Run(r io.Reader, stdout, stderr io.Writer, opt Options) int {
	rn := runner{
		list:   opt.List,
		logger: opt.Logger,
		out:    stdout,
		errw:   stderr,
	}
	if rn.list == nil {
		rn.list = todo.New()
	}
	if rn.logger == nil {
		rn.logger = logging.Discard()
	}

	worst := codeOK
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rn.line++
		raw := strings.TrimSuffix(sc.Text(), "\r")
		if line := strings.TrimSpace(raw); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if code := rn.exec(strings.TrimLeft(raw, " \t")); code > worst {
			worst = code
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(stderr, "read: "+err.Error())
		return codeError
	}
	return worst
}

// exec runs one line. Text arguments are kept exactly as written after the
// separating space; every other argument is trimmed.
func (rn *runner) exec(line string) int {
	cmd, text, hasArg := strings.Cut(line, " ")
	cmd = strings.TrimSpace(cmd)
	rest := strings.TrimSpace(text)
	rn.logger.Debug("exec", "line", rn.line, "cmd", cmd)

	switch cmd {
	case "help":
		PrintHelp(rn.out)
		return codeOK

	case "ls":
		return rn.doList()

	case "add":
		if !hasArg {
			return rn.usage("usage: add <text...>")
		}
		return rn.doAdd(text)

	case "edit":
		idx, value, _ := strings.Cut(strings.TrimLeft(text, " "), " ")
		n, code := rn.index(cmd, idx)
		if code != codeOK {
			return code
		}
		return rn.doEdit(n, value)

	case "check":
		n, code := rn.index(cmd, rest)
		if code != codeOK {
			return code
		}
		return rn.doToggle(n, rn.list.ToggleChecked, "toggled")

	case "done":
		n, code := rn.index(cmd, rest)
		if code != codeOK {
			return code
		}
		if rn.list.Visible()[n].Checked {
			return rn.usage(fmt.Sprintf("done: row %d is already done", n+1))
		}
		return rn.doToggle(n, rn.list.ToggleChecked, "done")

	case "trash":
		n, code := rn.index(cmd, rest)
		if code != codeOK {
			return code
		}
		return rn.doToggle(n, rn.list.ToggleRemoved, "moved")

	case "rm":
		n, code := rn.index(cmd, rest)
		if code != codeOK {
			return code
		}
		if rn.list.Visible()[n].Removed {
			return rn.usage(fmt.Sprintf("rm: row %d is already in the trash", n+1))
		}
		return rn.doToggle(n, rn.list.ToggleRemoved, "trashed")

	case "restore":
		n, code := rn.index(cmd, rest)
		if code != codeOK {
			return code
		}
		if !rn.list.Visible()[n].Removed {
			return rn.usage(fmt.Sprintf("restore: row %d is not in the trash", n+1))
		}
		return rn.doToggle(n, rn.list.ToggleRemoved, "restored")

	case "filter":
		f, err := model.ParseFilter(rest)
		if err != nil || rest == "" {
			return rn.usage("usage: filter <all|checked|unchecked|removed>")
		}
		rn.list.SetFilter(f)
		ui.OK(rn.out, "showing "+f.Label())
		return codeOK
	}

	return rn.usage("unknown command: " + cmd)
}

// PrintHelp writes the batch command reference.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `tada run - batch commands, one per line

Commands:
  add <text...>        Add a task at the top of the list
  edit <n> [text...]   Replace the text of row n (empty text allowed)
  check <n>            Toggle done for row n
  done <n>             Mark row n done (refused if it already is)
  trash <n>            Move row n to the trash, or restore it
  rm <n>               Move row n to the trash (refused if it already is)
  restore <n>          Bring row n back from the trash
  filter <name>        Show all, checked, unchecked or removed tasks
  ls                   Print the visible rows
  help                 Show this help

Rows are numbered from 1 in the current filter. Lines starting with # are ignored.
Text after "add " or "edit <n> " is kept as written, spaces included.
`)
}

// -------------- commands ----------------

func (rn *runner) doList() int {
	snap := rn.list.Snapshot()
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), snap.Tally.Done,
		t.Pending.Render(t.SymPending), snap.Tally.Active,
		t.Muted.Render(t.SymTrash), snap.Tally.Trashed,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(snap.Tally.Done, snap.Tally.Total(), 28)))
	lines = append(lines, t.Accent.Render("Showing: "+snap.Filter.Label()))
	lines = append(lines, "")
	lines = append(lines, flatLines(snap.Visible)...)
	fmt.Fprintln(rn.out, ui.Panel(lines))
	return codeOK
}

func (rn *runner) doAdd(text string) int {
	if _, ok := rn.list.Add(text); ok {
		ui.OK(rn.out, "added")
	}
	return codeOK
}

func (rn *runner) doEdit(n int, text string) int {
	it := rn.list.Visible()[n]
	if rn.list.Edit(it.ID, text) {
		ui.OK(rn.out, "edited")
	}
	return codeOK
}

func (rn *runner) doToggle(n int, toggle func(id string) bool, verb string) int {
	it := rn.list.Visible()[n]
	if toggle(it.ID) {
		ui.OK(rn.out, verb)
	}
	return codeOK
}

// index parses a 1-based row number into a 0-based index into the visible rows.
func (rn *runner) index(cmd, arg string) (int, int) {
	if arg == "" || strings.Contains(arg, " ") {
		return 0, rn.usage(fmt.Sprintf("usage: %s <n>", cmd))
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, rn.usage(cmd + ": not a number: " + arg)
	}
	rows := len(rn.list.Visible())
	if n < 1 || n > rows {
		code := rn.usage(fmt.Sprintf("index out of range: have %d, got %d", rows, n))
		fmt.Fprintln(rn.errw, ui.Current().Muted.Render("Hint: run `ls` to see valid indexes"))
		return 0, code
	}
	return n - 1, codeOK
}

func (rn *runner) usage(msg string) int {
	ui.Fail(rn.errw, fmt.Sprintf("line %d: %s", rn.line, msg))
	return codeUsage
}

// -------------- row formatting --------------

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.Muted.Render(t.BoxUnchecked)
		if it.Checked {
			box = t.Success.Render(t.BoxChecked)
		}
		value := truncate(it.Value, 80)
		if it.Checked {
			value = t.Done.Render(value)
		}
		button := "[remove]"
		if it.Removed {
			button = "[restore]"
		}
		out = append(out, fmt.Sprintf("%s %s %s  %s",
			t.Muted.Render(idx), box, value, t.Accent.Render(button)))
	}
	return out
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:max(width, 0)])
	}
	return string(r[:width-3]) + "..."
}
