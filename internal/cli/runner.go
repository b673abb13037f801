package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/script"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options carry the loaded config and the process streams.
type Options struct {
	Config *config.Config
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Reducer overrides the id source; nil means random UUIDs.
	Reducer *store.Reducer
	// ProgramOptions are passed to the Bubble Tea program of `ui`.
	ProgramOptions []tea.ProgramOption
}

func (o *Options) fill() {
	if o.Config == nil {
		o.Config = &config.Config{Theme: config.DefaultTheme, Filter: config.DefaultFilter, CharLimit: config.DefaultCharLimit}
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Reducer == nil {
		o.Reducer = store.New()
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.fill()
	if len(args) == 0 {
		return doUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ui":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: tada ui")
			return 2
		}
		return doUI(opt)

	case "run":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: tada run <script.json|->")
			return 2
		}
		return doRun(a[0], opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `tada - a to-do list with a trash can

Usage:
  tada [flags] [subcommand] [args]

Subcommands:
  ui                 Interactive list (default)
  run <file|->       Replay an action script and print the resulting view
  help               Show this help

Flags:
  --theme <name>     classic, neon or mono
  --filter <view>    all, completed, active or deleted
  --char-limit <n>   maximum item text length in the editor
  --group            group run output by pending/done
  --json             print run output as a JSON snapshot
  --log-level <lvl>  debug, info, warn or error
  --log-file <path>  write logs to a file

Examples:
  tada
  tada --filter active
  echo '{"actions":[{"type":"set_draft","text":"Buy milk"},{"type":"submit"}]}' | tada run -
`)
}

// -------------- subcommand impls ----------------

func doUI(opt Options) int {
	cfg := opt.Config
	logger, closeLog, err := sessionLogger(cfg, nil)
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error())
		return 1
	}
	defer closeLog()

	m := tui.New(opt.Reducer, model.NewState(cfg.InitialFilter), tui.Options{
		CharLimit: cfg.CharLimit,
		Logger:    logger,
	})
	logger.Info("session started", "filter", cfg.InitialFilter, "theme", cfg.Theme)

	final, err := tui.Run(m, opt.ProgramOptions...)
	if err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	c := store.Count(final.State())
	logger.Info("session ended", "done", c.Done, "active", c.Active, "deleted", c.Deleted)
	ui.OK(opt.Stdout, fmt.Sprintf("session closed: %d done, %d active, %d in trash", c.Done, c.Active, c.Deleted))
	return 0
}

func doRun(path string, opt Options) int {
	cfg := opt.Config
	logger, closeLog, err := sessionLogger(cfg, opt.Stderr)
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error())
		return 1
	}
	defer closeLog()

	var sc *script.Script
	if path == "-" {
		sc, err = script.Load(opt.Stdin)
	} else {
		sc, err = script.LoadFile(path)
	}
	if err != nil {
		ui.Fail(opt.Stderr, "load: "+err.Error())
		return exitCode(err)
	}

	s, err := script.Replay(opt.Reducer, model.NewState(cfg.InitialFilter), sc, logger)
	if err != nil {
		ui.Fail(opt.Stderr, "run: "+err.Error())
		var ie *script.IndexError
		if errors.As(err, &ie) {
			fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("Hint: indexes count from 1 within the current view"))
		}
		return exitCode(err)
	}
	logger.Info("script replayed", "steps", len(sc.Actions), "items", len(s.Items))

	if cfg.JSON {
		if err := script.WriteSnapshot(opt.Stdout, s); err != nil {
			ui.Fail(opt.Stderr, err.Error())
			return 1
		}
		return 0
	}
	fmt.Fprintln(opt.Stdout, ui.Panel(viewLines(s, cfg.Group)))
	return 0
}

// exitCode maps script mistakes to 2 and everything else to 1.
func exitCode(err error) int {
	var ves script.ValidationErrors
	var ie *script.IndexError
	switch {
	case errors.As(err, &ves), errors.As(err, &ie), errors.Is(err, store.ErrInvalidAction):
		return 2
	}
	return 1
}

// sessionLogger logs to the configured file, else to fallback, else nowhere.
func sessionLogger(cfg *config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	opts, err := cfg.LogOptions()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Log.File != "" {
		logger, c, err := logging.OpenFile(cfg.Log.File, opts)
		if err != nil {
			return nil, nil, err
		}
		return logger, func() { _ = c.Close() }, nil
	}
	if fallback == nil {
		return logging.Discard(), func() {}, nil
	}
	return logging.New(fallback, opts), func() {}, nil
}

// -------------- rendering helpers --------------

func viewLines(s model.State, group bool) []string {
	t := ui.Current()
	c := store.Count(s)
	visible := store.Visible(s)

	var lines []string
	lines = append(lines, ui.Header(c, s.Filter))
	lines = append(lines, ui.Progress(c, 28))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(visible)...)
	} else {
		lines = append(lines, flatLines(visible)...)
	}
	if s.Draft != "" {
		lines = append(lines, "", t.Muted.Render("draft: "+s.Draft))
	}
	return lines
}

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.Current().Muted.Render("no items")}
	}
	pos := make([]int, len(items))
	for i := range items {
		pos[i] = i + 1
	}
	return numberedLines(items, pos)
}

// numberedLines prefixes each item with its position in the visible view,
// which is what script indexes refer to.
func numberedLines(items []model.Item, pos []int) []string {
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", pos[i])
		out = append(out, fmt.Sprintf("%s %s", ui.Current().Muted.Render(idx), ui.ItemLine(it)))
	}
	return out
}

func groupLines(items []model.Item) []string {
	var pend, done []model.Item
	var pendPos, donePos []int
	for i, it := range items {
		if it.Done {
			done = append(done, it)
			donePos = append(donePos, i+1)
		} else {
			pend = append(pend, it)
			pendPos = append(pendPos, i+1)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, numberedLines(pend, pendPos)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, numberedLines(done, donePos)...)
	}
	return lines
}
