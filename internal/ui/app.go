// Package ui provides the Bubble Tea menu interface: a menu tree for
// configuration and a checker view that runs generation and availability
// checks with live feedback.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/vanity/internal/app"
	"github.com/abelbrown/vanity/internal/config"
	"github.com/abelbrown/vanity/internal/logging"
)

type mode int

const (
	modeMenu mode = iota
	modeInput
	modeRunning
)

const echoTail = 8 // recently echoed candidates shown while running

// runState tracks an in-flight generation or check.
type runState struct {
	label  string
	cancel context.CancelFunc // nil while generating; generation is not cancellable
	echoed *ring
	count  atomic.Int64
}

// App is the root Bubble Tea model.
type App struct {
	cfg    *config.Config
	runner *app.Runner

	mode  mode
	stack []menuID // menu navigation path; last entry is current
	list  list.Model

	input    textinput.Model
	inputFor setting

	spin spinner.Model
	run  *runState

	candidates []string
	candSource string

	status string
	err    error

	width, height int
	quitting      bool
}

// NewApp creates the root model.
func NewApp(cfg *config.Config, runner *app.Runner) *App {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle
	ti.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	a := &App{
		cfg:    cfg,
		runner: runner,
		stack:  []menuID{menuMain},
		input:  ti,
		spin:   sp,
		width:  80,
		height: 24,
	}
	a.list = a.buildList(menuMain)
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) listHeight() int {
	h := a.height - 4
	if h < 4 {
		h = 4
	}
	return h
}

func (a *App) current() menuID {
	return a.stack[len(a.stack)-1]
}

func (a *App) enterMenu(id menuID) {
	a.stack = append(a.stack, id)
	a.list = a.buildList(id)
	if !a.cfg.MenuHistory {
		a.status = ""
	}
}

func (a *App) backMenu() {
	if len(a.stack) > 1 {
		a.stack = a.stack[:len(a.stack)-1]
	}
	a.list = a.buildList(a.current())
	if !a.cfg.MenuHistory {
		a.status = ""
	}
}

// refreshMenu rebuilds the current menu in place, preserving the cursor.
func (a *App) refreshMenu() {
	idx := a.list.Index()
	a.list = a.buildList(a.current())
	a.list.Select(idx)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.list.SetSize(a.width, a.listHeight())
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if a.mode != modeRunning {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case GenerateDone:
		a.mode = modeMenu
		a.run = nil
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.candidates = msg.Candidates
		a.candSource = msg.Source
		a.backMenu() // leave the generate menu for the checker menu
		a.status = fmt.Sprintf("Generated %d candidates", len(msg.Candidates))
		return a, nil

	case CheckDone:
		a.mode = modeMenu
		a.run = nil
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		note := ""
		if msg.Outcome.Interrupted {
			note = " (interrupted, partial results kept)"
		}
		a.status = fmt.Sprintf("%d available, saved to %s%s",
			len(msg.Outcome.Confirmed), msg.Outcome.OutputPath, note)
		a.refreshMenu()
		return a, nil
	}

	if a.mode == modeMenu {
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case modeInput:
		switch msg.String() {
		case "enter":
			a.applyInput(strings.TrimSpace(a.input.Value()))
			a.mode = modeMenu
			a.refreshMenu()
			return a, nil
		case "esc":
			a.mode = modeMenu
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case modeRunning:
		switch msg.String() {
		case "esc", "ctrl+c":
			// Interrupt the run but keep partial results; the CheckDone
			// message still arrives with whatever was confirmed.
			if a.run != nil && a.run.cancel != nil {
				a.run.cancel()
				a.status = "Interrupting..."
			}
			return a, nil
		}
		return a, nil

	default: // modeMenu
		switch msg.String() {
		case "ctrl+c":
			a.quitting = true
			return a, tea.Quit
		case "esc", "q":
			if a.current() == menuMain {
				a.quitting = true
				return a, tea.Quit
			}
			a.backMenu()
			return a, nil
		case "enter":
			if item, ok := a.list.SelectedItem().(menuItem); ok {
				return a.selectItem(item)
			}
		}
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd
	}
}

func (a *App) selectItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item.act {
	case actOpenMenu:
		a.enterMenu(item.menu)

	case actBack:
		a.backMenu()

	case actExit:
		a.quitting = true
		return a, tea.Quit

	case actInput:
		a.inputFor = item.set
		a.input.SetValue("")
		a.input.Placeholder = item.desc
		a.input.Focus()
		a.mode = modeInput
		return a, textinput.Blink

	case actSetValue:
		a.applySetting(item.set, item.value)
		a.backMenu()

	case actToggle:
		switch item.set {
		case setMenuHistory:
			a.cfg.MenuHistory = !a.cfg.MenuHistory
		case setEchoCandidates:
			a.cfg.EchoCandidates = !a.cfg.EchoCandidates
		}
		a.refreshMenu()

	case actSaveConfig:
		if err := a.cfg.Save(); err != nil {
			a.err = err
		} else {
			a.err = nil
			a.status = "Config saved"
		}

	case actReadConfig:
		loaded, err := a.cfg.Reload()
		if err != nil {
			a.err = err
			break
		}
		*a.cfg = *loaded
		a.err = nil
		a.status = "Config reloaded"
		a.refreshMenu()

	case actResetConfig:
		dir := a.cfg.Dir
		a.cfg.Reset()
		a.cfg.Dir = dir
		a.status = "Config reset to defaults"
		a.refreshMenu()

	case actGenRange:
		return a, a.startGenerate(app.SourceRange)

	case actGenFile:
		return a, a.startGenerate(app.SourceFile)

	case actCheck:
		return a, a.startCheck()
	}
	return a, nil
}

func (a *App) applyInput(val string) {
	if val == "" {
		return // keep the previous value, like an aborted prompt
	}
	a.applySetting(a.inputFor, val)
}

func (a *App) applySetting(set setting, val string) {
	switch set {
	case setOutputFile:
		a.cfg.OutputFile = val
	case setInputFile:
		a.cfg.InputFile = val
	case setPattern:
		a.cfg.Pattern = val
	case setEndpoint:
		a.cfg.Endpoint = val
	case setMinLen:
		if n, err := strconv.Atoi(val); err == nil {
			a.cfg.MinLen = clamp(n, config.MinGenLen, a.cfg.MaxLen)
		}
	case setMaxLen:
		if n, err := strconv.Atoi(val); err == nil {
			a.cfg.MaxLen = clamp(n, a.cfg.MinLen, config.MaxGenLen)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (a *App) newRunState(label string) *runState {
	rs := &runState{
		label:  label,
		echoed: newRing(64),
	}
	a.run = rs
	a.mode = modeRunning
	a.status = ""
	return rs
}

// echoFunc returns the observer wired into generation and checking, or nil
// when candidate echo is disabled.
func (rs *runState) echoFunc(enabled bool) func(string) {
	if !enabled {
		return func(string) { rs.count.Add(1) }
	}
	return func(c string) {
		rs.count.Add(1)
		rs.echoed.Push(c)
	}
}

func (a *App) startGenerate(source string) tea.Cmd {
	rs := a.newRunState("Generating")
	echo := rs.echoFunc(a.cfg.EchoCandidates)
	runner := a.runner

	work := func() tea.Msg {
		var candidates []string
		var err error
		if source == app.SourceFile {
			candidates, err = runner.GenerateFile()
		} else {
			candidates, err = runner.GenerateRange(echo)
		}
		return GenerateDone{Candidates: candidates, Source: source, Err: err}
	}
	return tea.Batch(a.spin.Tick, work)
}

func (a *App) startCheck() tea.Cmd {
	if len(a.candidates) == 0 {
		a.status = "Nothing to check - generate candidates first"
		return nil
	}

	rs := a.newRunState("Checking")
	ctx, cancel := context.WithCancel(context.Background())
	rs.cancel = cancel

	echo := rs.echoFunc(a.cfg.EchoCandidates)
	runner := a.runner
	candidates := a.candidates
	source := a.candSource

	work := func() tea.Msg {
		defer cancel()
		outcome, err := runner.Check(ctx, candidates, source, echo)
		return CheckDone{Outcome: outcome, Err: err}
	}
	return tea.Batch(a.spin.Tick, work)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("vanity"))
	b.WriteString("\n")

	switch a.mode {
	case modeInput:
		b.WriteString("\n")
		b.WriteString(PromptStyle.Render(inputLabel(a.inputFor)))
		b.WriteString("\n\n")
		b.WriteString(a.input.View())
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("enter confirm · esc cancel"))

	case modeRunning:
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
			a.spin.View(),
			a.run.label,
			CountStyle.Render(fmt.Sprintf("%d", a.run.count.Load()))))
		for _, c := range a.run.echoed.Last(echoTail) {
			b.WriteString(CandidateStyle.Render("@ " + c))
			b.WriteString("\n")
		}
		if a.run.cancel != nil {
			b.WriteString(HelpStyle.Render("esc interrupt (partial results are kept)"))
		}

	default:
		b.WriteString(a.list.View())
		b.WriteString(HelpStyle.Render("enter select · esc back · q quit"))
	}

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(a.err.Error()))
		logging.Debug("UI error shown", "error", a.err)
	} else if a.status != "" {
		b.WriteString("\n")
		b.WriteString(StatusBar.Render(a.status))
	}
	return b.String()
}

func inputLabel(set setting) string {
	switch set {
	case setOutputFile:
		return "Output file name"
	case setInputFile:
		return "Input file name"
	case setPattern:
		return "Pattern (regular expression)"
	case setEndpoint:
		return "Endpoint path segment"
	case setMinLen:
		return fmt.Sprintf("Min length (%d-%d)", config.MinGenLen, config.MaxGenLen)
	case setMaxLen:
		return fmt.Sprintf("Max length (%d-%d)", config.MinGenLen, config.MaxGenLen)
	default:
		return "Value"
	}
}
