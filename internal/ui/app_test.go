package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/vanity/internal/app"
	"github.com/abelbrown/vanity/internal/config"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Dir = t.TempDir()
	return NewApp(cfg, app.NewRunner(cfg, nil))
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuNavigation(t *testing.T) {
	a := testApp(t)

	if a.current() != menuMain {
		t.Fatalf("start menu = %v", a.current())
	}

	// First main menu entry is Config.
	model, _ := a.Update(key("enter"))
	a = model.(*App)
	if a.current() != menuConfig {
		t.Errorf("after enter: menu = %v, want config", a.current())
	}

	model, _ = a.Update(key("esc"))
	a = model.(*App)
	if a.current() != menuMain {
		t.Errorf("after esc: menu = %v, want main", a.current())
	}
}

func TestQuitFromMainMenu(t *testing.T) {
	a := testApp(t)
	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}

func TestToggleSetting(t *testing.T) {
	a := testApp(t)

	was := a.cfg.EchoCandidates
	a.selectItem(menuItem{act: actToggle, set: setEchoCandidates})
	if a.cfg.EchoCandidates == was {
		t.Error("toggle did not flip EchoCandidates")
	}
}

func TestApplySettingClampsLengths(t *testing.T) {
	a := testApp(t)
	a.cfg.MinLen, a.cfg.MaxLen = 2, 3

	a.applySetting(setMinLen, "9")
	if a.cfg.MinLen != 3 {
		t.Errorf("MinLen = %d, want clamp to current max 3", a.cfg.MinLen)
	}

	a.applySetting(setMaxLen, "99")
	if a.cfg.MaxLen != config.MaxGenLen {
		t.Errorf("MaxLen = %d, want %d", a.cfg.MaxLen, config.MaxGenLen)
	}

	a.applySetting(setMinLen, "not-a-number")
	if a.cfg.MinLen != 3 {
		t.Errorf("bad input changed MinLen to %d", a.cfg.MinLen)
	}
}

func TestGenerateDoneReturnsToCheckerMenu(t *testing.T) {
	a := testApp(t)
	a.enterMenu(menuChecker)
	a.enterMenu(menuGenerate)
	a.mode = modeRunning
	a.run = a.newRunState("Generating")

	model, _ := a.Update(GenerateDone{Candidates: []string{"aa", "ab"}, Source: app.SourceRange})
	a = model.(*App)

	if a.mode != modeMenu {
		t.Errorf("mode = %v, want menu", a.mode)
	}
	if a.current() != menuChecker {
		t.Errorf("menu = %v, want checker", a.current())
	}
	if len(a.candidates) != 2 || a.candSource != app.SourceRange {
		t.Errorf("candidates = %v (%s)", a.candidates, a.candSource)
	}
	if !strings.Contains(a.status, "2") {
		t.Errorf("status = %q", a.status)
	}
}

func TestCheckDoneReportsInterruption(t *testing.T) {
	a := testApp(t)
	a.mode = modeRunning
	a.run = a.newRunState("Checking")

	model, _ := a.Update(CheckDone{Outcome: &app.RunOutcome{
		Confirmed:   []string{"xy"},
		Interrupted: true,
		OutputPath:  "/tmp/out.txt",
	}})
	a = model.(*App)

	if !strings.Contains(a.status, "interrupted") {
		t.Errorf("status = %q, want interruption note", a.status)
	}
	if !strings.Contains(a.status, "1 available") {
		t.Errorf("status = %q, want partial count", a.status)
	}
}

func TestCheckWithoutCandidates(t *testing.T) {
	a := testApp(t)

	_, cmd := a.selectItem(menuItem{act: actCheck})
	if cmd != nil {
		t.Error("expected no command without candidates")
	}
	if a.mode != modeMenu {
		t.Errorf("mode = %v", a.mode)
	}
	if a.status == "" {
		t.Error("expected a status hint")
	}
}

func TestEscDuringCheckCancels(t *testing.T) {
	a := testApp(t)
	a.candidates = []string{"aa"}
	a.candSource = app.SourceRange

	cmd := a.startCheck()
	if cmd == nil {
		t.Fatal("startCheck returned no command")
	}
	if a.mode != modeRunning || a.run == nil || a.run.cancel == nil {
		t.Fatal("run state not set up")
	}

	cancelled := false
	orig := a.run.cancel
	a.run.cancel = func() { cancelled = true; orig() }

	model, _ := a.Update(key("esc"))
	a = model.(*App)
	if !cancelled {
		t.Error("esc did not cancel the run")
	}
	if a.mode != modeRunning {
		t.Error("interrupting must not leave the running view before CheckDone")
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	a := testApp(t)
	for _, m := range []mode{modeMenu, modeInput, modeRunning} {
		a.mode = m
		if m == modeRunning {
			a.run = a.newRunState("Checking")
			a.run.echoed.Push("abc")
		}
		if out := a.View(); out == "" {
			t.Errorf("empty view in mode %v", m)
		}
	}
}
