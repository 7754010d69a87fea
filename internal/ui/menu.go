package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/vanity/internal/config"
)

// action is what selecting a menu item does.
type action int

const (
	actNone action = iota
	actOpenMenu
	actBack
	actExit
	actInput    // prompt for a custom value for the setting
	actSetValue // write the item's value to the setting
	actToggle   // flip the boolean setting
	actSaveConfig
	actReadConfig
	actResetConfig
	actGenRange
	actGenFile
	actCheck
)

// setting identifies a configurable field.
type setting int

const (
	setNone setting = iota
	setOutputFile
	setInputFile
	setPattern
	setEndpoint
	setMinLen
	setMaxLen
	setMenuHistory
	setEchoCandidates
)

// menuID identifies a menu in the tree.
type menuID int

const (
	menuMain menuID = iota
	menuConfig
	menuPattern
	menuEndpoint
	menuChecker
	menuGenerate
)

type menuItem struct {
	title string
	desc  string
	act   action
	menu  menuID  // target for actOpenMenu
	set   setting // target for actInput / actSetValue / actToggle
	value string  // payload for actSetValue
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

func onOff(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

// menuTitle returns the rendered title of a menu.
func menuTitle(id menuID) string {
	switch id {
	case menuConfig:
		return "Config"
	case menuPattern:
		return "Pattern"
	case menuEndpoint:
		return "Endpoint"
	case menuChecker:
		return "Checker"
	case menuGenerate:
		return "Generate"
	default:
		return "Vanity"
	}
}

// menuItems builds the items of a menu against the current state. Menus are
// rebuilt on every entry so descriptions always show live values.
func (a *App) menuItems(id menuID) []list.Item {
	cfg := a.cfg
	switch id {
	case menuMain:
		return []list.Item{
			menuItem{title: "Config", desc: "Settings and files", act: actOpenMenu, menu: menuConfig},
			menuItem{title: "Checker", desc: "Generate and check candidates", act: actOpenMenu, menu: menuChecker},
			menuItem{title: "Exit", act: actExit},
		}

	case menuConfig:
		return []list.Item{
			menuItem{title: "Output file", desc: cfg.OutputFile, act: actInput, set: setOutputFile},
			menuItem{title: "Input file", desc: cfg.InputFile, act: actInput, set: setInputFile},
			menuItem{title: "Pattern", desc: cfg.Pattern, act: actOpenMenu, menu: menuPattern},
			menuItem{title: "Endpoint", desc: cfg.Endpoint, act: actOpenMenu, menu: menuEndpoint},
			menuItem{title: "Min length", desc: fmt.Sprintf("%d", cfg.MinLen), act: actInput, set: setMinLen},
			menuItem{title: "Max length", desc: fmt.Sprintf("%d", cfg.MaxLen), act: actInput, set: setMaxLen},
			menuItem{title: "Menu history", desc: onOff(cfg.MenuHistory), act: actToggle, set: setMenuHistory},
			menuItem{title: "Echo candidates", desc: onOff(cfg.EchoCandidates), act: actToggle, set: setEchoCandidates},
			menuItem{title: "Save", desc: "Write config to disk", act: actSaveConfig},
			menuItem{title: "Read", desc: "Reload config from disk", act: actReadConfig},
			menuItem{title: "Reset", desc: "Restore defaults", act: actResetConfig},
			menuItem{title: "Back", act: actBack},
		}

	case menuPattern:
		return []list.Item{
			menuItem{title: "Any", desc: config.PatternAny, act: actSetValue, set: setPattern, value: config.PatternAny},
			menuItem{title: "Only digits", desc: config.PatternOnlyDigits, act: actSetValue, set: setPattern, value: config.PatternOnlyDigits},
			menuItem{title: "Only letters", desc: config.PatternOnlyLetters, act: actSetValue, set: setPattern, value: config.PatternOnlyLetters},
			menuItem{title: "Custom", desc: "Enter a regular expression", act: actInput, set: setPattern},
			menuItem{title: "Back", act: actBack},
		}

	case menuEndpoint:
		return []list.Item{
			menuItem{title: "id", desc: "Vanity profile URLs", act: actSetValue, set: setEndpoint, value: config.EndpointID},
			menuItem{title: "groups", desc: "Group URLs", act: actSetValue, set: setEndpoint, value: config.EndpointGroups},
			menuItem{title: "Custom", desc: "Enter an endpoint path segment", act: actInput, set: setEndpoint},
			menuItem{title: "Back", act: actBack},
		}

	case menuChecker:
		checkDesc := "No candidates generated yet"
		if len(a.candidates) > 0 {
			checkDesc = fmt.Sprintf("%d candidates against /%s/", len(a.candidates), cfg.Endpoint)
		}
		return []list.Item{
			menuItem{title: "Generate", desc: "Produce the candidate list", act: actOpenMenu, menu: menuGenerate},
			menuItem{title: "Check", desc: checkDesc, act: actCheck},
			menuItem{title: "Back", act: actBack},
		}

	case menuGenerate:
		return []list.Item{
			menuItem{
				title: "From base",
				desc:  fmt.Sprintf("Lengths %d-%d, pattern %s", cfg.MinLen, cfg.MaxLen, cfg.Pattern),
				act:   actGenRange,
			},
			menuItem{
				title: "From file",
				desc:  cfg.InputFile,
				act:   actGenFile,
			},
			menuItem{title: "Back", act: actBack},
		}
	}
	return nil
}

// buildList creates the list model for a menu.
func (a *App) buildList(id menuID) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#58a6ff"))

	l := list.New(a.menuItems(id), delegate, a.width, a.listHeight())
	l.Title = menuTitle(id)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	return l
}
