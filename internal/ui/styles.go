package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
)

// TitleStyle for the application header.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// StatusBar style for the bottom status line.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// CandidateStyle for echoed candidates in the run view.
var CandidateStyle = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Padding(0, 2)

// CountStyle for the live dispatch counter.
var CountStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// HelpStyle for key hints.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// PromptStyle for the custom-value input prompt.
var PromptStyle = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)
