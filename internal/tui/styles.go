package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the inspector
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	AccentColor  = lipgloss.Color("#43BF6D") // Green - end block marker
	WarningColor = lipgloss.Color("#FFA500") // Orange - shifted payloads
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

var (
	// TitleStyle is for the inspector header line
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			PaddingLeft(1)

	// SourceStyle is for the source file path next to the title
	SourceStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// OffsetStyle is for block byte offsets
	OffsetStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// HeaderBitsStyle is for the raw header byte in binary
	HeaderBitsStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// EndFlagStyle marks the end-of-stream block
	EndFlagStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// ShiftFlagStyle marks blocks with shifted payloads
	ShiftFlagStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// PayloadStyle is for payload hex and ASCII columns
	PayloadStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// FooterStyle is for the status line above the help view
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// BorderStyle frames the viewport
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor)
)
