package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RenoirTan/tti/internal/codec"
)

// inspectorKeyMap defines key bindings for the inspector
type inspectorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k inspectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k inspectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Quit},
	}
}

func defaultInspectorKeys() inspectorKeyMap {
	return inspectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InspectorModel is the bubbletea model for the block inspector.
type InspectorModel struct {
	Source    string // image path shown in the title
	Blocks    []codec.Block
	Truncated bool // block list was capped by a limit
	EndIndex  int  // index of the end block, -1 if absent

	viewport viewport.Model
	help     help.Model
	keys     inspectorKeyMap
	ready    bool
	width    int
	height   int
}

// NewInspector builds an inspector over the framed blocks of a stream.
// endIndex is the index of the end-of-stream block, or -1 when the stream
// carries none (foreign or truncated input).
func NewInspector(source string, blocks []codec.Block, endIndex int, truncated bool) InspectorModel {
	return InspectorModel{
		Source:    source,
		Blocks:    blocks,
		Truncated: truncated,
		EndIndex:  endIndex,
		help:      help.New(),
		keys:      defaultInspectorKeys(),
	}
}

// Init implements tea.Model
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderBlocks())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m InspectorModel) View() string {
	if !m.ready {
		return "loading..."
	}

	title := TitleStyle.Render("Block Inspector") + SourceStyle.Render(m.Source)

	status := fmt.Sprintf("%d block(s)", len(m.Blocks))
	if m.EndIndex >= 0 {
		status += fmt.Sprintf(" · end block at #%d", m.EndIndex)
	} else {
		status += " · no end block seen"
	}
	if m.Truncated {
		status += " · list truncated"
	}

	return title + "\n\n" +
		BorderStyle.Render(m.viewport.View()) + "\n" +
		FooterStyle.Render(status) + "\n" +
		m.help.View(m.keys)
}

// renderBlocks formats one line per block.
func (m InspectorModel) renderBlocks() string {
	var sb strings.Builder
	for i, blk := range m.Blocks {
		h := codec.ParseHeader(blk.Header)

		sb.WriteString(OffsetStyle.Render(fmt.Sprintf("%08x  ", i*codec.BlockSize)))
		sb.WriteString(HeaderBitsStyle.Render(fmt.Sprintf("%08b  ", blk.Header)))

		flags := "    "
		if h.End {
			flags = EndFlagStyle.Render("END ")
		}
		sb.WriteString(flags)
		if h.Shifted {
			sb.WriteString(ShiftFlagStyle.Render("SHIFT "))
		} else {
			sb.WriteString("      ")
		}

		if h.End {
			sb.WriteString(PayloadStyle.Render(fmt.Sprintf("len=%d  ", h.FinalLen)))
		} else {
			sb.WriteString(PayloadStyle.Render(fmt.Sprintf("parity=%06b  ", h.Parity)))
		}

		sb.WriteString(PayloadStyle.Render(payloadHex(blk.Payload[:])))
		sb.WriteString("  ")
		sb.WriteString(OffsetStyle.Render(payloadASCII(blk.Payload[:])))
		sb.WriteByte('\n')
	}
	if len(m.Blocks) == 0 {
		sb.WriteString(OffsetStyle.Render("empty stream"))
	}
	return sb.String()
}

func payloadHex(p []byte) string {
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

func payloadASCII(p []byte) string {
	out := make([]byte, len(p))
	for i, b := range p {
		if b >= 32 && b <= 126 {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// SplitBlocks slices a framed stream into blocks for inspection, stopping at
// limit blocks when limit > 0. It reports the index of the first end block
// and whether the listing was truncated by the limit. Trailing bytes shorter
// than a full block are dropped, matching the decoder's view of the stream.
func SplitBlocks(stream []byte, limit int) (blocks []codec.Block, endIndex int, truncated bool) {
	endIndex = -1
	for off := 0; off+codec.BlockSize <= len(stream); off += codec.BlockSize {
		if limit > 0 && len(blocks) >= limit {
			truncated = true
			break
		}
		var blk codec.Block
		blk.Header = stream[off]
		copy(blk.Payload[:], stream[off+1:off+codec.BlockSize])
		if endIndex < 0 && codec.ParseHeader(blk.Header).End {
			endIndex = len(blocks)
		}
		blocks = append(blocks, blk)
	}
	return blocks, endIndex, truncated
}
