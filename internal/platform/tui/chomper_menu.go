package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chomper/internal/chase/layout"
	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/match"
)

// ChomperSelection holds the user's picks from the pre-round menu.
type ChomperSelection struct {
	Mode    match.Mode
	BoardID string
}

// modeHint is the one-line description shown next to each mode.
func modeHint(m match.Mode) string {
	switch m {
	case match.ModeSolo:
		return "you chomp, ghosts hunt"
	case match.ModeVersus:
		return "arrows chomp, WASD drives a ghost"
	case match.ModeGhost:
		return "you haunt an AI chomper"
	}
	return ""
}

// ChomperMenuModel lets users pick play mode and board before a round.
// Mode first, then board; Esc steps back one phase.
type ChomperMenuModel struct {
	modes         []match.Mode
	boards        []layout.Layout
	cursor        int
	boardCursor   int
	inBoardSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     ChomperSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewChomperMenuModel creates the pre-round selector. boardDir points at the
// custom board directory and may be empty.
func NewChomperMenuModel(width, height int, boardDir string) ChomperMenuModel {
	return ChomperMenuModel{
		modes:     match.Modes(),
		boards:    layout.Catalog(boardDir),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ChomperMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ChomperMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ChomperMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inBoardSelect {
		return m.handleBoardSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m ChomperMenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Mode = m.modes[m.cursor]
		m.inBoardSelect = true
		m.boardCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ChomperMenuModel) handleBoardSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.boardCursor > 0 {
			m.boardCursor--
		}
	case MenuActionDown:
		if m.boardCursor < len(m.boards)-1 {
			m.boardCursor++
		}
	case MenuActionSelect:
		if len(m.boards) > 0 {
			m.choosing = false
			m.selection.BoardID = m.boards[m.boardCursor].ID
			return m, tea.Quit
		}
	case MenuActionBack:
		m.inBoardSelect = false
	}

	return m, nil
}

// View renders the mode/board selection.
func (m ChomperMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inBoardSelect {
		return m.viewBoardSelect()
	}
	return m.viewModeSelect()
}

func (m ChomperMenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C H O M P E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select play mode:", m.width))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, mode.Title(), modeHint(mode))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m ChomperMenuModel) viewBoardSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT BOARD", m.width))
	b.WriteString("\n\n")

	for i, board := range m.boards {
		cursor := "  "
		if i == m.boardCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s (%dx%d)", cursor, board.Title, len(board.Rows[0]), len(board.Rows))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ChomperMenuModel) Selected() *ChomperSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ChomperMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back on the first phase.
func (m ChomperMenuModel) WantsBack() bool {
	return m.back
}

// RunChomperSelector runs the mode/board selection and returns the
// selection, or nil when the user backed out or quit.
func RunChomperSelector(cfg core.RuntimeConfig, boardDir string) (*ChomperSelection, error) {
	model := NewChomperMenuModel(cfg.ScreenW, cfg.ScreenH, boardDir)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ChomperMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
