// Package tui renders the riddle board in a terminal, locally or over SSH.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"riddlegrid/internal/deck"
	"riddlegrid/internal/puzzle"
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeWrong
	noticeNear
	noticeSolved
	noticeAlreadySolved
)

// Model is the bubbletea model for one mounted board.
type Model struct {
	deck   deck.Deck
	screen *puzzle.Screen
	keys   KeyMap
	help   help.Model
	input  textinput.Model
	bar    progress.Model

	cursor   int
	notice   noticeKind
	width    int
	height   int
	quitting bool
}

// NewModel mounts a board over d. onComplete runs when the player confirms
// the completion screen.
func NewModel(d deck.Deck, onComplete func()) (Model, error) {
	screen, err := puzzle.NewScreen(d.Riddles, onComplete)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Placeholder = "Your answer"
	input.CharLimit = 64
	input.Width = 3*(tileW+2) - 8

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 3*(tileW+2) - 8

	return Model{
		deck:   d,
		screen: screen,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  input,
		bar:    bar,
		width:  80,
		height: 24,
	}, nil
}

// Screen exposes the board state.
func (m Model) Screen() *puzzle.Screen {
	return m.screen
}

// Cursor returns the highlighted tile.
func (m Model) Cursor() int {
	return m.cursor
}

// HandedOff reports whether the completion callback has run.
func (m Model) HandedOff() bool {
	return m.screen.Confirmed()
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen.State().Phase {
		case puzzle.PhaseDialogOpen:
			return m.updateDialog(msg)
		case puzzle.PhaseComplete:
			return m.updateComplete(msg)
		default:
			return m.updateBoard(msg)
		}
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, col := m.screen.Grid().Position(m.cursor)
	size := m.screen.Grid().Size

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		row = max(row-1, 0)
	case key.Matches(msg, m.keys.Down):
		row = min(row+1, size-1)
	case key.Matches(msg, m.keys.Left):
		col = max(col-1, 0)
	case key.Matches(msg, m.keys.Right):
		col = min(col+1, size-1)
	case key.Matches(msg, m.keys.Open):
		opened, err := m.screen.SelectTile(m.cursor)
		if err != nil {
			return m, nil
		}
		if !opened {
			m.notice = noticeAlreadySolved
			return m, nil
		}
		m.notice = noticeNone
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd
	default:
		return m, nil
	}
	m.cursor = row*size + col
	m.notice = noticeNone
	return m, nil
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.screen.State()
	switch {
	case key.Matches(msg, m.keys.Close):
		m.screen.CloseDialog()
		m.input.Blur()
		m.input.Reset()
		m.notice = noticeNone
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		verdict, err := m.screen.SubmitAnswer(state.Tile, m.input.Value())
		if err != nil {
			return m, nil
		}
		switch {
		case verdict.Correct:
			m.input.Blur()
			m.input.Reset()
			m.notice = noticeSolved
			m.cursor = m.nextLocked(state.Tile)
		case verdict.Near:
			m.notice = noticeNear
		default:
			m.notice = noticeWrong
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Continue):
		if _, err := m.screen.Confirm(); err != nil {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// nextLocked returns the first unsolved tile after from, or from itself.
func (m Model) nextLocked(from int) int {
	n := m.screen.Progress().Total
	for step := 1; step < n; step++ {
		i := (from + step) % n
		if !m.screen.IsSolved(i) {
			return i
		}
	}
	return from
}

// View renders the board.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render(m.deck.Title))
	if m.deck.Subtitle != "" {
		sections = append(sections, subtitleStyle.Render(m.deck.Subtitle))
	}
	sections = append(sections, "", m.viewProgress(), "")

	var keys help.KeyMap = boardHelp{m.keys}
	switch m.screen.State().Phase {
	case puzzle.PhaseComplete:
		sections = append(sections, m.viewComplete())
		keys = completeHelp{m.keys}
	case puzzle.PhaseDialogOpen:
		sections = append(sections, m.viewGrid(), m.viewDialog())
		keys = dialogHelp{m.keys}
	default:
		sections = append(sections, m.viewGrid())
		if line := m.viewNotice(); line != "" {
			sections = append(sections, line)
		}
	}
	sections = append(sections, "", m.help.View(keys))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewProgress() string {
	p := m.screen.Progress()
	return fmt.Sprintf("%s  %s", m.bar.ViewAs(p.Fraction()), p.Label())
}

func (m Model) viewGrid() string {
	tiles := m.screen.Tiles()
	size := m.screen.Grid().Size
	rows := lo.Chunk(tiles, size)
	return lipgloss.JoinVertical(lipgloss.Left, lo.Map(rows, func(row []puzzle.Tile, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, lo.Map(row, func(t puzzle.Tile, _ int) string {
			return m.viewTile(t)
		})...)
	})...)
}

func (m Model) viewTile(t puzzle.Tile) string {
	if t.Solved {
		content := "✓"
		if len(m.deck.Art) > 0 {
			content = strings.Join(m.screen.Grid().SliceLines(m.deck.Art, t.Index), "\n")
		}
		return m.withCursor(solvedTileStyle, t).Render(content)
	}
	label := fmt.Sprintf("?\n%d", t.Index+1)
	return m.withCursor(lockedTileStyle, t).Render(label)
}

func (m Model) withCursor(s lipgloss.Style, t puzzle.Tile) lipgloss.Style {
	switch {
	case t.Open:
		return s.BorderForeground(openBorder)
	case t.Index == m.cursor && m.screen.State().Phase == puzzle.PhaseIdle:
		return s.BorderForeground(cursorBorder)
	}
	return s
}

func (m Model) viewDialog() string {
	d, ok := m.screen.Dialog()
	if !ok {
		return ""
	}
	title := fmt.Sprintf("Riddle %d", d.Index+1)
	style := dialogStyle
	if m.screen.Tiles()[d.Index].Final {
		title += " · the last one!"
		style = finalDialogStyle
	}
	lines := []string{titleStyle.Render(title), "", d.Riddle.Prompt, "", m.input.View()}
	if line := m.viewNotice(); line != "" {
		lines = append(lines, "", line)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) viewNotice() string {
	switch m.notice {
	case noticeWrong:
		return noticeStyle.Render("Not quite. Try again!")
	case noticeNear:
		return nearStyle.Render("So close! Check your spelling.")
	case noticeSolved:
		return goodStyle.Render("Solved! A piece of the map is revealed.")
	case noticeAlreadySolved:
		return subtitleStyle.Render("That tile is already revealed.")
	}
	return ""
}

func (m Model) viewComplete() string {
	lines := []string{"🏆", titleStyle.Render(m.deck.CompleteTitle)}
	if m.deck.CompleteMessage != "" {
		lines = append(lines, "", m.deck.CompleteMessage)
	}
	if len(m.deck.Art) > 0 {
		lines = append(lines, "", strings.Join(m.deck.Art, "\n"))
	}
	lines = append(lines, "", fmt.Sprintf("[ %s ]", m.deck.ContinueLabel))
	return completeStyle.Render(strings.Join(lines, "\n"))
}
