package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/storage"
)

// MenuItem represents a selectable difficulty in the start menu.
type MenuItem struct {
	Preset config.DifficultyPreset
	Title  string
	Detail string
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "s")),
		Select:     key.NewBinding(key.WithKeys("enter", " ")),
		Scoreboard: key.NewBinding(key.WithKeys("tab")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	best           int
	keys           MenuKeyMap
	quitting       bool
	selected       *MenuItem // Set when user picks a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// MenuItems describes every preset applied on top of base.
func MenuItems(base config.GameConfig) []MenuItem {
	presets := []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard}
	items := make([]MenuItem, 0, len(presets))
	for _, p := range presets {
		cfg := base
		config.ApplyPreset(&cfg, p)
		items = append(items, MenuItem{
			Preset: p,
			Title:  strings.ToUpper(string(p[:1])) + string(p[1:]),
			Detail: fmt.Sprintf("%d lives, %ds on level 1", cfg.Progression.Lives, cfg.Progression.LevelTime),
		})
	}
	return items
}

// NewMenuModel creates a new menu model. The cursor starts on Normal.
func NewMenuModel(store *storage.Store, base config.GameConfig, width, height int) MenuModel {
	m := MenuModel{
		items:  MenuItems(base),
		cursor: 1,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  P I G G Y   H O P  "), m.width))
	b.WriteString("\n\n")

	subtitle := "Choose a difficulty"
	if m.best > 0 {
		subtitle = fmt.Sprintf("Choose a difficulty  (best: %d coins)", m.best)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-7s %s", item.Title, dimStyle.Render(item.Detail))
		if i == m.cursor {
			line = cursorStyle.Render("> "+fmt.Sprintf("%-7s", item.Title)) + " " + dimStyle.Render(item.Detail)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	WantsScoreboard bool
	Quit            bool
}

// ResultOf converts a finished menu model into a MenuResult.
func ResultOf(m MenuModel) MenuResult {
	switch {
	case m.WantsScoreboard():
		return MenuResult{WantsScoreboard: true}
	case m.IsQuitting(), m.Selected() == nil:
		return MenuResult{Quit: true}
	default:
		return MenuResult{Preset: m.Selected().Preset}
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, base config.GameConfig, width, height int) (MenuResult, error) {
	model := NewMenuModel(store, base, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return ResultOf(m), nil
}
