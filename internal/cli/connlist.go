package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/sshcm/internal/model"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type connItem struct {
	settings model.Settings
}

func (i connItem) Title() string {
	return fmt.Sprintf("%d. %s", i.settings.ID, i.settings.Nickname)
}

func (i connItem) Description() string {
	desc := fmt.Sprintf("%s@%s", i.settings.User, i.settings.Host)

	if i.settings.Description != "" {
		desc = fmt.Sprintf("%s | %s", desc, i.settings.Description)
	}

	return desc
}

func (i connItem) FilterValue() string {
	return i.settings.Nickname + " " + i.settings.Host
}

// ConnListModel is the interactive connection picker used when
// connect or list run without an argument on a terminal.
type ConnListModel struct {
	list     list.Model
	selected *model.Settings
	quitting bool
}

func (m ConnListModel) Init() tea.Cmd {
	return nil
}

func (m ConnListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(connItem); ok {
				s := i.settings
				m.selected = &s
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ConnListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Selected returns the connection chosen with enter, or nil when the
// picker was dismissed.
func (m ConnListModel) Selected() *model.Settings {
	return m.selected
}

// NewConnList builds the picker over already-resolved connections.
func NewConnList(title string, settings []model.Settings) ConnListModel {
	items := make([]list.Item, len(settings))
	for i, s := range settings {
		items[i] = connItem{settings: s}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return ConnListModel{list: l}
}
