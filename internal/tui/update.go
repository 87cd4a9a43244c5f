package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgalindo/wpeek/internal/tui/commands"
	"github.com/mgalindo/wpeek/internal/wp"
)

const statusDuration = 4 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.viewportHeight()
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.TypesLoadedMsg:
		return m.handleTypesLoaded(msg)

	case commands.PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case commands.ItemLoadedMsg:
		m.detail.Resolve(msg.Token, msg.Item, msg.Err)
		if m.detail.phase == DetailFailed {
			LogDetail("fetch_failed", m.detail.item.ID, msg.Err)
		}
		m.onDetailResolved()
		return m, nil

	case commands.SettingsSavedMsg:
		if msg.Err != nil {
			return m.setStatus(fmt.Sprintf("Could not save settings: %v", msg.Err))
		}
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err))

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.mode == ModeSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.mode == ModeSetup {
		var cmd tea.Cmd
		m.setup, cmd = m.setup.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleTypesLoaded(msg commands.TypesLoadedMsg) (tea.Model, tea.Cmd) {
	m.types = msg.Types
	m.typesErr = msg.Err
	LogTypesLoaded(len(msg.Types), msg.Err)

	if !m.hasType(m.activeType) {
		m.activeType = ""
		if len(m.types) > 0 {
			m.activeType = m.types[0].Name
		}
	}
	if m.activeType == "" {
		return m.setStatus("No browsable content types found")
	}

	var cmds []tea.Cmd
	if msg.Err != nil {
		m.statusMsg = "Type discovery failed, using defaults: " + friendlyErr(msg.Err)
		m.statusTime = time.Now().Add(statusDuration)
		cmds = append(cmds, commands.ClearStatusAfter(statusDuration))
	}
	cmds = append(cmds, commands.ResetAndLoad(m.loader, m.activeType))
	return m, tea.Batch(cmds...)
}

func (m Model) handlePageLoaded(msg commands.PageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		LogPageLoad(msg.ContentType, 0, msg.Err)
		return m.setStatus(friendlyErr(msg.Err) + " (m to retry)")
	}
	if msg.Outcome == nil {
		// Dropped: another load was already in flight.
		return m, nil
	}

	LogPageLoad(msg.ContentType, msg.Outcome.Added, nil)
	m.trigger.Rearm()
	m.refreshContent()
	return m, nil
}

// setStatus shows a transient status line message.
func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusMsg = text
	m.statusTime = time.Now().Add(statusDuration)
	return m, commands.ClearStatusAfter(statusDuration)
}

func (m Model) hasType(name string) bool {
	for _, t := range m.types {
		if t.Name == name {
			return true
		}
	}
	return false
}

func (m Model) loadTypesCmd() tea.Cmd {
	return commands.LoadContentTypes(m.client)
}

// friendlyErr maps client error kinds to short status-line messages.
func friendlyErr(err error) string {
	switch {
	case wp.IsKind(err, wp.ErrUnreachable):
		return "Site unreachable. Check your connection and the API URL."
	case wp.IsKind(err, wp.ErrHTTP):
		return fmt.Sprintf("The API returned an error: %v", err)
	case wp.IsKind(err, wp.ErrUnexpectedFormat):
		return "The API response was not in the expected format."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
