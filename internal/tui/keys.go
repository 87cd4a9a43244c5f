package tui

import (
	"strconv"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgalindo/wpeek/internal/settings"
	"github.com/mgalindo/wpeek/internal/tui/commands"
	"github.com/mgalindo/wpeek/internal/wp"
)

var mainViewModes = []string{settings.ViewFeed, settings.ViewGrid, settings.ViewCarousel}
var contentViewModes = []string{settings.ContentPage, settings.ContentGrid, settings.ContentCarousel}
var itemSizes = []string{settings.SizeSmall, settings.SizeMedium, settings.SizeLarge}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeSetup:
		return m.handleSetupKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeDetail:
		return m.handleDetailKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys while browsing the feed.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		return m.navigate(m.stepDown())
	case "k", "up":
		return m.navigate(-m.stepDown())
	case "h", "left":
		if m.prefs.MainViewMode == settings.ViewFeed {
			return m, nil
		}
		return m.navigate(-1)
	case "l", "right":
		if m.prefs.MainViewMode == settings.ViewFeed {
			return m, nil
		}
		return m.navigate(1)
	case "g", "home":
		m.cursor = 0
		m.refreshContent()
		return m, nil
	case "G", "end":
		if items := m.visibleItems(); len(items) > 0 {
			m.cursor = len(items) - 1
		}
		m.refreshContent()
		return m, m.maybeLoadMore()
	case "pgdown", "ctrl+d":
		return m.navigate(m.stepDown() * 3)
	case "pgup", "ctrl+u":
		return m.navigate(-m.stepDown() * 3)

	// Content types
	case "tab":
		return m.switchType(1)
	case "shift+tab":
		return m.switchType(-1)

	// View options
	case "v":
		m.prefs.MainViewMode = cycleMode(m.prefs.MainViewMode, mainViewModes)
		m.refreshContent()
		return m, m.savePrefs()
	case "z":
		m.prefs.ItemSize = cycleMode(m.prefs.ItemSize, itemSizes)
		m.refreshContent()
		return m, m.savePrefs()
	case "b":
		m.prefs.ContentViewMode = cycleMode(m.prefs.ContentViewMode, contentViewModes)
		return m, m.savePrefs()
	case "f":
		m.prefs.ShowFeaturedImages = !m.prefs.ShowFeaturedImages
		m.refreshContent()
		return m, m.savePrefs()
	case "a":
		m.prefs.LoadMoreEnabled = !m.prefs.LoadMoreEnabled
		label := "Auto-load off"
		if m.prefs.LoadMoreEnabled {
			label = "Auto-load on"
		}
		return m, tea.Batch(m.savePrefs(), commands.Status(label))

	// Sort and page size
	case "s":
		m.prefs.SortDescending = !m.prefs.SortDescending
		m.loader.SetSortDescending(m.prefs.SortDescending)
		m.cursor = 0
		return m, tea.Batch(m.savePrefs(), commands.ResetAndLoad(m.loader, m.activeType))
	case "+", "=":
		return m.adjustPageSize(1)
	case "-":
		return m.adjustPageSize(-1)

	// Filters
	case "c":
		m.loader.SetActiveCategory(cycleTerm(m.snapshot().ActiveCategory, m.snapshot().Categories))
		m.cursor = 0
		m.refreshContent()
		return m, nil
	case "t":
		m.loader.SetActiveTag(cycleTerm(m.snapshot().ActiveTag, m.snapshot().Tags))
		m.cursor = 0
		m.refreshContent()
		return m, nil
	case "x":
		m.loader.SetActiveCategory("")
		m.loader.SetActiveTag("")
		m.cursor = 0
		m.refreshContent()
		return m, nil

	// Search
	case "/":
		m.mode = ModeSearch
		m.search.SetValue(m.snapshot().Search)
		m.search.Focus()
		return m, nil

	// Source switching
	case "S":
		return m.switchSource()

	// Loading
	case "m", " ":
		return m, commands.LoadNextPage(m.loader)
	case "r":
		m.cursor = 0
		return m, commands.ResetAndLoad(m.loader, m.activeType)

	// Detail
	case "enter":
		return m.openDetail()
	}

	return m, nil
}

// stepDown is the cursor delta for a vertical move in the current view.
func (m Model) stepDown() int {
	if m.prefs.MainViewMode == settings.ViewGrid {
		return m.gridColumns()
	}
	return 1
}

// navigate moves the cursor and fires the infinite-scroll trigger when the
// movement lands near the bottom.
func (m Model) navigate(delta int) (tea.Model, tea.Cmd) {
	atEnd := m.moveCursor(delta)

	if m.prefs.MainViewMode == settings.ViewCarousel {
		// The carousel pages explicitly: advancing past the last loaded
		// item requests the next page.
		s := m.snapshot()
		if atEnd && delta > 0 && s.HasMore && !s.IsLoading {
			return m, commands.LoadNextPage(m.loader)
		}
		return m, nil
	}

	return m, m.maybeLoadMore()
}

// maybeLoadMore checks the scroll position against the trigger.
func (m *Model) maybeLoadMore() tea.Cmd {
	s := m.snapshot()
	total := m.viewport.TotalLineCount()
	if m.viewport.YOffset+m.viewport.Height < total-scrollThreshold {
		m.trigger.Rearm()
	}
	if m.trigger.ShouldLoad(m.viewport.YOffset, total, m.viewport.Height, s.IsLoading, s.HasMore, m.prefs) {
		LogScrollTrigger(m.viewport.YOffset, total)
		return commands.LoadNextPage(m.loader)
	}
	return nil
}

// switchType steps to the adjacent content type and reloads the feed.
func (m Model) switchType(dir int) (tea.Model, tea.Cmd) {
	if len(m.types) == 0 {
		return m, nil
	}
	idx := 0
	for i, t := range m.types {
		if t.Name == m.activeType {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(m.types)) % len(m.types)
	m.activeType = m.types[idx].Name
	m.cursor = 0
	LogTypeSwitch(m.activeType)
	return m, commands.ResetAndLoad(m.loader, m.activeType)
}

// switchSource steps to the next selectable source. The custom entry is
// skipped when no custom URL is configured.
func (m Model) switchSource() (tea.Model, tea.Cmd) {
	sources := m.registry.Sources()
	idx := 0
	current := m.client.Source().ID
	for i, s := range sources {
		if s.ID == current {
			idx = i
			break
		}
	}
	for range sources {
		idx = (idx + 1) % len(sources)
		if sources[idx].BaseURL != "" {
			break
		}
	}
	next := sources[idx]
	if next.ID == current {
		return m, nil
	}

	m.prefs.APISource = next.ID
	m.setClient(next)
	m.refreshContent()
	LogSourceSwitch(next.ID)
	return m, tea.Batch(
		m.savePrefs(),
		commands.Status("Source: "+next.Label),
		m.loadTypesCmd(),
	)
}

func (m Model) adjustPageSize(delta int) (tea.Model, tea.Cmd) {
	m.prefs.ItemsPerPage = wp.ClampPerPage(m.prefs.ItemsPerPage + delta)
	m.loader.SetPageSize(m.prefs.ItemsPerPage)
	return m, tea.Batch(m.savePrefs(), commands.Status("Items per page: "+strconv.Itoa(m.prefs.ItemsPerPage)))
}

func (m Model) savePrefs() tea.Cmd {
	return commands.SaveSettings(m.store, m.prefs.Normalize())
}

// openDetail opens the overlay for the item under the cursor. Media items
// already carry their full record, so no fetch is issued for them.
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	items := m.visibleItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return m, nil
	}
	item := items[m.cursor]
	needsFetch := !isMediaType(item.Type)

	token := m.detail.Open(item, m.prefs.ContentViewMode, needsFetch)
	m.mode = ModeDetail
	m.overlay.SetActive(true)
	m.setupDetailViewport()
	LogDetail("open", item.ID, nil)

	if !needsFetch {
		return m, nil
	}
	return m, commands.FetchItem(m.client, m.activeType, item.ID, token)
}

// handleDetailKeys handles keys while the detail overlay is open.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.detail.Close()
		m.overlay.SetActive(false)
		m.mode = ModeNormal
		LogDetail("close", m.detail.item.ID, nil)
		return m, nil

	case "j", "down":
		m.detailVP.LineDown(1)
		return m, nil
	case "k", "up":
		m.detailVP.LineUp(1)
		return m, nil
	case "pgdown", "ctrl+d":
		m.detailVP.HalfViewDown()
		return m, nil
	case "pgup", "ctrl+u":
		m.detailVP.HalfViewUp()
		return m, nil
	case "g", "home":
		m.detailVP.GotoTop()
		return m, nil
	case "G", "end":
		m.detailVP.GotoBottom()
		return m, nil

	case "b":
		m.detail.contentMode = cycleMode(m.detail.contentMode, contentViewModes)
		m.detail.blockCursor = 0
		m.refreshDetail()
		return m, nil
	case "h", "left":
		if m.detail.contentMode == settings.ContentCarousel && m.detail.blockCursor > 0 {
			m.detail.blockCursor--
			m.refreshDetail()
		}
		return m, nil
	case "l", "right":
		if m.detail.contentMode == settings.ContentCarousel && m.detail.blockCursor < m.detail.blockCount()-1 {
			m.detail.blockCursor++
			m.refreshDetail()
		}
		return m, nil

	case "c":
		if link := m.detail.item.Link; link != "" {
			if err := clipboard.WriteAll(link); err != nil {
				return m.setStatus("Could not copy link")
			}
			return m.setStatus("Link copied")
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKeys handles keys while typing a search term.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.search.Blur()
		return m, nil
	case "enter":
		term := m.search.Value()
		m.mode = ModeNormal
		m.search.Blur()
		m.loader.SetSearch(term)
		m.cursor = 0
		return m, commands.ResetAndLoad(m.loader, m.activeType)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleSetupKeys handles keys in the first-run URL prompt.
func (m Model) handleSetupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		updated, err := m.applySetupURL(m.setup.Value())
		if err != nil {
			return updated.setStatus(err.Error())
		}
		return updated, tea.Batch(updated.spinner.Tick, updated.loadTypesCmd())
	}

	var cmd tea.Cmd
	m.setup, cmd = m.setup.Update(msg)
	return m, cmd
}

func isMediaType(name string) bool {
	return name == "attachment" || name == "media"
}
