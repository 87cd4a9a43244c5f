package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/feed"
	"github.com/mgalindo/wpeek/internal/settings"
	"github.com/mgalindo/wpeek/internal/tui/view"
	"github.com/mgalindo/wpeek/internal/wp"
)

const footerHeight = 2

// visibleItems returns the filtered items currently shown, in display order.
func (m Model) visibleItems() []wp.ContentItem {
	if m.loader == nil {
		return nil
	}
	return displayOrder(m.loader.Visible(), m.prefs.SortDescending)
}

// displayOrder reverses the loaded sequence when sorting ascending, so the
// feed always presents the latest-fetched page first. The cursor and detail
// lookups index into this same order.
func displayOrder(items []wp.ContentItem, sortDescending bool) []wp.ContentItem {
	if sortDescending || len(items) < 2 {
		return items
	}
	out := make([]wp.ContentItem, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}

func (m Model) snapshot() feed.State {
	if m.loader == nil {
		return feed.State{}
	}
	return m.loader.Snapshot()
}

// refreshContent re-renders the item list into the viewport and keeps the
// cursor inside the visible set.
func (m *Model) refreshContent() {
	if !m.ready || m.loader == nil {
		return
	}
	items := m.visibleItems()
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.viewport.Height = m.viewportHeight()
	m.viewport.Width = m.width
	m.viewport.SetContent(m.bodyContent(items))
	m.ensureCursorVisible(items)
}

func (m Model) bodyContent(items []wp.ContentItem) string {
	if len(items) == 0 {
		if m.snapshot().IsLoading {
			return m.styles.StatusStyle.Render("Loading content...")
		}
		return m.styles.StatusStyle.Render("No content to show.")
	}

	st := m.itemStyles()
	switch m.prefs.MainViewMode {
	case settings.ViewGrid:
		return view.RenderGrid(items, view.GridOptions{
			Width:      m.width,
			Size:       m.prefs.ItemSize,
			Cursor:     m.cursor,
			ShowImages: m.prefs.ShowFeaturedImages,
			Styles:     st,
		})
	case settings.ViewCarousel:
		return view.RenderCarousel(items, view.CarouselOptions{
			Width:      m.width,
			Size:       m.prefs.ItemSize,
			Cursor:     m.cursor,
			ShowImages: m.prefs.ShowFeaturedImages,
			Styles:     st,
			Indicator:  m.styles.IndicatorStyle,
			Active:     m.styles.IndicatorActiveStyle,
		})
	default:
		return view.RenderFeed(items, view.FeedOptions{
			Width:      m.width,
			Size:       m.prefs.ItemSize,
			Cursor:     m.cursor,
			ShowImages: m.prefs.ShowFeaturedImages,
			Styles:     st,
		})
	}
}

func (m Model) itemStyles() view.ItemStyles {
	return view.ItemStyles{
		Title:         m.styles.ItemTitleStyle,
		TitleSelected: m.styles.ItemSelectedStyle,
		Date:          m.styles.ItemDateStyle,
		Excerpt:       m.styles.ItemExcerptStyle,
		TypeBadge:     m.styles.TypeBadgeStyle,
		Category:      m.styles.CategoryStyle,
		Tag:           m.styles.TagStyle,
		Sticky:        m.styles.StickyStyle,
		Protected:     m.styles.ProtectedStyle,
		Field:         m.styles.FieldStyle,
		Card:          m.styles.CardStyle,
		CardSelected:  m.styles.CardSelectedStyle,
	}
}

func (m Model) detailStyles() view.DetailStyles {
	return view.DetailStyles{
		Title:       m.styles.OverlayTitleStyle,
		Body:        m.styles.OverlayBodyStyle,
		MetaKey:     m.styles.MetaKeyStyle,
		MetaValue:   m.styles.MetaValueStyle,
		BlockHeader: m.styles.BlockHeaderStyle,
		Muted:       m.styles.OverlayMutedStyle,
		Warning:     m.styles.ProtectedStyle,
	}
}

func (m Model) viewportHeight() int {
	h := m.height - m.headerHeight() - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) headerHeight() int {
	return lipgloss.Height(m.renderHeader())
}

// gridColumns returns the column count for the current width and item size.
func (m Model) gridColumns() int {
	return view.GridColumns(m.width, m.prefs.ItemSize)
}

// moveCursor shifts the cursor by delta items, clamped to the visible set,
// and reports whether it landed on the last item.
func (m *Model) moveCursor(delta int) bool {
	items := m.visibleItems()
	if len(items) == 0 {
		return false
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	m.refreshContent()
	return m.cursor == len(items)-1
}

// cursorBounds returns the first and last content line of the cursor's card
// in the rendered body.
func (m Model) cursorBounds(items []wp.ContentItem) (int, int) {
	if len(items) == 0 || m.cursor < 0 {
		return 0, 0
	}
	st := m.itemStyles()

	switch m.prefs.MainViewMode {
	case settings.ViewCarousel:
		return 0, 0
	case settings.ViewGrid:
		cols := m.gridColumns()
		cardWidth := m.width / cols
		row := m.cursor / cols
		top := 0
		for r := 0; r < row; r++ {
			top += m.gridRowHeight(items, r, cols, cardWidth, st)
		}
		return top, top + m.gridRowHeight(items, row, cols, cardWidth, st) - 1
	default:
		top := 0
		for i := 0; i < m.cursor && i < len(items); i++ {
			top += lipgloss.Height(view.RenderItem(items[i], m.itemOptions(m.width, false)))
		}
		h := lipgloss.Height(view.RenderItem(items[m.cursor], m.itemOptions(m.width, true)))
		return top, top + h - 1
	}
}

func (m Model) itemOptions(width int, selected bool) view.ItemOptions {
	return view.ItemOptions{
		Width:      width,
		Size:       m.prefs.ItemSize,
		Selected:   selected,
		ShowImages: m.prefs.ShowFeaturedImages,
		Styles:     m.itemStyles(),
	}
}

func (m Model) gridRowHeight(items []wp.ContentItem, row, cols, cardWidth int, st view.ItemStyles) int {
	max := 0
	for i := row * cols; i < (row+1)*cols && i < len(items); i++ {
		h := lipgloss.Height(view.RenderItem(items[i], m.itemOptions(cardWidth, i == m.cursor)))
		if h > max {
			max = h
		}
	}
	return max
}

// ensureCursorVisible scrolls the viewport so the cursor's card is on screen.
func (m *Model) ensureCursorVisible(items []wp.ContentItem) {
	if len(items) == 0 {
		m.viewport.SetYOffset(0)
		return
	}
	top, bottom := m.cursorBounds(items)
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

// sourceLabel names the active source for the header.
func (m Model) sourceLabel() string {
	if m.client == nil {
		return ""
	}
	src := m.client.Source()
	return src.Label
}

// categoryLabel resolves the active category filter id to a display name.
func (m Model) categoryLabel() string {
	s := m.snapshot()
	return termLabel(s.ActiveCategory, s.Categories)
}

// tagLabel resolves the active tag filter id to a display name.
func (m Model) tagLabel() string {
	s := m.snapshot()
	return termLabel(s.ActiveTag, s.Tags)
}

func termLabel(id string, terms []wp.Term) string {
	if id == "" || id == feed.FilterAll {
		return ""
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return id
	}
	for _, t := range terms {
		if t.ID == n {
			return t.Name
		}
	}
	return id
}

// cycleTerm returns the filter id after the current one, wrapping through
// "all" at the end of the list.
func cycleTerm(current string, terms []wp.Term) string {
	if len(terms) == 0 {
		return feed.FilterAll
	}
	if current == "" || current == feed.FilterAll {
		return strconv.FormatInt(terms[0].ID, 10)
	}
	for i, t := range terms {
		if strconv.FormatInt(t.ID, 10) == current {
			if i+1 < len(terms) {
				return strconv.FormatInt(terms[i+1].ID, 10)
			}
			return feed.FilterAll
		}
	}
	return feed.FilterAll
}

func cycleMode(current string, modes []string) string {
	for i, mode := range modes {
		if mode == current {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
