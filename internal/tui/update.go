package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"helpdock/internal/content"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := bodyHeight(m.height)
		m.home.SetSize(m.width, h)
		m.drawer.SetSize(min(m.width, 40), h)
		m.query.Width = max(10, m.width-4)
		m.help.Width = m.width
		m.relayout()
		if m.pending >= 0 && m.screen == screenPage {
			i := m.pending
			m.pending = -1
			return m, m.scrollToSection(i)
		}
		return m, nil

	case scrollFrameMsg:
		return m, m.stepScroll(msg)

	case contentReloadedMsg:
		m.reload(msg)
		return m, watchContent(m.watcher, m.cfg.ContentDir)

	case watchErrMsg:
		m.log.Error("content watcher", "error", msg.err)
		m.setError(msg.err)
		return m, watchContent(m.watcher, m.cfg.ContentDir)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.screen == screenHome {
			return m.updateHome(msg)
		}
		if m.drawerOpen {
			return m.updateDrawer(msg)
		}
		return m.updatePage(msg)
	}

	// Cursor blinks and other input internals.
	if m.searching {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}
	if m.screen == screenHome {
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter box is open every key belongs to the list.
	if m.home.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Search):
		return m, m.openSearch()
	case key.Matches(msg, m.keys.Open):
		it, ok := m.home.SelectedItem().(cardItem)
		if !ok {
			return m, nil
		}
		if it.slug == "" {
			m.setStatus(it.card.Title + " is coming soon")
			return m, nil
		}
		if err := m.openPage(it.slug); err != nil {
			m.setError(err)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.home, cmd = m.home.Update(msg)
	return m, cmd
}

func (m Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Search):
		return m, m.openSearch()
	case key.Matches(msg, m.keys.Back):
		m.goHome()
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.vp.Height)
	case key.Matches(msg, m.keys.Top):
		m.cancelScroll()
		m.setOffset(0)
	case key.Matches(msg, m.keys.Bottom):
		m.cancelScroll()
		m.setOffset(len(m.layout.lines))
	case key.Matches(msg, m.keys.Section):
		return m, m.scrollToSection(int(msg.String()[0]-'1'))
	case key.Matches(msg, m.keys.NextItem):
		if m.focus < 0 {
			m.setFocus(m.firstFocus())
		} else {
			m.setFocus(m.focus + 1)
		}
	case key.Matches(msg, m.keys.PrevItem):
		if m.focus < 0 {
			m.setFocus(m.firstFocus() - 1)
		} else {
			m.setFocus(m.focus - 1)
		}
	case key.Matches(msg, m.keys.Open):
		m.openFocused()
	case key.Matches(msg, m.keys.Copy):
		m.copyLink()
	case key.Matches(msg, m.keys.Menu):
		if !m.narrow() {
			m.setStatus("topics are in the sidebar")
			break
		}
		m.openDrawer()
	}
	return m, nil
}

// firstFocus is where tab starts when no card is focused: the first card of
// the active section.
func (m Model) firstFocus() int {
	if n := firstItemIn(m.page, m.active); n >= 0 {
		return n
	}
	return 0
}

func (m *Model) openDrawer() {
	m.drawer.SetItems(drawerItems(m.page, m.active))
	m.drawer.Select(max(0, m.active))
	m.drawerOpen = true
}

func (m Model) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Menu):
		m.drawerOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Open):
		it, ok := m.drawer.SelectedItem().(categoryItem)
		m.drawerOpen = false
		if !ok {
			return m, nil
		}
		return m, m.scrollToSection(it.index)
	}
	var cmd tea.Cmd
	m.drawer, cmd = m.drawer.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenPage || m.searching || m.drawerOpen {
		if m.screen == screenHome {
			var cmd tea.Cmd
			m.home, cmd = m.home.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-m.vp.MouseWheelDelta)
	case tea.MouseButtonWheelDown:
		m.scrollBy(m.vp.MouseWheelDelta)
	case tea.MouseButtonLeft:
		if m.narrow() || msg.X >= sidebarWidth {
			return m, nil
		}
		i := msg.Y - headerHeight - sidebarEntryTop
		if i >= 0 && i < len(m.page.Categories) {
			return m, m.scrollToSection(i)
		}
	}
	return m, nil
}

// copyLink puts the absolute URL of the focused card, or of the page, on the
// clipboard.
func (m *Model) copyLink() {
	url := strings.TrimRight(m.cfg.BaseURL, "/") + content.Href(m.focusedLink())
	if err := m.copy(url); err != nil {
		m.log.Warn("copy link", "url", url, "error", err)
		m.setError(err)
		return
	}
	m.setStatus("copied " + url)
}
