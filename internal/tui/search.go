package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const maxResults = 8

func (m *Model) openSearch() tea.Cmd {
	m.searching = true
	m.query.SetValue("")
	m.results = nil
	m.resultSel = 0
	return m.query.Focus()
}

func (m *Model) closeSearch() {
	m.searching = false
	m.query.Blur()
}

// updateSearch handles keys while the search box has focus.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeSearch()
		return m, nil
	case "up", "ctrl+p":
		if m.resultSel > 0 {
			m.resultSel--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.resultSel < len(m.results)-1 {
			m.resultSel++
		}
		return m, nil
	case "enter":
		if len(m.results) == 0 {
			m.setStatus("no matches")
			return m, nil
		}
		r := m.results[m.resultSel]
		m.closeSearch()
		if err := m.openPage(r.Slug); err != nil {
			m.setError(err)
			return m, nil
		}
		cmd := m.scrollToSection(r.Category)
		m.setStatus(r.PageTitle + " › " + r.CategoryName + " › " + r.Item.Title)
		return m, cmd
	}
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.results = m.idx.Search(m.query.Value(), maxResults)
	m.resultSel = clamp(m.resultSel, 0, len(m.results)-1)
	return m, cmd
}
