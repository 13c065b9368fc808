package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	h := bodyHeight(m.height)

	var body string
	switch {
	case m.searching:
		body = m.searchView(h)
	case m.help.ShowAll:
		body = lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center,
			boxStyle.Render(m.help.FullHelpView(m.keys.FullHelp())))
	case m.screen == screenHome:
		body = m.home.View()
	case m.drawerOpen:
		body = m.drawer.View()
	case m.narrow():
		body = m.vp.View()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(h), " ", m.vp.View())
	}
	body = lipgloss.NewStyle().Width(m.width).Height(h).MaxHeight(h).Render(body)

	ui := lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.footerView())
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

func (m Model) headerView() string {
	nav := []string{"Home", "Info dock", "Academy"}
	current := "Home"
	if m.screen == screenPage {
		current = "Info dock"
	}
	parts := []string{titleStyle.Render(" helpdock ")}
	for _, n := range nav {
		if n == current {
			parts = append(parts, navActiveStyle.Render(n))
		} else {
			parts = append(parts, navStyle.Render(n))
		}
	}
	return truncate(strings.Join(parts, "  "), m.width)
}

// sidebarView lists the page's categories. The active style follows
// m.active and nothing else.
func (m Model) sidebarView(h int) string {
	inner := sidebarWidth - 4
	lines := []string{titleStyle.Render(truncate(m.page.Title, inner))}
	for i, c := range m.page.Categories {
		if i == m.active {
			lines = append(lines, sidebarActiveStyle.Render(truncate("▌ "+c.Name, inner)))
		} else {
			lines = append(lines, sidebarItemStyle.Render(truncate("  "+c.Name, inner)))
		}
	}
	return boxStyle.Width(sidebarWidth - 2).Height(h - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) searchView(h int) string {
	lines := []string{m.query.View(), ""}
	if strings.TrimSpace(m.query.Value()) != "" && len(m.results) == 0 {
		lines = append(lines, dimStyle.Render("  no matches"))
	}
	for i, r := range m.results {
		if len(lines) >= h {
			break
		}
		row := r.Item.Title + dimStyle.Render("  "+r.PageTitle+" › "+r.CategoryName)
		if i == m.resultSel {
			lines = append(lines, resultSelStyle.Render("▸ ")+truncate(row, m.width-2))
		} else {
			lines = append(lines, "  "+truncate(row, m.width-2))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) footerView() string {
	status := dimStyle.Render(" " + m.status)
	if m.statusErr {
		status = errStyle.Render(" " + m.status)
	}
	help := ""
	if m.helpVisible {
		help = " " + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return truncate(status, m.width) + "\n" + truncate(help, m.width)
}
