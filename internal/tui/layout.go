package tui

import (
	"strings"

	"helpdock/internal/content"
	"helpdock/internal/tracker"
)

// Fixed chrome around the page body. Mouse hit-testing uses the same values
// as View, so change them together.
const (
	headerHeight = 1
	footerHeight = 2
	sidebarWidth = 28
	// sidebarEntryTop is the row of the first sidebar entry inside the body:
	// the box border, then the box title.
	sidebarEntryTop = 2
)

// span is a run of rendered rows.
type span struct {
	start int
	rows  int
}

func (s span) end() int { return s.start + s.rows }

// pageLayout is a page rendered at a fixed width, with the row spans the
// tracker and the card focus need.
type pageLayout struct {
	width    int
	lines    []string
	sections []span
	items    []span // flat, in category order
}

// measure converts the category spans into tracker geometry.
func (l pageLayout) measure(rowHeight int) []tracker.Section {
	out := make([]tracker.Section, len(l.sections))
	for i, s := range l.sections {
		out[i] = tracker.Section{Top: s.start * rowHeight, Height: s.rows * rowHeight}
	}
	return out
}

// content joins the rendered rows for the viewport.
func (l pageLayout) content() string {
	return strings.Join(l.lines, "\n")
}

// renderPage lays out p at width. Cards are numbered in category order and
// focus selects the highlighted one (-1 for none). The result is padded so
// that every section can be scrolled to the top of a viewport of height
// rows.
func renderPage(p content.Page, width, height, focus int) pageLayout {
	if width < 20 {
		width = 20
	}
	l := pageLayout{width: width}
	add := func(block string) span {
		s := span{start: len(l.lines)}
		if block == "" {
			l.lines = append(l.lines, "")
		} else {
			l.lines = append(l.lines, strings.Split(block, "\n")...)
		}
		s.rows = len(l.lines) - s.start
		return s
	}

	add(pageTitleStyle.Render(p.Title))
	if p.Intro != "" {
		add(dimStyle.Width(width).Render(p.Intro))
	}
	add("")

	n := 0
	for ci, c := range p.Categories {
		if ci > 0 {
			add("")
		}
		sec := add(headingStyle.Render(c.Name))
		if len(c.Items) == 0 {
			add(dimStyle.Render("No content available."))
		}
		for _, it := range c.Items {
			l.items = append(l.items, add(renderCard(it, width, n == focus)))
			n++
		}
		sec.rows = len(l.lines) - sec.start
		l.sections = append(l.sections, sec)
	}

	if k := len(l.sections); k > 0 && height > 0 {
		for len(l.lines) < l.sections[k-1].start+height {
			l.lines = append(l.lines, "")
		}
	}
	return l
}

func renderCard(it content.Item, width int, focused bool) string {
	style := cardStyle
	if focused {
		style = cardFocusStyle
	}
	// Width excludes the border.
	inner := width - 2
	body := []string{cardTitleStyle.Render(it.Title)}
	if it.Description != "" {
		body = append(body, it.Description)
	}
	body = append(body, dimStyle.Render(content.Href(it.Link)))
	return style.Width(inner).Render(strings.Join(body, "\n"))
}

// itemAt returns the card with flat index n.
func itemAt(p content.Page, n int) (content.Item, bool) {
	if n < 0 {
		return content.Item{}, false
	}
	for _, c := range p.Categories {
		if n < len(c.Items) {
			return c.Items[n], true
		}
		n -= len(c.Items)
	}
	return content.Item{}, false
}

// firstItemIn returns the flat index of the first card of category ci.
func firstItemIn(p content.Page, ci int) int {
	n := 0
	for i, c := range p.Categories {
		if i == ci {
			if len(c.Items) == 0 {
				return -1
			}
			return n
		}
		n += len(c.Items)
	}
	return -1
}

// bodyHeight is the number of rows between header and footer.
func bodyHeight(h int) int {
	return max(4, h-headerHeight-footerHeight)
}
