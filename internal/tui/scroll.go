package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"helpdock/internal/content"
	"helpdock/internal/tracker"
)

// scrollAnim animates a smooth ScrollCommand. gen increases whenever a new
// command or a manual scroll supersedes the one in flight, so frames from
// an older animation are dropped.
type scrollAnim struct {
	gen     int
	section int // target section, so a relayout can retarget
	from    int
	to      int
	frame   int
	frames  int
}

func (a scrollAnim) running() bool { return a.frames > 0 && a.frame < a.frames }

type scrollFrameMsg struct {
	gen   int
	frame int
}

// openPage switches to the page named by slug and lays it out.
func (m *Model) openPage(slug string) error {
	p, err := m.lib.Page(slug)
	if err != nil {
		return err
	}
	m.page = p
	m.screen = screenPage
	m.focus = -1
	m.pending = -1
	m.drawerOpen = false
	m.cancelScroll()
	m.vp.SetYOffset(0)
	m.relayout()
	m.setStatus(p.Title)
	m.log.Debug("page opened", "slug", p.Slug, "sections", len(m.sections))
	return nil
}

// contentWidth is the width of the scrolling content column.
func (m Model) contentWidth() int {
	if m.narrow() {
		return max(20, m.width)
	}
	return max(20, m.width-sidebarWidth-1)
}

func (m Model) narrow() bool {
	return m.width < m.cfg.NarrowWidth
}

// relayout re-renders the page and remeasures its sections. It runs on every
// size change, focus change and content reload.
func (m *Model) relayout() {
	if m.screen != screenPage || m.width == 0 || m.height == 0 {
		return
	}
	h := bodyHeight(m.height)
	w := m.contentWidth()
	m.layout = renderPage(m.page, w, h, m.focus)
	m.sections = m.layout.measure(m.cfg.RowHeight)
	off := m.vp.YOffset
	m.vp.Width = w
	m.vp.Height = h
	m.vp.SetContent(m.layout.content())
	m.vp.SetYOffset(off)
	if m.anim.running() {
		if i := m.anim.section; i >= 0 && i < len(m.layout.sections) {
			m.anim.to = m.layout.sections[i].start
		} else {
			m.cancelScroll()
		}
	}
	m.syncActive()
}

// cancelScroll drops the animation in flight, if any.
func (m *Model) cancelScroll() {
	m.anim = scrollAnim{gen: m.anim.gen + 1, section: -1}
}

// scrollPos is the viewport offset in layout units.
func (m Model) scrollPos() int {
	return m.vp.YOffset * m.cfg.RowHeight
}

// syncActive recomputes the highlighted section from the scroll position.
func (m *Model) syncActive() {
	m.active = m.tr.Active(m.sections, m.scrollPos())
}

// setOffset moves the viewport to row and resyncs the sidebar.
func (m *Model) setOffset(row int) {
	m.vp.SetYOffset(row)
	m.syncActive()
}

// scrollBy is a manual scroll: it cancels any animation in flight.
func (m *Model) scrollBy(rows int) {
	m.cancelScroll()
	m.setOffset(m.vp.YOffset + rows)
}

// scrollToSection asks the tracker for a command to reach section i and
// applies it.
func (m *Model) scrollToSection(i int) tea.Cmd {
	if m.width == 0 {
		m.pending = i
		return nil
	}
	cmd, err := m.tr.ScrollTo(m.sections, i)
	if err != nil {
		if errors.Is(err, tracker.ErrOutOfRange) {
			m.log.Warn("scroll to missing section", "page", m.page.Slug, "index", i, "error", err)
		}
		m.setError(err)
		return nil
	}
	if i < len(m.page.Categories) {
		m.setStatus(m.page.Categories[i].Name)
	}
	return m.applyScroll(cmd, i)
}

// applyScroll performs a ScrollCommand for section i on the viewport.
func (m *Model) applyScroll(cmd tracker.ScrollCommand, i int) tea.Cmd {
	target := cmd.Offset / m.cfg.RowHeight
	if !cmd.AlignStart {
		// Only move when the target row is out of view.
		if target >= m.vp.YOffset && target < m.vp.YOffset+m.vp.Height {
			return nil
		}
	}
	m.cancelScroll()
	if !cmd.Smooth || m.cfg.ScrollFrames <= 1 || m.cfg.ScrollDuration <= 0 {
		m.setOffset(target)
		return nil
	}
	m.anim = scrollAnim{
		gen:     m.anim.gen,
		section: i,
		from:    m.vp.YOffset,
		to:      target,
		frames:  m.cfg.ScrollFrames,
	}
	return m.nextFrame()
}

func (m Model) nextFrame() tea.Cmd {
	gen, frame := m.anim.gen, m.anim.frame+1
	d := m.cfg.ScrollDuration / time.Duration(m.cfg.ScrollFrames)
	return tea.Tick(d, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen, frame: frame}
	})
}

// stepScroll advances the animation for msg. Stale frames are ignored.
func (m *Model) stepScroll(msg scrollFrameMsg) tea.Cmd {
	if msg.gen != m.anim.gen || m.screen != screenPage {
		return nil
	}
	a := m.anim
	a.frame = clamp(msg.frame, 0, a.frames)
	m.anim = a
	m.setOffset(a.from + (a.to-a.from)*a.frame/a.frames)
	if a.frame < a.frames {
		return m.nextFrame()
	}
	return nil
}

// setFocus highlights card n and brings it into view.
func (m *Model) setFocus(n int) {
	total := m.page.ItemCount()
	if total == 0 {
		m.focus = -1
		return
	}
	m.focus = (n%total + total) % total
	m.relayout()
	if m.focus < len(m.layout.items) {
		s := m.layout.items[m.focus]
		if s.start < m.vp.YOffset || s.end() > m.vp.YOffset+m.vp.Height {
			m.cancelScroll()
			m.setOffset(s.start)
		}
	}
	if it, ok := itemAt(m.page, m.focus); ok {
		m.setStatus(it.Title)
	}
}

// focusedLink is the link of the focused card, or the page itself.
func (m Model) focusedLink() string {
	if it, ok := itemAt(m.page, m.focus); ok {
		return it.Link
	}
	return "/main/" + m.page.Slug
}

// openFocused follows the focused card: pages open in place, anything else
// is shown in the status line.
func (m *Model) openFocused() {
	it, ok := itemAt(m.page, m.focus)
	if !ok {
		return
	}
	if slug, ok := m.lib.Resolve(it.Link); ok {
		if err := m.openPage(slug); err != nil {
			m.setError(err)
		}
		return
	}
	m.setStatus("link: " + content.Href(it.Link))
}

func (m *Model) goHome() {
	m.screen = screenHome
	m.drawerOpen = false
	m.cancelScroll()
	m.setStatus(m.lib.Home.Title)
}
