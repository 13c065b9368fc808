package tui

import (
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"helpdock/internal/config"
	"helpdock/internal/content"
	"helpdock/internal/search"
	"helpdock/internal/tracker"
)

type screen int

const (
	screenHome screen = iota
	screenPage
)

// Options configures New.
type Options struct {
	Config  *config.Config
	Library *content.Library
	Logger  *slog.Logger
	// StartPage opens a page immediately instead of the home grid.
	StartPage string
	// Watcher, when set, reloads the library from Config.ContentDir on
	// change.
	Watcher *fsnotify.Watcher
}

type Model struct {
	width  int
	height int

	cfg config.Config
	log *slog.Logger
	lib *content.Library
	idx *search.Index
	tr  tracker.Tracker

	screen      screen
	helpVisible bool
	status      string
	statusErr   bool

	// Home grid
	home list.Model

	// Current page
	page     content.Page
	layout   pageLayout
	sections []tracker.Section
	vp       viewport.Model
	active   int
	focus    int
	// section to scroll to once the page has been laid out
	pending int

	anim scrollAnim

	// Narrow layout topic drawer
	drawerOpen bool
	drawer     list.Model

	// Search box
	searching bool
	query     textinput.Model
	results   []search.Result
	resultSel int

	keys keyMap
	help help.Model

	watcher *fsnotify.Watcher
	copy    func(string) error
}

func New(opts Options) Model {
	cfg := config.DefaultConfig()
	if opts.Config != nil {
		cfg = opts.Config
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		cfg:         *cfg,
		log:         log,
		lib:         opts.Library,
		idx:         search.NewIndex(opts.Library),
		tr:          tracker.New(cfg.ActivationOffset),
		helpVisible: true,
		status:      "helpdock ready",
		active:      tracker.None,
		focus:       -1,
		pending:     -1,
		keys:        defaultKeyMap(),
		help:        help.New(),
		watcher:     opts.Watcher,
		copy:        clipboard.WriteAll,
	}
	// home list setup
	d := list.NewDefaultDelegate()
	m.home = list.New(homeItems(m.lib), d, 0, 0)
	m.home.Title = m.lib.Home.Title
	m.home.SetShowHelp(false)
	m.home.SetShowStatusBar(false)
	m.home.SetFilteringEnabled(true)
	m.home.DisableQuitKeybindings()
	// "/" belongs to search.
	m.home.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	// drawer setup
	dd := list.NewDefaultDelegate()
	m.drawer = list.New(nil, dd, 0, 0)
	m.drawer.Title = "Topics"
	m.drawer.SetShowHelp(false)
	m.drawer.SetShowStatusBar(false)
	m.drawer.SetFilteringEnabled(false)
	m.drawer.DisableQuitKeybindings()
	// search input setup
	m.query = textinput.New()
	m.query.Placeholder = "Search our help center"
	m.query.Prompt = "/ "
	m.query.CharLimit = 80
	m.vp = viewport.New(0, 0)

	if opts.StartPage != "" {
		if err := m.openPage(opts.StartPage); err != nil {
			m.setError(err)
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return watchContent(m.watcher, m.cfg.ContentDir)
	}
	return nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}
