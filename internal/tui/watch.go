package tui

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"helpdock/internal/content"
	"helpdock/internal/search"
)

// settle is how long the watcher waits for an editor's burst of writes to
// finish before reloading.
const settle = 150 * time.Millisecond

type contentReloadedMsg struct {
	lib *content.Library
	err error
}

type watchErrMsg struct{ err error }

// WatchContent returns a watcher on dir and every directory below it.
func WatchContent(dir string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addTree(w, dir); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// addTree watches dir and every directory below it.
func addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}

// addIfDir starts watching ev's path when ev created a directory. Pages may
// live in nested directories, so new ones have to be followed.
func addIfDir(w *fsnotify.Watcher, ev fsnotify.Event) (bool, error) {
	if !ev.Has(fsnotify.Create) {
		return false, nil
	}
	fi, err := os.Stat(ev.Name)
	if err != nil || !fi.IsDir() {
		return false, nil
	}
	return true, addTree(w, ev.Name)
}

// watchContent blocks until a YAML file under dir changes, then reloads the
// library.
func watchContent(w *fsnotify.Watcher, dir string) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				isDir, err := addIfDir(w, ev)
				if err != nil {
					return watchErrMsg{err: err}
				}
				if !isDir && (filepath.Ext(ev.Name) != ".yaml" || ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write)) {
					continue
				}
				if err := drain(w, settle); err != nil {
					return watchErrMsg{err: err}
				}
				lib, err := content.LoadDir(dir)
				return contentReloadedMsg{lib: lib, err: err}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

// drain swallows events until none arrive for d. Directories created
// meanwhile are still added to the watch.
func drain(w *fsnotify.Watcher, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if _, err := addIfDir(w, ev); err != nil {
				return err
			}
			t.Reset(d)
		case <-t.C:
			return nil
		}
	}
}

// reload swaps in a new library and remeasures the open page.
func (m *Model) reload(msg contentReloadedMsg) {
	if msg.err == nil {
		msg.err = msg.lib.Validate()
	}
	if msg.err != nil {
		m.log.Error("content reload failed", "dir", m.cfg.ContentDir, "error", msg.err)
		m.setError(msg.err)
		return
	}
	m.lib = msg.lib
	m.idx = search.NewIndex(msg.lib)
	m.home.SetItems(homeItems(msg.lib))
	m.home.Title = msg.lib.Home.Title
	m.log.Info("content reloaded", "dir", m.cfg.ContentDir, "pages", len(msg.lib.Pages()))
	if m.screen != screenPage {
		m.setStatus("content reloaded")
		return
	}
	p, err := msg.lib.Page(m.page.Slug)
	if err != nil {
		m.goHome()
		m.setError(err)
		return
	}
	m.page = p
	if m.focus >= p.ItemCount() {
		m.focus = -1
	}
	m.relayout()
	m.setStatus("content reloaded")
}
