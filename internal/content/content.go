// Package content holds the help-center pages and the home card grid.
//
// The shipped pages are embedded YAML. A directory with the same layout
// (home.yaml plus pages/*.yaml) can replace them at runtime.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed home.yaml pages/*.yaml
var embedded embed.FS

// ErrPageNotFound is returned by Library.Page for an unknown slug.
var ErrPageNotFound = errors.New("page not found")

// HomeFile and PagesGlob describe the on-disk layout LoadFS expects.
const (
	HomeFile  = "home.yaml"
	PagesGlob = "pages/**/*.yaml"
)

// Library is an ordered, indexed set of pages.
type Library struct {
	Home   Home
	pages  []Page
	bySlug map[string]int
}

// NewLibrary normalizes and orders pages by Order, then slug.
func NewLibrary(home Home, pages []Page) *Library {
	home.Title = strings.TrimSpace(home.Title)
	for i := range home.Cards {
		home.Cards[i].Title = strings.TrimSpace(home.Cards[i].Title)
	}
	ps := make([]Page, len(pages))
	for i, p := range pages {
		ps[i] = normalize(p)
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].Order != ps[j].Order {
			return ps[i].Order < ps[j].Order
		}
		return ps[i].Slug < ps[j].Slug
	})
	lib := &Library{Home: home, pages: ps, bySlug: make(map[string]int, len(ps))}
	for i, p := range ps {
		if _, dup := lib.bySlug[p.Slug]; !dup {
			lib.bySlug[p.Slug] = i
		}
	}
	return lib
}

func normalize(p Page) Page {
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
	p.Title = strings.TrimSpace(p.Title)
	p.Intro = strings.TrimSpace(p.Intro)
	cats := make([]Category, len(p.Categories))
	for i, c := range p.Categories {
		items := make([]Item, len(c.Items))
		for j, it := range c.Items {
			items[j] = Item{
				Title:       strings.TrimSpace(it.Title),
				Description: strings.TrimSpace(it.Description),
				Link:        strings.TrimSpace(it.Link),
			}
		}
		cats[i] = Category{Name: strings.TrimSpace(c.Name), Items: items}
	}
	p.Categories = cats
	return p
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the embedded library. It is decoded once.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = LoadFS(embedded)
	})
	return defaultLib, defaultErr
}

// LoadDir loads a content directory from disk.
func LoadDir(dir string) (*Library, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content dir %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS decodes home.yaml and every pages/**/*.yaml file in fsys.
func LoadFS(fsys fs.FS) (*Library, error) {
	var home Home
	if err := decodeFile(fsys, HomeFile, &home); err != nil {
		return nil, err
	}
	matches, err := doublestar.Glob(fsys, PagesGlob)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no pages matched %s", PagesGlob)
	}
	sort.Strings(matches)
	pages := make([]Page, 0, len(matches))
	for _, name := range matches {
		var p Page
		if err := decodeFile(fsys, name, &p); err != nil {
			return nil, err
		}
		if p.Slug == "" {
			p.Slug = strings.TrimSuffix(path.Base(name), path.Ext(name))
		}
		pages = append(pages, p)
	}
	return NewLibrary(home, pages), nil
}

func decodeFile(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// Pages returns every page in display order.
func (l *Library) Pages() []Page {
	return l.pages
}

// Slugs returns page slugs in display order.
func (l *Library) Slugs() []string {
	out := make([]string, len(l.pages))
	for i, p := range l.pages {
		out[i] = p.Slug
	}
	return out
}

// Page looks up a page by slug.
func (l *Library) Page(slug string) (Page, error) {
	i, ok := l.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Page{}, fmt.Errorf("%w: %q (run 'helpdock pages' to list available pages)", ErrPageNotFound, slug)
	}
	return l.pages[i], nil
}

// Resolve maps a link such as "/main/catalog" or "catalog" to the slug of
// the page it names. Links that go deeper than a page, such as
// "catalog/createservice", do not resolve.
func (l *Library) Resolve(link string) (string, bool) {
	p := strings.Trim(strings.TrimSpace(link), "/")
	p = strings.TrimPrefix(p, "main/")
	if p == "" || strings.Contains(p, "/") {
		return "", false
	}
	slug := strings.ToLower(p)
	if _, ok := l.bySlug[slug]; !ok {
		return "", false
	}
	return slug, true
}

// Href turns an item or card link into a site-absolute path under /main/.
// Absolute URLs are returned unchanged.
func Href(link string) string {
	link = strings.TrimSpace(link)
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	p := strings.Trim(link, "/")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "main/") {
		p = "main/" + p
	}
	return "/" + p
}
