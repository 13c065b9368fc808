package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"
)

// Export writes the site as static files under dir: index.html, one
// main/<slug>/index.html per page and search-index.json. It returns the
// number of files written.
func (s *Server) Export(dir string) (int, error) {
	var buf bytes.Buffer
	n := 0
	write := func(rel string, data []byte) error {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
		n++
		return nil
	}

	if err := s.renderHome(&buf); err != nil {
		return n, fmt.Errorf("rendering home: %w", err)
	}
	if err := write("index.html", buf.Bytes()); err != nil {
		return n, err
	}

	for _, p := range s.lib.Pages() {
		buf.Reset()
		if err := s.renderPage(&buf, p); err != nil {
			return n, fmt.Errorf("rendering %s: %w", p.Slug, err)
		}
		if err := write(path.Join("main", p.Slug, "index.html"), buf.Bytes()); err != nil {
			return n, err
		}
	}

	data, err := json.MarshalIndent(s.idx.Entries(), "", "  ")
	if err != nil {
		return n, fmt.Errorf("encoding search index: %w", err)
	}
	if err := write("search-index.json", data); err != nil {
		return n, err
	}
	s.log.Info("site exported", "dir", dir, "files", n)
	return n, nil
}

// Link is one href found in an exported file.
type Link struct {
	Source string `json:"source"`
	Href   string `json:"href"`
}

// LinkReport is the outcome of CheckLinks.
type LinkReport struct {
	Files   int
	Checked int
	// Broken links point at nothing in the site.
	Broken []Link
	// Detail links are help-item cards whose article lives outside the
	// exported site.
	Detail []Link
}

// OK reports whether no link is broken.
func (r LinkReport) OK() bool { return len(r.Broken) == 0 }

// CheckLinks parses every HTML file under dir and verifies its internal
// links against the files and anchors present.
func CheckLinks(dir string) (LinkReport, error) {
	var rep LinkReport
	fsys := os.DirFS(dir)
	files, err := doublestar.Glob(fsys, "**/*.html")
	if err != nil {
		return rep, err
	}
	if len(files) == 0 {
		return rep, fmt.Errorf("no html files under %s", dir)
	}
	slices.Sort(files)

	docs := make(map[string]*htmlDoc, len(files))
	for _, f := range files {
		d, err := parseHTML(fsys, f)
		if err != nil {
			return rep, err
		}
		docs[f] = d
	}
	rep.Files = len(files)

	for _, f := range files {
		for _, a := range docs[f].links {
			if isExternal(a.href) {
				continue
			}
			rep.Checked++
			if resolves(docs, f, a.href) {
				continue
			}
			l := Link{Source: f, Href: a.href}
			if a.item {
				rep.Detail = append(rep.Detail, l)
			} else {
				rep.Broken = append(rep.Broken, l)
			}
		}
	}
	return rep, nil
}

type anchor struct {
	href string
	item bool
}

type htmlDoc struct {
	ids   map[string]bool
	links []anchor
}

func parseHTML(fsys fs.FS, name string) (*htmlDoc, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	d := &htmlDoc{ids: make(map[string]bool)}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := attr(n, "id"); id != "" {
				d.ids[id] = true
			}
			if n.Data == "a" {
				if href := attr(n, "href"); href != "" {
					item := slices.Contains(strings.Fields(attr(n, "class")), "item")
					d.links = append(d.links, anchor{href: href, item: item})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return d, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isExternal(href string) bool {
	for _, p := range []string{"http://", "https://", "mailto:", "//"} {
		if strings.HasPrefix(href, p) {
			return true
		}
	}
	return false
}

// resolves reports whether href, found in file src, names an exported file
// and, when it has a fragment, an element id in that file.
func resolves(docs map[string]*htmlDoc, src, href string) bool {
	target, frag, _ := strings.Cut(href, "#")
	file := src
	if target != "" {
		var p string
		if strings.HasPrefix(target, "/") {
			p = strings.TrimPrefix(path.Clean(target), "/")
		} else {
			p = path.Join(path.Dir(src), target)
		}
		file = p
		if _, ok := docs[file]; !ok {
			file = path.Join(p, "index.html")
			if p == "" || p == "." {
				file = "index.html"
			}
		}
	}
	d, ok := docs[file]
	if !ok {
		return false
	}
	return frag == "" || d.ids[frag]
}
