package web

import (
	"bytes"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"helpdock/internal/content"
	"helpdock/internal/tracker"
)

// Nominal block heights, in pixels, of the rendered page. They stand in for
// browser measurements when the server picks the initially active section.
const (
	headingHeight = 48
	cardHeight    = 132
	emptyHeight   = 40
	sectionGap    = 32
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// markdown renders s as GitHub flavoured Markdown. Raw HTML in s is dropped.
func markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

// pageSections lays out p's categories with nominal heights.
func pageSections(p content.Page) []tracker.Section {
	out := make([]tracker.Section, 0, len(p.Categories))
	top := 0
	for _, c := range p.Categories {
		h := headingHeight + emptyHeight
		if len(c.Items) > 0 {
			h = headingHeight + len(c.Items)*cardHeight
		}
		out = append(out, tracker.Section{Top: top, Height: h})
		top += h + sectionGap
	}
	return out
}

type homeCard struct {
	content.Card
	Slug string
}

type homeView struct {
	Title string
	Cards []homeCard
}

type pageView struct {
	Title  string
	Page   content.Page
	Active int
}

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"markdown": markdown,
	"href":     content.Href,
}).Parse(layoutTemplate))

func (s *Server) renderHome(w io.Writer) error {
	v := homeView{Title: s.lib.Home.Title}
	for _, c := range s.lib.Home.Cards {
		slug, _ := s.lib.Resolve(c.Link)
		v.Cards = append(v.Cards, homeCard{Card: c, Slug: slug})
	}
	return templates.ExecuteTemplate(w, "home", v)
}

func (s *Server) renderPage(w io.Writer, p content.Page) error {
	return templates.ExecuteTemplate(w, "page", pageView{
		Title:  s.lib.Home.Title,
		Page:   p,
		Active: tracker.ActiveIndex(pageSections(p), 0),
	})
}

const layoutTemplate = `
{{define "top"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.}}</title>
</head>
<body>
  <header>
    <a href="/">Home</a>
    <a href="/">Info dock</a>
    <span>Academy</span>
  </header>
{{end}}

{{define "bottom"}}</body>
</html>
{{end}}

{{define "home"}}{{template "top" .Title}}
  <main class="home">
    <h1>{{.Title}}</h1>
    <div class="grid">
    {{- range .Cards}}
      {{if .Slug}}<a class="card" href="/main/{{.Slug}}">{{else}}<div class="card soon">{{end}}
        <h2>{{.Title}}</h2>
        <p>{{.Text}}</p>
      {{if .Slug}}</a>{{else}}<p class="badge">Coming soon</p></div>{{end}}
    {{- end}}
    </div>
  </main>
{{template "bottom"}}{{end}}

{{define "page"}}{{template "top" (print .Page.Title " | " .Title)}}
  <aside class="sidebar">
    <h2>{{.Page.Title}}</h2>
    <nav>
    {{- range $i, $c := .Page.Categories}}
      <a href="#section-{{$i}}"{{if eq $i $.Active}} class="active"{{end}}>{{$c.Name}}</a>
    {{- end}}
    </nav>
  </aside>
  <main class="page">
    <h1>{{.Page.Title}}</h1>
    {{if .Page.Intro}}<div class="intro">{{markdown .Page.Intro}}</div>{{end}}
    {{- range $i, $c := .Page.Categories}}
    <section id="section-{{$i}}">
      <h2>{{$c.Name}}</h2>
      {{- if not $c.Items}}
      <p class="empty">No content available.</p>
      {{- end}}
      {{- range $c.Items}}
      <a class="item" href="{{href .Link}}">
        <h3>{{.Title}}</h3>
        {{markdown .Description}}
      </a>
      {{- end}}
    </section>
    {{- end}}
  </main>
{{template "bottom"}}{{end}}
`
