package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"helpdock/internal/content"
)

// cardItem is a home grid card in the home list.
type cardItem struct {
	card content.Card
	slug string // empty when the card has no page here
}

func (c cardItem) Title() string { return c.card.Title }
func (c cardItem) Description() string {
	if c.slug == "" {
		return "(coming soon) " + c.card.Text
	}
	return c.card.Text
}
func (c cardItem) FilterValue() string { return c.card.Title }

// categoryItem is a sidebar entry in the narrow-layout drawer.
type categoryItem struct {
	index  int
	name   string
	count  int
	active bool
}

func (c categoryItem) Title() string {
	if c.active {
		return "● " + c.name
	}
	return "  " + c.name
}
func (c categoryItem) Description() string { return fmt.Sprintf("%d articles", c.count) }
func (c categoryItem) FilterValue() string { return c.name }

func homeItems(lib *content.Library) []list.Item {
	items := make([]list.Item, 0, len(lib.Home.Cards))
	for _, c := range lib.Home.Cards {
		slug, _ := lib.Resolve(c.Link)
		items = append(items, cardItem{card: c, slug: slug})
	}
	return items
}

func drawerItems(p content.Page, active int) []list.Item {
	items := make([]list.Item, 0, len(p.Categories))
	for i, c := range p.Categories {
		items = append(items, categoryItem{index: i, name: c.Name, count: len(c.Items), active: i == active})
	}
	return items
}
