package content

// Item is one help article card: a title, a short description and the
// destination the card links to.
type Item struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link"`
}

// Category groups the items shown under one sidebar entry.
type Category struct {
	Name  string `yaml:"name" json:"name"`
	Items []Item `yaml:"items" json:"items"`
}

// Page is one help-center topic page.
type Page struct {
	Slug         string     `yaml:"slug" json:"slug"`
	Title        string     `yaml:"title" json:"title"`
	Order        int        `yaml:"order" json:"order"`
	Illustration string     `yaml:"illustration,omitempty" json:"illustration,omitempty"`
	Intro        string     `yaml:"intro" json:"intro"`
	Categories   []Category `yaml:"categories" json:"categories"`
}

// Card is a tile on the home grid.
type Card struct {
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
	Icon  string `yaml:"icon" json:"icon"`
	Link  string `yaml:"link" json:"link"`
}

// Home is the landing grid.
type Home struct {
	Title string `yaml:"title" json:"title"`
	Cards []Card `yaml:"cards" json:"cards"`
}

// ItemCount returns the number of items across all categories.
func (p Page) ItemCount() int {
	n := 0
	for _, c := range p.Categories {
		n += len(c.Items)
	}
	return n
}
