package content

import (
	"errors"
	"fmt"
)

// Validate reports every problem found in the library, joined.
func (l *Library) Validate() error {
	var errs []error
	if l.Home.Title == "" {
		errs = append(errs, errors.New("home: 'title' is required"))
	}
	for i, c := range l.Home.Cards {
		if c.Title == "" {
			errs = append(errs, fmt.Errorf("home card %d: 'title' is required", i+1))
		}
		if c.Link == "" {
			errs = append(errs, fmt.Errorf("home card %q: 'link' is required", c.Title))
		}
	}
	if len(l.pages) == 0 {
		errs = append(errs, errors.New("at least one page is required"))
	}
	seen := make(map[string]bool, len(l.pages))
	for _, p := range l.pages {
		if p.Slug == "" {
			errs = append(errs, fmt.Errorf("page %q: 'slug' is required", p.Title))
			continue
		}
		if seen[p.Slug] {
			errs = append(errs, fmt.Errorf("page %q: duplicate slug", p.Slug))
		}
		seen[p.Slug] = true
		errs = append(errs, validatePage(p)...)
	}
	return errors.Join(errs...)
}

func validatePage(p Page) []error {
	var errs []error
	if p.Title == "" {
		errs = append(errs, fmt.Errorf("page %q: 'title' is required", p.Slug))
	}
	names := make(map[string]bool, len(p.Categories))
	for i, c := range p.Categories {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("page %q: category %d: 'name' is required", p.Slug, i+1))
			continue
		}
		if names[c.Name] {
			errs = append(errs, fmt.Errorf("page %q: duplicate category %q", p.Slug, c.Name))
		}
		names[c.Name] = true
		for j, it := range c.Items {
			if it.Title == "" {
				errs = append(errs, fmt.Errorf("page %q: %s item %d: 'title' is required", p.Slug, c.Name, j+1))
			}
			if it.Link == "" {
				errs = append(errs, fmt.Errorf("page %q: %s item %q: 'link' is required", p.Slug, c.Name, it.Title))
			}
		}
	}
	return errs
}
