package search

import (
	"testing"

	"helpdock/internal/content"
)

func testLibrary() *content.Library {
	return content.NewLibrary(content.Home{Title: "Help"}, []content.Page{
		{Slug: "catalog", Title: "Services", Order: 1, Categories: []content.Category{
			{Name: "Service", Items: []content.Item{
				{Title: "Create a New Service", Description: "Add services.", Link: "catalog/createservice"},
				{Title: "Delete services", Description: "Remove outdated services.", Link: "catalog/deleteservice"},
			}},
			{Name: "Products", Items: []content.Item{
				{Title: "Create a Product", Description: "Build a product catalog.", Link: "catalog/createproduct"},
			}},
		}},
		{Slug: "offer", Title: "Membership", Order: 2, Categories: []content.Category{
			{Name: "Gift cards", Items: []content.Item{
				{Title: "Create Gift Card", Description: "Sell gift cards.", Link: "offer/creategiftcard"},
			}},
		}},
	})
}

func TestNewIndex_FlattensInPageOrder(t *testing.T) {
	ix := NewIndex(testLibrary())
	if ix.Len() != 4 {
		t.Fatalf("Len = %d, want 4", ix.Len())
	}
	last := ix.Entries()[3]
	if last.Slug != "offer" || last.Category != 0 || last.CategoryName != "Gift cards" {
		t.Errorf("last entry = %+v", last)
	}
	third := ix.Entries()[2]
	if third.Category != 1 || third.PageTitle != "Services" {
		t.Errorf("third entry = %+v", third)
	}
}

func TestSearch_FindsItem(t *testing.T) {
	ix := NewIndex(testLibrary())
	results := ix.Search("gift card", 0)
	if len(results) == 0 {
		t.Fatal("expected results for 'gift card'")
	}
	found := false
	for _, r := range results {
		if r.Item.Title == "Create Gift Card" {
			found = true
			if r.Slug != "offer" || r.Category != 0 {
				t.Errorf("wrong location for gift card: %+v", r.Entry)
			}
		}
	}
	if !found {
		t.Errorf("'Create Gift Card' not in results: %+v", results)
	}
}

func TestSearch_RankedBestFirst(t *testing.T) {
	ix := NewIndex(testLibrary())
	results := ix.Search("service", 0)
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted by score: %d before %d", results[i-1].Score, results[i].Score)
		}
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	ix := NewIndex(testLibrary())
	if got := ix.Search("   ", 10); got != nil {
		t.Errorf("expected nil for blank query, got %v", got)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	ix := NewIndex(testLibrary())
	if got := ix.Search("zzzzqqq", 10); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
}

func TestSearch_Limit(t *testing.T) {
	ix := NewIndex(testLibrary())
	all := ix.Search("e", 0)
	if len(all) < 2 {
		t.Fatalf("expected several matches for 'e', got %d", len(all))
	}
	if got := ix.Search("e", 1); len(got) != 1 {
		t.Errorf("limit 1 returned %d results", len(got))
	}
}

func TestSearch_DefaultLibrary(t *testing.T) {
	lib, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	ix := NewIndex(lib)
	if ix.Len() != 95 {
		t.Errorf("Len = %d, want 95 items across the shipped pages", ix.Len())
	}
	results := ix.Search("refund", 5)
	if len(results) == 0 {
		t.Fatal("expected a result for 'refund'")
	}
}
