package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("locale") == "" {
			t.Error("categories request missing locale")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"categories":[
			{"id":"c1","name":"Cars","name_ar":"سيارات","slug":"cars","icon":"/img/cat/cars.png"},
			{"id":"c2","name":"Real Estate","name_ar":"عقارات","slug":"real-estate"}
		]}`))
	})
	mux.HandleFunc("/api/v1/listings", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("category") == "cars" {
			w.Write([]byte(`{"total":1,"listings":[
				{"id":"l1","title":"2019 Corolla","price":11500,"currency":"JOD","category":"cars","photo":"/img/l1.jpg"}
			]}`))
			return
		}
		w.Write([]byte(`{"total":0,"listings":[]}`))
	})
	mux.HandleFunc("/api/v1/listings/l1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"l1","title":"2019 Corolla","price":11500,"currency":"JOD","category":"cars"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCategories(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	cats, err := c.Categories(context.Background(), "ar")
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if cats[0].Slug != "cars" || cats[0].NameAr != "سيارات" {
		t.Errorf("unexpected first category: %+v", cats[0])
	}
	// Second category has no icon; that is valid, not an error
	if cats[1].Icon != "" {
		t.Errorf("expected empty icon, got %q", cats[1].Icon)
	}
}

func TestListingsFiltered(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	listings, total, err := c.Listings(context.Background(), "cars", "en", 48)
	if err != nil {
		t.Fatalf("Listings: %v", err)
	}
	if total != 1 || len(listings) != 1 {
		t.Fatalf("got %d/%d listings, want 1/1", len(listings), total)
	}
	if listings[0].CategorySlug != "cars" {
		t.Errorf("category = %q, want cars", listings[0].CategorySlug)
	}

	listings, total, err = c.Listings(context.Background(), "boats", "en", 48)
	if err != nil {
		t.Fatalf("Listings(boats): %v", err)
	}
	if total != 0 || len(listings) != 0 {
		t.Errorf("got %d/%d listings for empty category", len(listings), total)
	}
}

func TestListing(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	l, err := c.Listing(context.Background(), "l1")
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	if l.Title != "2019 Corolla" {
		t.Errorf("title = %q", l.Title)
	}

	if _, err := c.Listing(context.Background(), "missing"); err == nil {
		t.Error("expected error for missing listing")
	}
}

func TestImageURL(t *testing.T) {
	c := NewClient("https://souq.example")
	tests := []struct{ in, want string }{
		{"", ""},
		{"/img/a.png", "https://souq.example/img/a.png"},
		{"img/a.png", "https://souq.example/img/a.png"},
		{"https://cdn.example/a.png", "https://cdn.example/a.png"},
	}
	for _, tt := range tests {
		if got := c.ImageURL(tt.in); got != tt.want {
			t.Errorf("ImageURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	if got := normalizeURL(" souq.example/ "); got != "https://souq.example" {
		t.Errorf("normalizeURL = %q", got)
	}
}
