package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	var gotBust string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBust = r.URL.Query().Get("v")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"title":"Rose Bouquet","price":399,"image":"img/rose.jpg"},
			{"id":2,"title":"Tulip Bunch","price":249,"image":"img/tulip.jpg"}
		]`))
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL + "/data/products.json")
	products, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != 1 || products[0].Title != "Rose Bouquet" || products[0].Price != 399 {
		t.Fatalf("unexpected first product %+v", products[0])
	}
	if gotBust == "" {
		t.Fatalf("expected cache-busting query parameter")
	}
}

func TestLoaderLoadBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	_, err := loader.Load(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLoaderLoadBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	_, err := loader.Load(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLoaderLoadConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	loader := NewLoader(srv.URL)
	_, err := loader.Load(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCatalogRefreshKeepsOldListOnFailure(t *testing.T) {
	ok := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"id":1,"title":"Rose","price":100,"image":""}]`))
	}))
	defer srv.Close()

	cat := New(NewLoader(srv.URL))
	if err := cat.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if cat.Empty() {
		t.Fatalf("expected loaded catalog")
	}

	ok = false
	if err := cat.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh failure")
	}
	if got := cat.Products(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected previous list to survive, got %+v", got)
	}
}
