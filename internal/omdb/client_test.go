package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient("testkey", srv.URL, 5*time.Second), srv
}

func TestSearchReturnsResults(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("s"); got != "Comedy" {
			t.Errorf("s = %q, want Comedy", got)
		}
		if got := r.URL.Query().Get("type"); got != "movie" {
			t.Errorf("type = %q, want movie", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "testkey" {
			t.Errorf("apikey = %q, want testkey", got)
		}
		w.Write([]byte(`{
			"Search": [
				{"Title": "One", "Year": "1999", "imdbID": "tt1", "Type": "movie"},
				{"Title": "Two", "Year": "2005", "imdbID": "tt2", "Type": "movie"}
			],
			"totalResults": "2",
			"Response": "True"
		}`))
	})
	defer srv.Close()

	results, err := client.Search(context.Background(), "Comedy")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 || results[0].ImdbID != "tt1" || results[1].ImdbID != "tt2" {
		t.Fatalf("results = %+v, want tt1 and tt2", results)
	}
}

func TestSearchNoResultsIsEmptyNotError(t *testing.T) {
	// OMDb reports "nothing found" without a Search field.
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	})
	defer srv.Close()

	results, err := client.Search(context.Background(), "Nonexistentgenre")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results = %+v, want empty", results)
	}
}

func TestSearchNonSuccessStatusIsTransportError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := client.Search(context.Background(), "Comedy")
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
}

func TestSearchNetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient("testkey", srv.URL, 5*time.Second)
	srv.Close() // connection refused from here on

	_, err := client.Search(context.Background(), "Comedy")
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
}

func TestGetDetail(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("i"); got != "tt0133093" {
			t.Errorf("i = %q, want tt0133093", got)
		}
		w.Write([]byte(`{
			"Title": "The Matrix",
			"Year": "1999",
			"Genre": "Action, Sci-Fi",
			"imdbRating": "8.7",
			"Country": "United States, Australia",
			"Plot": "A computer hacker learns the truth.",
			"Poster": "https://example.com/matrix.jpg",
			"imdbID": "tt0133093",
			"Response": "True"
		}`))
	})
	defer srv.Close()

	detail, err := client.GetDetail(context.Background(), "tt0133093")
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if detail.Title != "The Matrix" || detail.Year != "1999" || detail.Rating != "8.7" {
		t.Errorf("detail = %+v", detail)
	}
}

func TestGetDetailBackfillsID(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Title": "No ID Here", "Response": "True"}`))
	})
	defer srv.Close()

	detail, err := client.GetDetail(context.Background(), "tt42")
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if detail.ImdbID != "tt42" {
		t.Errorf("ImdbID = %q, want tt42", detail.ImdbID)
	}
}
