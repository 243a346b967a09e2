package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestRandom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/random" {
			t.Errorf("request path = %q, want /random", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":"Simplicity wins.","author":"Anonymous"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	q, err := client.Random(context.Background())
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if q.Content != "Simplicity wins." {
		t.Errorf("Content = %q, want Simplicity wins.", q.Content)
	}
	if q.Author != "Anonymous" {
		t.Errorf("Author = %q, want Anonymous", q.Author)
	}
	if q.ID != 0 {
		t.Errorf("ID = %d, want 0 (store assigns IDs)", q.ID)
	}
}

func TestRandom_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	if _, err := client.Random(context.Background()); err == nil {
		t.Error("Random() succeeded on 500 response, want error")
	}
}

func TestRandom_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"","author":"A"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	if _, err := client.Random(context.Background()); err == nil {
		t.Error("Random() succeeded on empty content, want error")
	}
}

func TestFetch_Count(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"content":"Quote body.","author":"A"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	quotes, err := client.Fetch(context.Background(), 3)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(quotes) != 3 {
		t.Errorf("Fetch(3) returned %d quotes, want 3", len(quotes))
	}
	if calls.Load() != 3 {
		t.Errorf("server saw %d requests, want 3", calls.Load())
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(WithBaseURL("http://127.0.0.1:0"))
	if _, err := client.Fetch(ctx, 1); err == nil {
		t.Error("Fetch() succeeded with cancelled context, want error")
	}
}
