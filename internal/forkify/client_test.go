package forkify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

func testClient(srv *httptest.Server, opts ...ClientOption) *Client {
	return NewClient(srv.URL, logger.New(logger.LevelOff, nil), opts...)
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %s, want /search", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != "pizza" {
			t.Errorf("q = %q, want pizza", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":2,"recipes":[
			{"recipe_id":"47746","title":"Best Pizza Dough Ever","publisher":"101 Cookbooks","image_url":"http://img/1.jpg"},
			{"recipe_id":54388,"title":"Pizza &amp; Beer","publisher":"Closet Cooking","image_url":"http://img/2.jpg"}
		]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Search(context.Background(), "pizza")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "47746" || got[0].Author != "101 Cookbooks" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].ID != "54388" || got[1].Title != "Pizza & Beer" {
		t.Errorf("second = %+v", got[1])
	}
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get" || r.URL.Query().Get("rId") != "47746" {
			t.Errorf("unexpected request %s", r.URL)
		}
		w.Write([]byte(`{"recipe":{"recipe_id":"47746","title":"Best Pizza Dough Ever",
			"publisher":"101 Cookbooks","image_url":"http://img/1.jpg",
			"source_url":"http://101cookbooks.com/pizza",
			"ingredients":["1 1/2 cups warm water","2 teaspoons yeast","3 3/4 cups flour"]}}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Get(context.Background(), "47746")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.SourceURL != "http://101cookbooks.com/pizza" || len(got.IngredientLines) != 3 {
		t.Fatalf("unexpected recipe: %+v", got)
	}
	if got.Servings != 0 || got.CookTime != 0 {
		t.Fatalf("absent extras should be zero, got servings=%d time=%d", got.Servings, got.CookTime)
	}
}

func TestGetHonoursExtras(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recipe":{"recipe_id":"1","title":"Soup","servings":6,"cooking_time":"45","ingredients":[]}}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Servings != 6 || got.CookTime != 45 {
		t.Fatalf("servings=%d time=%d, want 6 and 45", got.Servings, got.CookTime)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantNotFound bool
	}{
		{"server error", http.StatusInternalServerError, "boom", false},
		{"bad request", http.StatusBadRequest, `{"error":"bad"}`, false},
		{"not found", http.StatusNotFound, "", true},
		{"bad json", http.StatusOK, "{", false},
		{"missing recipe", http.StatusOK, `{"error":"Couldn't find recipe"}`, true},
		{"empty recipe", http.StatusOK, `{"recipe":{}}`, true},
		{"blank recipe fields", http.StatusOK, `{"recipe":{"recipe_id":"","title":"","ingredients":[]}}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := testClient(srv).Get(context.Background(), "x")
			if !errors.Is(err, domain.ErrFetchFailed) {
				t.Fatalf("error = %v, want ErrFetchFailed", err)
			}
			if got := errors.Is(err, domain.ErrNotFound); got != tt.wantNotFound {
				t.Fatalf("errors.Is(ErrNotFound) = %v, want %v", got, tt.wantNotFound)
			}
		})
	}
}

func TestNoRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := testClient(srv).Search(context.Background(), "pizza"); err == nil {
		t.Fatal("expected error")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("calls = %d, want exactly 1", n)
	}
}

func TestAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if k := r.URL.Query().Get("key"); k != "secret" {
			t.Errorf("key = %q, want secret", k)
		}
		w.Write([]byte(`{"count":0,"recipes":[]}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv, WithAPIKey("secret")).Search(context.Background(), "x"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"count":0,"recipes":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv, WithHTTPTimeout(20*time.Millisecond)).Search(context.Background(), "x")
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 8, "abcde..."},
		{"ééééé", 8, "éé..."}, // 10 bytes; a cut at 5 would split the third é
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) = %q is not valid UTF-8", tt.in, tt.n, got)
		}
	}
}
