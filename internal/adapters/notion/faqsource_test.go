package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src := NewSource(Config{APIKey: "secret", DatabaseID: "db-1"})
	src.baseURL = srv.URL
	return src
}

func textProp(texts ...richText) property {
	return property{RichText: texts}
}

func titleProp(texts ...richText) property {
	return property{Title: texts}
}

func numberProp(n float64) property {
	return property{Number: &n}
}

func TestSource_Fetch(t *testing.T) {
	t.Parallel()

	href := "https://example.com/rules"
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/databases/db-1/query" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}
		if got := r.Header.Get("Notion-Version"); got != notionVersion {
			t.Errorf("notion version = %q", got)
		}

		var body queryRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Filter.Property != "Published" || !body.Filter.Checkbox.Equals {
			t.Errorf("unexpected filter: %+v", body.Filter)
		}

		resp := queryResponse{
			Results: []page{
				{
					ID: "page-1",
					Properties: map[string]property{
						"Question": titleProp(richText{PlainText: "When is it?"}),
						"Answer": textProp(
							richText{PlainText: "See the "},
							richText{PlainText: "rules", Href: &href},
							richText{PlainText: "."},
						),
						"Order": numberProp(1),
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	got := items[0]
	if got.ID != "page-1" || got.Question != "When is it?" || got.Order != 1 {
		t.Errorf("unexpected item: %+v", got)
	}
	if want := "See the [rules](https://example.com/rules)."; got.Answer != want {
		t.Errorf("answer = %q, want %q", got.Answer, want)
	}
}

func TestSource_FetchPaginates(t *testing.T) {
	t.Parallel()

	var calls int
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body queryRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}

		resp := queryResponse{
			Results: []page{{
				ID: fmt.Sprintf("page-%d", calls),
				Properties: map[string]property{
					"Question": titleProp(richText{PlainText: fmt.Sprintf("Q%d", calls)}),
				},
			}},
		}
		if calls == 1 {
			if body.StartCursor != "" {
				t.Errorf("first call start_cursor = %q", body.StartCursor)
			}
			cursor := "cursor-2"
			resp.HasMore = true
			resp.NextCursor = &cursor
		} else if body.StartCursor != "cursor-2" {
			t.Errorf("second call start_cursor = %q", body.StartCursor)
		}
		json.NewEncoder(w).Encode(resp)
	})

	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if len(items) != 2 || items[0].Question != "Q1" || items[1].Question != "Q2" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestSource_FetchErrors(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"object":"error"}`, http.StatusTooManyRequests)
	})

	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
