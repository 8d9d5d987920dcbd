package duckduckgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const resultsPage = `<!DOCTYPE html>
<html><body>
<div class="serp__results">
  <div class="result results_links web-result">
    <div class="links_main links_deep result__body">
      <h2 class="result__title">
        <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fapple-q3&amp;rut=abc">Apple Reports Third Quarter Results</a>
      </h2>
      <a class="result__snippet" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fapple-q3">Apple today announced financial results for its fiscal 2024 third quarter.</a>
    </div>
  </div>
  <div class="result result--ad">
    <div class="links_main result__body">
      <h2 class="result__title">
        <a class="result__a" href="https://duckduckgo.com/y.js?ad_domain=ads.example">Sponsored result</a>
      </h2>
      <a class="result__snippet" href="#">Buy now</a>
    </div>
  </div>
  <div class="result results_links web-result">
    <div class="links_main links_deep result__body">
      <h2 class="result__title">
        <a rel="nofollow" class="result__a" href="https://news.example.org/markets">Markets Weekly: Tech Rally Continues</a>
      </h2>
      <a class="result__snippet" href="https://news.example.org/markets">Stocks rose for a third straight week as earnings beat estimates.</a>
    </div>
  </div>
</div>
</body></html>`

func parsePage(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestParseResults(t *testing.T) {
	articles := ParseResults(parsePage(t, resultsPage), 5)

	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles (ad filtered), got %d", len(articles))
	}

	if articles[0].Title != "Apple Reports Third Quarter Results" {
		t.Errorf("Unexpected title: %s", articles[0].Title)
	}
	if articles[0].URL != "https://example.com/apple-q3" {
		t.Errorf("Redirect not unwrapped: %s", articles[0].URL)
	}
	if !strings.Contains(articles[0].Summary, "third quarter") {
		t.Errorf("Unexpected snippet: %s", articles[0].Summary)
	}

	if articles[1].URL != "https://news.example.org/markets" {
		t.Errorf("Direct URL mangled: %s", articles[1].URL)
	}
}

func TestParseResults_MaxResults(t *testing.T) {
	articles := ParseResults(parsePage(t, resultsPage), 1)

	if len(articles) != 1 {
		t.Errorf("Expected 1 article, got %d", len(articles))
	}
}

func TestParseResults_EmptyPage(t *testing.T) {
	articles := ParseResults(parsePage(t, "<html><body><p>No results.</p></body></html>"), 5)

	if len(articles) != 0 {
		t.Errorf("Expected no articles, got %d", len(articles))
	}
}

func TestResolveRedirect(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage&rut=x", "https://example.com/page"},
		{"https://example.com/direct", "https://example.com/direct"},
		{"//duckduckgo.com/l/?rut=x", "https://duckduckgo.com/l/?rut=x"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := resolveRedirect(tt.in); got != tt.want {
			t.Errorf("resolveRedirect(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSearch_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "AAPL company news" {
			t.Errorf("Unexpected query %q", got)
		}
		if got := r.URL.Query().Get("kl"); got != "wt-wt" {
			t.Errorf("Unexpected region %q", got)
		}
		w.Write([]byte(resultsPage))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	client := NewClient(cfg)

	articles, err := client.Search(context.Background(), "AAPL company news", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("Expected 2 articles, got %d", len(articles))
	}
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	client := NewClient(cfg)

	if _, err := client.Search(context.Background(), "anything", 5); err == nil {
		t.Error("Expected error on HTTP 403")
	}
}
