package duckduckgo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/entity"
)

type Config struct {
	BaseURL   string
	UserAgent string
	Region    string
	Timeout   time.Duration
	Logger    output.LoggerPort
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://html.duckduckgo.com/html/",
		UserAgent: "Mozilla/5.0 (compatible; finance-qa-agent/1.0)",
		Region:    "wt-wt",
		Timeout:   10 * time.Second,
	}
}

var _ output.SearchPort = (*Client)(nil)

// Client searches through DuckDuckGo's HTML endpoint, which needs no API key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	region     string
	limiter    *rate.Limiter
	logger     output.LoggerPort
}

func NewClient(cfg Config) *Client {
	// One query per second keeps the endpoint from serving captchas.
	limiter := rate.NewLimiter(rate.Limit(1), 2)

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		region:     cfg.Region,
		limiter:    limiter,
		logger:     cfg.Logger,
	}
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]entity.Article, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{
		"q":  {query},
		"kl": {c.region},
	}
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	if c.logger != nil {
		c.logger.Debug("Search request", "query", query)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	articles := ParseResults(doc, maxResults)

	if c.logger != nil {
		c.logger.Debug("Search completed", "query", query, "results", len(articles))
	}
	return articles, nil
}

// ParseResults extracts title/url/snippet triples from a DuckDuckGo HTML
// results document.
func ParseResults(doc *html.Node, maxResults int) []entity.Article {
	var articles []entity.Article

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if maxResults > 0 && len(articles) >= maxResults {
			return
		}

		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "result__body") {
			if article, ok := parseResult(n); ok {
				articles = append(articles, article)
			}
			return
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return articles
}

func parseResult(n *html.Node) (entity.Article, bool) {
	var article entity.Article

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			switch {
			case hasClass(n, "result__a"):
				article.Title = textContent(n)
				article.URL = resolveRedirect(attr(n, "href"))
			case hasClass(n, "result__snippet"):
				article.Summary = textContent(n)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)

	if article.Title == "" || article.URL == "" {
		return entity.Article{}, false
	}
	// Sponsored entries route through the ad click tracker.
	if strings.Contains(article.URL, "duckduckgo.com/y.js") {
		return entity.Article{}, false
	}
	return article, true
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=... click-through links.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.HasSuffix(u.Host, "duckduckgo.com") || !strings.HasPrefix(u.Path, "/l/") {
		return href
	}

	target := u.Query().Get("uddg")
	if target == "" {
		return href
	}
	return target
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(sb.String()), " ")
}
