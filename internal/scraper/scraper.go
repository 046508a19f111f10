// Package scraper fetches a page and extracts the display metadata the
// bookmark dialog needs: title, description and a resolved favicon URL.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	appErr "tabmark/internal/pkg/errors"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:124.0) Gecko/20100101 Firefox/124.0"

type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Favicon     string `json:"favicon"`
}

type Scraper struct {
	client *http.Client
}

func New(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Scraper{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads and parses rawURL. Only http/https targets are accepted.
func (s *Scraper) Fetch(ctx context.Context, rawURL string) (*PageMeta, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return nil, fmt.Errorf("%w: url must be http or https", appErr.ErrInvalid)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL.Host, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, err
	}
	return extract(doc, pageURL), nil
}

func extract(doc *goquery.Document, pageURL *url.URL) *PageMeta {
	meta := &PageMeta{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Favicon: findFavicon(doc, pageURL),
	}
	for _, selector := range []string{
		"meta[name=description]",
		"meta[property='og:description']",
	} {
		if desc := strings.TrimSpace(doc.Find(selector).AttrOr("content", "")); desc != "" {
			meta.Description = desc
			break
		}
	}
	return meta
}

// findFavicon prefers explicit icon links and falls back to /favicon.ico,
// which most sites serve even without a link tag.
func findFavicon(doc *goquery.Document, pageURL *url.URL) string {
	for _, selector := range []string{
		"link[rel='icon']",
		"link[rel='shortcut icon']",
		"link[rel='apple-touch-icon']",
	} {
		if href := strings.TrimSpace(doc.Find(selector).AttrOr("href", "")); href != "" {
			if resolved := resolveRef(pageURL, href); resolved != "" {
				return resolved
			}
		}
	}
	fallback := &url.URL{Scheme: pageURL.Scheme, Host: pageURL.Host, Path: "/favicon.ico"}
	return fallback.String()
}

func resolveRef(pageURL *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return pageURL.ResolveReference(ref).String()
}
