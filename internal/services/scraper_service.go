package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// maxContentChars caps the sanitized text handed to the model so a huge
// posting cannot blow its context window.
const maxContentChars = 15000

// A realistic desktop identity; several job boards refuse the Go default.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ScraperService fetches a job-posting URL and reduces it to plain text.
type ScraperService struct {
	Client *http.Client
}

func NewScraperService(timeout time.Duration) *ScraperService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ScraperService{
		Client: &http.Client{Timeout: timeout},
	}
}

// Scrape GETs the URL and returns the page stripped to plain text:
// script/style content removed, whitespace collapsed, truncated to
// maxContentChars. Transport errors and non-2xx statuses are errors.
func (s *ScraperService) Scrape(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := collapseWhitespace(stripHTML(string(body)))
	if len(text) > maxContentChars {
		text = truncateAtRuneBoundary(text, maxContentChars) + "..."
	}
	return text, nil
}

// truncateAtRuneBoundary cuts s to at most n bytes without splitting a
// multibyte rune.
func truncateAtRuneBoundary(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stripHTML walks the token stream and keeps only text, skipping the
// contents of script and style elements entirely.
func stripHTML(src string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(src))
	var b strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
