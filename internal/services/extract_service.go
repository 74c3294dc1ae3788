package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"devdash-backend/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

const (
	maxProblemPageBytes = 4 << 20
	maxExtractedTags    = 5
	unknownProblemTitle = "Unknown Problem"
	unknownProblemSlug  = "unknown-problem"
)

// topicTags is scanned in order; the first matches win.
var topicTags = []string{
	"Array", "String", "Hash Table", "Dynamic Programming", "Math",
	"Two Pointers", "Binary Search", "Tree", "Depth-First Search", "Breadth-First Search",
	"Greedy", "Backtracking", "Stack", "Queue", "Linked List",
	"Binary Tree", "Graph", "Heap", "Sorting", "Recursion",
	"Sliding Window", "Union Find", "Trie", "Bit Manipulation", "Design",
}

var urlKeywordTags = []struct{ keyword, tag string }{
	{"array", "Array"},
	{"string", "String"},
	{"tree", "Tree"},
	{"graph", "Graph"},
}

var problemNumberPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ProblemExtractor scrapes best-effort metadata from a LeetCode problem page.
type ProblemExtractor struct {
	client    *http.Client
	userAgent string
}

// NewProblemExtractor uses client for page fetches; a nil client gets one
// with the given timeout.
func NewProblemExtractor(client *http.Client, timeout time.Duration, userAgent string) *ProblemExtractor {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &ProblemExtractor{client: client, userAgent: userAgent}
}

// Extract validates rawURL and returns the page metadata. Fetch and parse
// failures are not errors: they produce fallback metadata derived from the URL.
func (e *ProblemExtractor) Extract(ctx context.Context, rawURL string) (*models.ProblemMetadata, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, newValidationError("url", "URL is required")
	}
	if !isProblemURL(rawURL) {
		return nil, newValidationError("url", "Please provide a valid LeetCode problem URL")
	}

	page, err := e.fetch(ctx, rawURL)
	if err != nil {
		logrus.WithError(err).WithField("url", rawURL).Warn("problem page fetch failed, using URL fallback")
		return FallbackMetadata(rawURL), nil
	}
	return ParseProblemPage(page, rawURL), nil
}

// isProblemURL accepts only http(s) URLs on leetcode.com or a subdomain
// whose path is under /problems/.
func isProblemURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.User != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host != "leetcode.com" && !strings.HasSuffix(host, ".leetcode.com") {
		return false
	}
	return strings.HasPrefix(u.Path, "/problems/")
}

func (e *ProblemExtractor) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("get %s: status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemPageBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}
	return string(body), nil
}

// ParseProblemPage derives title, difficulty and topic tags from page HTML.
func ParseProblemPage(page, rawURL string) *models.ProblemMetadata {
	title := unknownProblemTitle
	if raw, ok := pageTitle(page); ok {
		if cleaned := cleanProblemTitle(raw); cleaned != "" {
			title = cleaned
		}
	}

	return &models.ProblemMetadata{
		Title:      title,
		Difficulty: scanDifficulty(page),
		Tags:       scanTags(page, rawURL),
		URL:        rawURL,
	}
}

// FallbackMetadata builds metadata from the slug that follows "problems" in the URL.
func FallbackMetadata(rawURL string) *models.ProblemMetadata {
	return &models.ProblemMetadata{
		Title:      SlugTitle(problemSlug(rawURL)),
		Difficulty: models.DifficultyMedium,
		Tags:       []string{"Algorithm"},
		URL:        rawURL,
		Fallback:   true,
	}
}

// SlugTitle turns "two-sum" into "Two Sum".
func SlugTitle(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

func problemSlug(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "problems" && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1]
		}
	}
	return unknownProblemSlug
}

func pageTitle(page string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(page))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return "", false
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) != "title" {
				continue
			}
			if z.Next() != html.TextToken {
				return "", false
			}
			return string(z.Text()), true
		}
	}
}

func cleanProblemTitle(raw string) string {
	title := strings.Replace(raw, " - LeetCode", "", 1)
	title = problemNumberPrefix.ReplaceAllString(strings.TrimSpace(title), "")
	return strings.TrimSpace(title)
}

// scanDifficulty checks Easy, then Hard, then Medium. Pages mention several
// of these, so the order decides the outcome.
func scanDifficulty(page string) models.Difficulty {
	switch {
	case strings.Contains(page, "Easy") || strings.Contains(page, "easy"):
		return models.DifficultyEasy
	case strings.Contains(page, "Hard") || strings.Contains(page, "hard"):
		return models.DifficultyHard
	default:
		return models.DifficultyMedium
	}
}

func scanTags(page, rawURL string) []string {
	lower := strings.ToLower(page)
	tags := make([]string, 0, maxExtractedTags)
	for _, topic := range topicTags {
		if len(tags) == maxExtractedTags {
			break
		}
		if strings.Contains(lower, strings.ToLower(topic)) {
			tags = append(tags, topic)
		}
	}
	if len(tags) > 0 {
		return tags
	}

	lowerURL := strings.ToLower(rawURL)
	for _, kw := range urlKeywordTags {
		if strings.Contains(lowerURL, kw.keyword) {
			tags = append(tags, kw.tag)
		}
	}
	if len(tags) == 0 {
		tags = append(tags, "Algorithm")
	}
	return tags
}
