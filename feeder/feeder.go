package feeder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"paper-letter/models"
)

const FETCH_TIMEOUT = 30 * time.Second

// arxivUserAgent 는 arXiv API 를 요청할 때 사용할 브라우저 유사 User-Agent 이다.
// 기본 Go HTTP 클라이언트 UA 는 일부 프록시에서 차단될 수 있다.
const arxivUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

// Client fetches candidate papers from the arXiv search API.
// Every outbound call goes through the shared IntervalLimiter first.
type Client struct {
	baseURL    string
	maxResults int
	limiter    *IntervalLimiter
	httpClient *http.Client

	// now 는 published 날짜가 없는 엔트리의 기본값으로 쓰인다. 테스트 훅.
	now func() time.Time
}

// NewClient builds an arXiv client. The limiter is shared by reference:
// all clients handed the same limiter observe one process-wide clock.
func NewClient(baseURL string, maxResults int, limiter *IntervalLimiter) *Client {
	return &Client{
		baseURL:    baseURL,
		maxResults: maxResults,
		limiter:    limiter,
		httpClient: &http.Client{Timeout: FETCH_TIMEOUT},
		now:        time.Now,
	}
}

// FetchCandidates runs one search query against arXiv and returns the
// parsed candidates in document order (newest first, as requested via
// sortBy/sortOrder). Issues exactly one HTTP GET per call; a non-2xx
// response is a fatal error for this call and is never retried here.
func (c *Client) FetchCandidates(ctx context.Context, query string) ([]models.CandidatePaper, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildQueryURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("create arxiv request: %w", err)
	}
	req.Header.Set("User-Agent", arxivUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch arxiv feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 본문 내용을 조금 읽어서 에러에 포함하면 원인 파악에 도움이 된다.
		bodySample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return nil, fmt.Errorf("fetch arxiv feed: status code %d, query: %s, body: %s",
			resp.StatusCode, query, string(bodySample))
	}

	cleanedReader, err := cleanControlCharacters(resp.Body)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(cleanedReader)
	if err != nil {
		return nil, fmt.Errorf("parse arxiv feed: %w", err)
	}

	var candidates []models.CandidatePaper
	for _, item := range feed.Items {
		candidate, ok := c.itemToCandidate(item)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (c *Client) buildQueryURL(query string) string {
	params := url.Values{}
	params.Set("search_query", query)
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")
	params.Set("max_results", strconv.Itoa(c.maxResults))
	return c.baseURL + "?" + params.Encode()
}

// itemToCandidate converts one Atom entry to a candidate. Lenient per
// entry: an entry without a usable <id> yields no record (false) while
// other missing fields fall back to defaults so one bad entry never
// breaks the batch.
func (c *Client) itemToCandidate(item *gofeed.Item) (models.CandidatePaper, bool) {
	arxivID := NormalizeArxivID(item.GUID)
	if arxivID == "" {
		return models.CandidatePaper{}, false
	}

	title := collapseWhitespace(item.Title)
	if title == "" {
		title = "Untitled"
	}

	var authors []string
	for _, a := range item.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	publishedAt := c.now()
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		publishedAt = *item.UpdatedParsed
	}

	return models.CandidatePaper{
		ArxivID:     arxivID,
		Title:       title,
		Abstract:    collapseWhitespace(item.Description),
		Authors:     authors,
		Categories:  item.Categories,
		PublishedAt: publishedAt,
		PDFURL:      fmt.Sprintf("https://arxiv.org/pdf/%s.pdf", arxivID),
	}, true
}

var versionSuffixRegex = regexp.MustCompile(`v\d+$`)

// NormalizeArxivID derives the stable external identifier from a raw
// Atom entry id (e.g. "http://arxiv.org/abs/2512.01234v2" -> "2512.01234").
// The version suffix is stripped so that the same paper fetched at
// different versions dedupes to one identifier.
func NormalizeArxivID(raw string) string {
	id := strings.TrimSpace(raw)
	if idx := strings.LastIndex(id, "/abs/"); idx >= 0 {
		id = id[idx+len("/abs/"):]
	}
	return versionSuffixRegex.ReplaceAllString(id, "")
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// collapseWhitespace 는 arXiv 피드의 제목/초록에 들어가는 개행과 연속 공백을
// 단일 공백으로 정리한다.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// XML에서 허용되지 않는 모든 제어 문자 범위입니다 (0x00부터 0x1F까지 중 탭, LF, CR 제외).
var invalidControlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

func cleanControlCharacters(r io.Reader) (io.Reader, error) {
	bodyBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body for cleaning: %w", err)
	}

	cleanedBytes := invalidControlCharRegex.ReplaceAll(bodyBytes, []byte(""))

	return bytes.NewReader(cleanedBytes), nil
}
