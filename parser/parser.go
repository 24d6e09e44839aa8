package parser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

const FETCH_TIMEOUT = 60 * time.Second

// minViableTextLength 미만의 추출 결과는 본문으로 취급하지 않는다.
const minViableTextLength = 100

// arXiv HTML 렌더링 페이지 요청용 브라우저 User-Agent. 기본 Go 클라이언트
// UA는 차단될 수 있다.
const htmlUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

// Extractor fetches the arXiv HTML rendering of a paper and distills it
// to plain text. Extraction is best-effort: callers treat any error as
// "no full text available", not as a pipeline failure.
type Extractor struct {
	// BaseURL is the arXiv HTML rendering root. Tests substitute an
	// httptest server here.
	BaseURL string
	Client  *http.Client
}

// NewExtractor returns an Extractor pointed at the public arXiv HTML
// renderings.
func NewExtractor() *Extractor {
	return &Extractor{
		BaseURL: "https://arxiv.org/html/",
		Client: &http.Client{
			Timeout: FETCH_TIMEOUT,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// 리다이렉트 시 User-Agent 유지
				req.Header.Set("User-Agent", htmlUserAgent)
				return nil
			},
		},
	}
}

// ExtractFullText downloads the HTML rendering for an arXiv ID and runs
// the extractor cascade over it. Results shorter than the minimum
// viable length are rejected.
func (e *Extractor) ExtractFullText(ctx context.Context, arxivID string) (string, error) {
	htmlStr, err := e.fetchHTML(ctx, fmt.Sprintf("%s%sv1", e.BaseURL, arxivID))
	if err != nil {
		return "", err
	}

	text, err := ExtractText(htmlStr)
	if err != nil {
		return "", err
	}

	text = SanitizeText(text)
	if n := len([]rune(text)); n < minViableTextLength {
		return "", fmt.Errorf("extracted text too short (%d chars)", n)
	}
	return text, nil
}

func (e *Extractor) fetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", htmlUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch html: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodySample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return "", fmt.Errorf("failed to fetch html: status code %d, url: %s, body: %s",
			resp.StatusCode, url, string(bodySample))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// ExtractText runs the extractor cascade over raw HTML: readability
// first, trafilatura second, GoOse as the last resort. The first
// extractor that yields non-empty text wins.
func ExtractText(htmlStr string) (string, error) {
	if text, err := parseHtmlWithReadability(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if text, err := parseHtmlWithTrafilatura(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if text, err := parseHtmlWithGoose(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	return "", fmt.Errorf("no extractor produced text")
}

func parseHtmlWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

func parseHtmlWithTrafilatura(htmlStr string) (string, error) {
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{})
	if err != nil {
		return "", err
	}
	return article.ContentText, nil
}

func parseHtmlWithGoose(htmlStr string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", err
	}
	return article.CleanedText, nil
}

// SanitizeText strips characters the database rejects: Postgres text
// columns cannot hold NUL, and replacement characters signal a broken
// source encoding.
func SanitizeText(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "�", "")
	return strings.TrimSpace(s)
}
