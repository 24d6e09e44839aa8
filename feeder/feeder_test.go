package feeder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-letter/feeder"
)

const arxivFeedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query: search_query=cat:cs.LG</title>
  <id>http://arxiv.org/api/query-result</id>
  <updated>2025-12-04T00:00:00-05:00</updated>
  <entry>
    <id>http://arxiv.org/abs/2512.01234v2</id>
    <updated>2025-12-03T18:30:00Z</updated>
    <published>2025-12-03T18:30:00Z</published>
    <title>Sparse Mixture
  Routing   at Scale</title>
    <summary>  We study sparse
routing.  </summary>
    <author><name>A. Researcher</name></author>
    <author><name>B. Scientist</name></author>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.AI" scheme="http://arxiv.org/schemas/atom"/>
    <link href="http://arxiv.org/abs/2512.01234v2" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2512.01234v2" rel="related" type="application/pdf"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2512.00042v1</id>
    <published>2025-12-02T10:00:00Z</published>
    <title>Entry Without Abstract</title>
    <author><name>C. Author</name></author>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <title>Entry Without Identifier</title>
    <summary>This entry must be dropped.</summary>
    <published>2025-12-01T00:00:00Z</published>
  </entry>
</feed>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *feeder.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return feeder.NewClient(server.URL, 50, feeder.NewIntervalLimiter(0))
}

func TestFetchCandidatesParsesAtomFeed(t *testing.T) {
	var gotQuery url.Values
	var gotUserAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(arxivFeedFixture))
	})

	candidates, err := client.FetchCandidates(context.Background(), "cat:cs.LG")
	require.NoError(t, err)

	assert.Equal(t, "cat:cs.LG", gotQuery.Get("search_query"))
	assert.Equal(t, "submittedDate", gotQuery.Get("sortBy"))
	assert.Equal(t, "descending", gotQuery.Get("sortOrder"))
	assert.Equal(t, "50", gotQuery.Get("max_results"))
	assert.Contains(t, gotUserAgent, "Mozilla/5.0")

	// The entry without <id> is dropped; the others survive in document order.
	require.Len(t, candidates, 2)

	first := candidates[0]
	assert.Equal(t, "2512.01234", first.ArxivID)
	assert.Equal(t, "Sparse Mixture Routing at Scale", first.Title)
	assert.Equal(t, "We study sparse routing.", first.Abstract)
	assert.Equal(t, []string{"A. Researcher", "B. Scientist"}, first.Authors)
	assert.Equal(t, []string{"cs.LG", "cs.AI"}, first.Categories)
	assert.Equal(t, time.Date(2025, 12, 3, 18, 30, 0, 0, time.UTC), first.PublishedAt.UTC())
	assert.Equal(t, "https://arxiv.org/pdf/2512.01234.pdf", first.PDFURL)

	// Missing <summary> yields an empty abstract, not a dropped entry.
	second := candidates[1]
	assert.Equal(t, "2512.00042", second.ArxivID)
	assert.Equal(t, "", second.Abstract)
}

func TestFetchCandidatesDefaultsUnparseableDate(t *testing.T) {
	fixture := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2512.11111v1</id>
    <published>not-a-date</published>
    <title>Undated Entry</title>
  </entry>
</feed>`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixture))
	})

	candidates, err := client.FetchCandidates(context.Background(), "cat:cs.LG")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.WithinDuration(t, time.Now(), candidates[0].PublishedAt, 10*time.Second)
}

func TestFetchCandidatesCleansControlCharacters(t *testing.T) {
	fixture := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<feed xmlns=\"http://www.w3.org/2005/Atom\">\n" +
		"  <entry>\n" +
		"    <id>http://arxiv.org/abs/2512.22222v1</id>\n" +
		"    <published>2025-12-03T00:00:00Z</published>\n" +
		"    <title>Control\x0BCharacter</title>\n" +
		"  </entry>\n" +
		"</feed>"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixture))
	})

	candidates, err := client.FetchCandidates(context.Background(), "cat:cs.LG")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "ControlCharacter", candidates[0].Title)
}

func TestFetchCandidatesNon200IsFatal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	})

	_, err := client.FetchCandidates(context.Background(), "cat:cs.LG")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNormalizeArxivID(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"http://arxiv.org/abs/2512.01234v2", "2512.01234"},
		{"https://arxiv.org/abs/2512.01234", "2512.01234"},
		{"http://arxiv.org/abs/math.GT/0309136v1", "math.GT/0309136"},
		{"2512.01234v10", "2512.01234"},
		{"  http://arxiv.org/abs/2512.01234v1  ", "2512.01234"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, feeder.NormalizeArxivID(tc.raw), "raw=%q", tc.raw)
	}
}
