package parser_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"paper-letter/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arXiv HTML 렌더링과 유사한 구조의 테스트 문서.
const paperHTMLFixture = `<!DOCTYPE html>
<html lang="en">
<head><title>Emergent Planning Behavior in Sparse Reward Agents</title></head>
<body>
<article class="ltx_document">
  <h1 class="ltx_title">Emergent Planning Behavior in Sparse Reward Agents</h1>
  <div class="ltx_abstract">
    <p class="ltx_p">We study how reinforcement learning agents develop internal planning
    representations when rewards are sparse and delayed. Our probing experiments reveal
    structured lookahead in the activations of recurrent policies.</p>
  </div>
  <section class="ltx_section">
    <h2 class="ltx_title">1 Introduction</h2>
    <p class="ltx_p">Sparse reward environments have long been considered a fundamental
    challenge for reinforcement learning, because the agent receives no intermediate
    signal about the quality of its decisions until an episode terminates. Prior work
    has addressed this with reward shaping, curiosity bonuses, and hierarchical
    decompositions of the task.</p>
    <p class="ltx_p">In this paper we take a different approach and ask whether agents
    trained without any such scaffolding nevertheless learn to plan. We train recurrent
    policies on a suite of procedurally generated grid worlds and analyze their hidden
    states with linear probes.</p>
  </section>
  <section class="ltx_section">
    <h2 class="ltx_title">2 Method</h2>
    <p class="ltx_p">Our probing methodology follows the standard linear evaluation
    protocol. For every timestep we record the hidden state of the policy network and
    train a probe to predict the agent's position several steps into the future. High
    probe accuracy at long horizons indicates that the representation encodes a plan
    rather than a purely reactive mapping.</p>
  </section>
</article>
</body>
</html>`

func TestExtractTextCascade(t *testing.T) {
	text, err := parser.ExtractText(paperHTMLFixture)
	require.NoError(t, err)
	require.NotEmpty(t, text)

	assert.Contains(t, text, "Sparse reward environments have long been considered")
	assert.Contains(t, text, "linear evaluation")
}

func TestExtractTextNoContent(t *testing.T) {
	_, err := parser.ExtractText("")
	assert.Error(t, err)
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"nul bytes removed", "before\x00after", "beforeafter"},
		{"replacement chars removed", "broken�encoding", "brokenencoding"},
		{"surrounding whitespace trimmed", "  \n text \t ", "text"},
		{"clean text unchanged", "clean text", "clean text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.SanitizeText(tt.input))
		})
	}
}

func TestExtractFullText(t *testing.T) {
	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(paperHTMLFixture))
	}))
	defer server.Close()

	extractor := &parser.Extractor{
		BaseURL: server.URL + "/html/",
		Client:  server.Client(),
	}

	text, err := extractor.ExtractFullText(context.Background(), "2512.01234")
	require.NoError(t, err)

	assert.Equal(t, "/html/2512.01234v1", gotPath)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, text, "probing methodology")
	assert.GreaterOrEqual(t, len([]rune(text)), 100)
}

func TestExtractFullTextNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "No HTML for this paper", http.StatusNotFound)
	}))
	defer server.Close()

	extractor := &parser.Extractor{
		BaseURL: server.URL + "/html/",
		Client:  server.Client(),
	}

	_, err := extractor.ExtractFullText(context.Background(), "2512.01234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractFullTextTooShort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><p>stub</p></body></html>"))
	}))
	defer server.Close()

	extractor := &parser.Extractor{
		BaseURL: server.URL + "/html/",
		Client:  server.Client(),
	}

	_, err := extractor.ExtractFullText(context.Background(), "2512.01234")
	assert.Error(t, err)
}
