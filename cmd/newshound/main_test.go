package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storyPage = `<html lang="en"><head>
<title>Rates Held Steady</title>
<meta property="og:title" content="Rates Held Steady">
<meta name="description" content="Central bank holds rates.">
</head><body>
<h1>Rates Held Steady</h1>
<div>
<p>this is about what we should have been doing with all of them here</p>
<p>and now for something that we can all be very happy about indeed today</p>
<p>they said it was not possible but we did it anyway with them all</p>
</div>
</body></html>`

// newSiteServer serves a minimal news site: a homepage with one category,
// a category page with one titled article anchor, and the article itself.
func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`<html><body><a href="/business">Business</a></body></html>`))
		case "/business":
			_, _ = w.Write([]byte(`<html><body><a href="/business/rates-held" title="Rates held">Rates held</a></body></html>`))
		case "/business/rates-held":
			_, _ = w.Write([]byte(storyPage))
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMain_Extract(t *testing.T) {
	t.Parallel()

	srv := newSiteServer(t)

	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), []string{"extract", srv.URL + "/business/rates-held"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var article struct {
		URL   string `json:"url"`
		Title struct {
			Path string `json:"path"`
			Text string `json:"text"`
		} `json:"title"`
		Content struct {
			Text string `json:"text"`
		} `json:"content"`
		Markdown string `json:"markdown"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &article))

	assert.Equal(t, srv.URL+"/business/rates-held", article.URL)
	assert.Equal(t, "/html/head/title", article.Title.Path)
	assert.Equal(t, "Rates Held Steady", article.Title.Text)
	assert.Contains(t, article.Content.Text, "not possible")
	assert.Empty(t, article.Markdown)
}

func TestMain_Extract_Markdown(t *testing.T) {
	t.Parallel()

	srv := newSiteServer(t)

	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), []string{"extract", "--markdown", srv.URL + "/business/rates-held"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var article struct {
		Markdown string `json:"markdown"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &article))
	assert.Contains(t, article.Markdown, "not possible")
}

func TestMain_Process(t *testing.T) {
	t.Parallel()

	srv := newSiteServer(t)

	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), []string{"process", "--rps", "1000", srv.URL + "/"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var groups map[string][]struct {
		URL       string `json:"url"`
		Templated bool   `json:"templated"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &groups))

	host := strings.TrimPrefix(srv.URL, "http://")
	require.Contains(t, groups, host+"/business")
	require.Len(t, groups[host+"/business"], 1)
	assert.Equal(t, srv.URL+"/business/rates-held", groups[host+"/business"][0].URL)
	assert.Contains(t, stderr.String(), "Extracted 1 articles")
}

func TestMain_Verbose(t *testing.T) {
	t.Parallel()

	srv := newSiteServer(t)

	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), []string{"--verbose", "extract", srv.URL + "/business/rates-held"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.Contains(t, stderr.String(), "fetch")
}

func TestMain_NoCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_UnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), []string{"bogus"}, &stdout, &stderr)

	require.Error(t, err)
}
