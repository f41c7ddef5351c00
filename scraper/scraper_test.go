package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devanshioza/skillfolio/scraper"
)

const profilePage = `<!DOCTYPE html>
<html>
<head>
	<title>gopher</title>
	<style>body { color: red; }</style>
</head>
<body>
	<script>console.log("tracking");</script>
	<h1>gopher</h1>
	<p>Building distributed systems in Go.</p>
	<noscript>Enable JavaScript</noscript>
</body>
</html>`

func TestScrapeExtractsVisibleText(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(profilePage))
	}))
	defer srv.Close()

	s := scraper.New(srv.Client())
	text := s.Scrape(context.Background(), srv.URL)

	require.Contains(t, text, "gopher")
	require.Contains(t, text, "Building distributed systems in Go.")
	require.NotContains(t, text, "console.log", "script content must be stripped")
	require.NotContains(t, text, "color: red", "style content must be stripped")
	require.NotContains(t, text, "Enable JavaScript", "noscript content must be stripped")

	// Some sites block non-browser agents.
	require.Contains(t, gotUserAgent, "Mozilla/5.0")
}

func TestScrapeEmptyURL(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	s := scraper.New(srv.Client())
	require.Equal(t, "", s.Scrape(context.Background(), ""))
	require.Zero(t, requests, "an empty URL must not trigger a network call")
}

func TestScrapeSwallowsFailures(t *testing.T) {
	t.Run("Non-2xx Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "blocked", http.StatusForbidden)
		}))
		defer srv.Close()

		s := scraper.New(srv.Client())
		require.Equal(t, "", s.Scrape(context.Background(), srv.URL))
	})

	t.Run("Unreachable Host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		s := scraper.New(nil)
		require.Equal(t, "", s.Scrape(context.Background(), url))
	})

	t.Run("Malformed URL", func(t *testing.T) {
		s := scraper.New(nil)
		require.Equal(t, "", s.Scrape(context.Background(), "://not-a-url"))
	})
}
