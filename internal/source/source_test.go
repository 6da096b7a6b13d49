package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"
)

func parse(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractPrefersArticle(t *testing.T) {
	page := `<html><body>
		<nav>Home | About</nav>
		<article><h1>The Bridge</h1><p>It opened in 1932.</p></article>
		<footer>Copyright</footer>
	</body></html>`

	got := Extract(parse(t, page))
	if got != "The Bridge It opened in 1932." {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractSkipsChrome(t *testing.T) {
	page := `<html><body>
		<script>var x = 1;</script>
		<style>p { color: red }</style>
		<header>Site Title</header>
		<aside>Related links</aside>
		<p>Only   this

		text   survives.</p>
	</body></html>`

	got := Extract(parse(t, page))
	if got != "Only this text survives." {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractCapsLength(t *testing.T) {
	long := strings.Repeat("word ", 5000)
	got := Extract(parse(t, "<html><body><p>"+long+"</p></body></html>"))
	if len([]rune(got)) != maxSourceChars {
		t.Errorf("len = %d, want cap at %d", len([]rune(got)), maxSourceChars)
	}
}

func TestFetchExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "Aontas/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Write([]byte(`<html><body><article><p>Fetched content.</p></article></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	got, err := f.FetchExtract(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Fetched content." {
		t.Errorf("FetchExtract() = %q", got)
	}
}

func TestFetchExtractErrors(t *testing.T) {
	f := NewFetcher(5 * time.Second)

	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		if _, err := f.FetchExtract(context.Background(), srv.URL); err == nil {
			t.Fatal("expected error for 403 response")
		}
	})

	t.Run("empty page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body><script>only();</script></body></html>`))
		}))
		defer srv.Close()

		_, err := f.FetchExtract(context.Background(), srv.URL)
		if err == nil || !strings.Contains(err.Error(), "no usable source text") {
			t.Fatalf("err = %v", err)
		}
	})
}
