package blog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogmood/internal/domain"
)

func TestExtractorReadPost(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`
		<html><body>
		  <article class="post">
		    <div class="box-article">今日は楽しかった。少し疲れた。</div>
		  </article>
		</body></html>`))
	}))
	defer server.Close()

	ex := NewExtractor(server.Client(), "blogmood-test", nil)

	text, found, err := ex.ReadPost(context.Background(), domain.PostRef{URL: server.URL + "/post/1"})
	if err != nil {
		t.Fatalf("ReadPost error: %v", err)
	}
	if !found {
		t.Fatal("expected article body to be found")
	}
	if text != "今日は楽しかった。少し疲れた。" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractorMissingArticleContainer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div>no article here</div></body></html>`))
	}))
	defer server.Close()

	ex := NewExtractor(server.Client(), "blogmood-test", nil)

	_, found, err := ex.ReadPost(context.Background(), domain.PostRef{URL: server.URL})
	if err != nil {
		t.Fatalf("missing container must not be an error: %v", err)
	}
	if found {
		t.Fatal("expected found=false without article container")
	}
}

func TestExtractorMissingBodyContainer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<article class="post"><div class="something-else">x</div></article>`))
	}))
	defer server.Close()

	ex := NewExtractor(server.Client(), "blogmood-test", nil)

	_, found, err := ex.ReadPost(context.Background(), domain.PostRef{URL: server.URL})
	if err != nil {
		t.Fatalf("missing body must not be an error: %v", err)
	}
	if found {
		t.Fatal("expected found=false without body container")
	}
}

func TestExtractorTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ex := NewExtractor(server.Client(), "blogmood-test", nil)

	_, _, err := ex.ReadPost(context.Background(), domain.PostRef{URL: server.URL})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}
