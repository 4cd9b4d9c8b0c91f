package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const moviesJSON = `[{"title":"The Matrix","price":10,"screen":1,"free_seats":100}]`

func moviesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(moviesJSON))
}

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatalf("write gzip: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return buf.Bytes()
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(r)
	if err != nil {
		t.Fatalf("new gzip reader: %v", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	return string(data)
}

func TestGzipMiddleware_CompressesResponseForGzipClient(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := httptest.NewRecorder()
	GzipMiddleware(http.HandlerFunc(moviesHandler)).ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	if ce := res.Header.Get("Content-Encoding"); ce != "gzip" {
		t.Fatalf("content-encoding = %q, want gzip", ce)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type = %q, want application/json", ct)
	}
	if got := gunzip(t, res.Body); got != moviesJSON {
		t.Fatalf("body = %q, want %q", got, moviesJSON)
	}
}

func TestGzipMiddleware_PlainClientGetsPlainBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)

	rec := httptest.NewRecorder()
	GzipMiddleware(http.HandlerFunc(moviesHandler)).ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if ce := res.Header.Get("Content-Encoding"); ce != "" {
		t.Fatalf("content-encoding = %q, want none", ce)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(data) != moviesJSON {
		t.Fatalf("body = %q, want %q", data, moviesJSON)
	}
}

func TestGzipMiddleware_DecompressesRequestBody(t *testing.T) {
	const orderJSON = `{"screen":1,"showtime":"19:30","tickets":2}`

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request body: %v", err)
		}
		seen = string(body)
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(gzipBytes(t, orderJSON)))
	req.Header.Set("Content-Encoding", "gzip")

	rec := httptest.NewRecorder()
	GzipMiddleware(next).ServeHTTP(rec, req)

	if rec.Result().StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusCreated)
	}
	if seen != orderJSON {
		t.Fatalf("handler saw %q, want %q", seen, orderJSON)
	}
}

func TestGzipMiddleware_BadCompressedBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler should not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")

	rec := httptest.NewRecorder()
	GzipMiddleware(next).ServeHTTP(rec, req)

	if rec.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusBadRequest)
	}
}
