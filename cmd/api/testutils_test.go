package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviesapi/proj/internal/config"
	"moviesapi/proj/internal/domain/models"
	"moviesapi/proj/internal/storage/memory"

	"github.com/stretchr/testify/require"
)

var testOrigins = []string{"http://localhost:5500", "https://movies.com", "http://midu.dev"}

func testConfig() *config.Config {
	return &config.Config{
		CORS:       config.CORS{AllowedOrigins: testOrigins},
		Validation: config.Validation{MinYear: 1900, MaxYear: 2024},
		Limiter:    config.Limiter{Rps: 20, Burst: 5},
	}
}

func testSeed() []models.Movie {
	return []models.Movie{
		{ID: "1", Title: "A", Year: 2000, Duration: 100, Rate: 7, Poster: "http://x/p.png", Genre: []string{"action"}},
		{ID: "2", Title: "B", Year: 1995, Duration: 120, Rate: 8.5, Poster: "http://x/b.png", Genre: []string{"Drama", "Terror"}},
	}
}

// NewTestApplication builds an application around its own store. A nil
// seed uses testSeed.
func NewTestApplication(seed []models.Movie, t *testing.T) (*Application, *memory.MovieStore) {
	t.Helper()
	if seed == nil {
		seed = testSeed()
	}
	store := memory.New(seed)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApplication(testConfig(), log, store), store
}

type request struct {
	method  string
	path    string
	body    string
	headers map[string]string
}

func doRequest(t *testing.T, handler http.Handler, req request) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}
	r := httptest.NewRequest(req.method, req.path, body)
	if req.body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.headers {
		r.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, r)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &v), recorder.Body.String())
	return v
}
