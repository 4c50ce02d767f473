package importer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/config"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/fetch"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chiliPage = `<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Recipe",
  "name": "Weeknight Chili",
  "recipeYield": "6 servings",
  "recipeIngredient": ["1 lb ground beef", "2 cans kidney beans", "1 onion, diced"],
  "recipeInstructions": "Brown the beef.\nAdd everything else.\nSimmer."
}
</script>
</head><body></body></html>`

const noRecipePage = `<html><head>
<script type="application/ld+json">{"@type": "Organization", "name": "Example"}</script>
</head></html>`

const noSchemaPage = `<html><body>plain page</body></html>`

func fetchBoundary(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/fetch", func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		html, ok := pages[url]
		if !ok {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"html":   html,
			"url":    url,
			"status": 200,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testService(t *testing.T, server *httptest.Server) (*Service, *store.Library) {
	t.Helper()

	cfg := &config.Config{
		Fetch: config.FetchConfig{
			Endpoint: server.URL,
			Timeout:  5 * time.Second,
		},
		Library: config.LibraryConfig{
			Path: filepath.Join(t.TempDir(), "recipes.json"),
		},
	}

	library := store.NewLibrary(cfg.Library.Path)
	return NewService(cfg, fetch.NewClient(&cfg.Fetch), nil, library), library
}

func TestServiceRun(t *testing.T) {
	server := fetchBoundary(t, map[string]string{
		"https://example.com/chili":   chiliPage,
		"https://example.com/empty":   noSchemaPage,
		"https://example.com/nothing": noRecipePage,
	})
	service, library := testService(t, server)

	summary, err := service.Run(context.Background(), []string{
		"https://example.com/chili",
		"https://example.com/empty",
		"https://example.com/nothing",
		"https://example.com/unreachable",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 0, summary.Skipped)
	require.Len(t, summary.Failures, 3)
	assert.Equal(t, "no JSON-LD found", summary.Failures[0].Reason)
	assert.Equal(t, "no Recipe-typed schema found", summary.Failures[1].Reason)
	assert.Equal(t, "page fetch failed", summary.Failures[2].Reason)

	recipes, err := library.Load()
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Weeknight Chili", recipes[0].Name)
	assert.Equal(t, 6, recipes[0].Servings.Default)
	assert.Equal(t, "https://example.com/chili", recipes[0].SourceURL)
	assert.Len(t, recipes[0].Ingredients, 3)
}

func TestServiceRunSkipsAlreadyImported(t *testing.T) {
	server := fetchBoundary(t, map[string]string{
		"https://example.com/chili": chiliPage,
	})
	service, library := testService(t, server)

	urls := []string{"https://example.com/chili"}

	first, err := service.Run(context.Background(), urls)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Imported)

	second, err := service.Run(context.Background(), urls)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 1, second.Skipped)

	recipes, err := library.Load()
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}

func TestServiceRunHealthCheckFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	service, _ := testService(t, server)

	_, err := service.Run(context.Background(), []string{"https://example.com/chili"})
	assert.Error(t, err)
}

func TestReadURLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := `# favorites
https://example.com/a

https://example.com/b
  # commented out
  https://example.com/c
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	urls, err := ReadURLFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}, urls)
}

func TestReadURLFileMissing(t *testing.T) {
	_, err := ReadURLFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
