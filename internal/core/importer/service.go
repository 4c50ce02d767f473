package importer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/snoozie-v/dinner-sub000/internal/core/recipe"
	"github.com/snoozie-v/dinner-sub000/internal/core/schema"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/config"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/fetch"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/store"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Failure records one URL the batch could not import, with the reason shown
// to the operator at the end of the run.
type Failure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// Summary is the outcome of one import batch.
type Summary struct {
	Imported int
	Skipped  int
	Failures []Failure
}

// Service drives the sequential import batch: fetch, extract, locate,
// assemble, persist. One URL at a time, paced to stay under the fetch
// boundary's rate limiter.
type Service struct {
	cfg       *config.Config
	fetcher   *fetch.Client
	pageCache fetch.PageCache
	library   *store.Library
	assembler *recipe.Assembler
	limiter   *rate.Limiter
}

// NewService wires the import pipeline. pageCache may be nil (cache
// disabled).
func NewService(cfg *config.Config, fetcher *fetch.Client, pageCache fetch.PageCache, library *store.Library) *Service {
	// One request per configured delay, no burst beyond the first.
	limit := rate.Inf
	if cfg.Fetch.RequestDelay > 0 {
		limit = rate.Every(cfg.Fetch.RequestDelay)
	}

	return &Service{
		cfg:       cfg,
		fetcher:   fetcher,
		pageCache: pageCache,
		library:   library,
		assembler: recipe.NewAssembler(cfg.Import.CustomTags),
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// Run imports every URL in order. Per-URL failures are recorded and the
// batch continues; only a failed health check aborts the run. Each
// successfully assembled recipe is appended and flushed immediately, so a
// terminated run keeps what it already parsed.
func (s *Service) Run(ctx context.Context, urls []string) (*Summary, error) {
	if err := s.fetcher.Health(ctx); err != nil {
		return nil, fmt.Errorf("fetch boundary health check failed: %w", err)
	}

	existing, err := s.library.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	imported := make(map[string]bool, len(existing))
	for _, r := range existing {
		imported[r.SourceURL] = true
	}

	common.LogInfo("starting import",
		zap.Int("urls", len(urls)),
		zap.Int("existing_recipes", len(existing)),
	)

	summary := &Summary{}

	for _, url := range urls {
		if imported[url] {
			common.LogInfo("skipping already-imported url", zap.String("url", url))
			summary.Skipped++
			continue
		}

		r, err := s.importOne(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			common.LogWarn("url failed",
				zap.String("url", url),
				zap.Error(err),
			)
			summary.Failures = append(summary.Failures, Failure{URL: url, Reason: failureReason(err)})
			continue
		}

		if err := s.library.Append(*r); err != nil {
			// The library can gain entries between runs (or from another
			// process); a duplicate at this point is a skip, not a crash.
			if errors.Is(err, common.ErrDuplicateSource) {
				imported[url] = true
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("failed to persist recipe: %w", err)
		}
		imported[url] = true
		summary.Imported++

		common.LogInfo("recipe imported",
			zap.String("id", r.ID),
			zap.String("name", r.Name),
			zap.Int("ingredients", len(r.Ingredients)),
			zap.Strings("meal_types", r.MealTypes),
		)
	}

	common.LogInfo("import finished",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", len(summary.Failures)),
	)

	return summary, nil
}

// importOne runs the full pipeline for a single URL.
func (s *Service) importOne(ctx context.Context, url string) (*recipe.Recipe, error) {
	html, err := s.page(ctx, url)
	if err != nil {
		return nil, err
	}

	candidates := schema.ExtractJSONLD(html)
	if len(candidates) == 0 {
		return nil, common.ErrNoStructuredData
	}

	located := schema.LocateRecipe(candidates)
	if located == nil {
		return nil, common.ErrNoRecipeSchema
	}

	return s.assembler.Assemble(located, url)
}

// page returns the HTML for a URL, consulting the page cache before paying
// for a rate-limited fetch.
func (s *Service) page(ctx context.Context, url string) (string, error) {
	if s.pageCache != nil {
		if html, err := s.pageCache.Get(ctx, url); err == nil {
			return html, nil
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	result, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if s.pageCache != nil {
		if err := s.pageCache.Set(ctx, url, result.HTML); err != nil {
			common.LogWarn("failed to cache page", zap.String("url", url), zap.Error(err))
		}
	}

	return result.HTML, nil
}

// failureReason maps an error to the operator-facing reason string.
func failureReason(err error) string {
	if perr, ok := err.(*common.PipelineError); ok {
		return perr.Message
	}
	return err.Error()
}

// ReadURLFile parses a newline-delimited URL list. Blank lines and
// #-prefixed comments are skipped.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open url file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read url file: %w", err)
	}

	return urls, nil
}
