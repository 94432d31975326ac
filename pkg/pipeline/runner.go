package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/figwind/pkg/cache"
	"github.com/matzehuels/figwind/pkg/decl"
	"github.com/matzehuels/figwind/pkg/errors"
	"github.com/matzehuels/figwind/pkg/index"
	"github.com/matzehuels/figwind/pkg/observability"
	"github.com/matzehuels/figwind/pkg/order"
	"github.com/matzehuels/figwind/pkg/plugin"
	"github.com/matzehuels/figwind/pkg/responsive"
	"github.com/matzehuels/figwind/pkg/theme"
	"github.com/matzehuels/figwind/pkg/translate"
)

// Runner encapsulates index loading and translation with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Engine *translate.Engine
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Engine: translate.New(translate.DefaultConfig()),
	}
}

// Load builds or fetches every index of th.
func (r *Runner) Load(ctx context.Context, th *theme.Theme, opts LoadOptions) (*Indexes, error) {
	hash, err := cache.HashJSON(th)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash theme")
	}
	ix := &Indexes{Theme: th, ThemeHash: hash, IndexOptions: opts.indexOptions()}

	start := time.Now()
	ix.Index, ix.CacheInfo.IndexHit, err = r.IndexWithCacheInfo(ctx, th, hash, opts)
	if err != nil {
		return nil, err
	}
	ix.Stats.IndexTime = time.Since(start)
	ix.Stats.ClassCount = len(ix.Index.Forward)
	ix.Stats.ReverseCount = len(ix.Index.Reverse)

	start = time.Now()
	ix.Rank, ix.CacheInfo.RankHit, err = r.RankWithCacheInfo(ctx, th, hash, opts)
	if err != nil {
		return nil, err
	}
	ix.Stats.RankTime = time.Since(start)

	r.Logger.Info("loaded indices",
		"classes", ix.Stats.ClassCount,
		"reverse", ix.Stats.ReverseCount,
		"index_cached", ix.CacheInfo.IndexHit,
		"rank_cached", ix.CacheInfo.RankHit,
		"duration", ix.Stats.IndexTime+ix.Stats.RankTime)
	return ix, nil
}

// IndexWithCacheInfo builds the forward and reverse indices with caching
// and reports whether they came from the cache.
func (r *Runner) IndexWithCacheInfo(ctx context.Context, th *theme.Theme, themeHash string, opts LoadOptions) (*index.Index, bool, error) {
	iopts := opts.indexOptions()
	cacheKey := r.Keyer.IndexKey(themeHash, keyOpts(iopts))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var idx index.Index
			if err := json.Unmarshal(data, &idx); err == nil {
				observability.Cache().OnCacheHit(ctx, "index")
				return &idx, true, nil
			}
			r.Logger.Debug("discarding undecodable index", "key", cacheKey)
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", cacheKey, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "index")
	}

	observability.Pipeline().OnIndexStart(ctx, themeHash)
	start := time.Now()
	idx, err := index.Build(th, iopts)
	n := 0
	if idx != nil {
		n = len(idx.Forward)
	}
	observability.Pipeline().OnIndexComplete(ctx, themeHash, n, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	r.store(ctx, "index", cacheKey, idx, cache.TTLIndex)
	return idx, false, nil
}

// RankWithCacheInfo builds the authoring-order ranks with caching and
// reports whether they came from the cache.
func (r *Runner) RankWithCacheInfo(ctx context.Context, th *theme.Theme, themeHash string, opts LoadOptions) (order.Rank, bool, error) {
	cacheKey := r.Keyer.RankKey(themeHash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var rank order.Rank
			if err := json.Unmarshal(data, &rank); err == nil {
				observability.Cache().OnCacheHit(ctx, "rank")
				return rank, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "rank")
	}

	rank, err := order.Build(th)
	if err != nil {
		return nil, false, err
	}
	r.store(ctx, "rank", cacheKey, rank, cache.TTLRank)
	return rank, false, nil
}

func (r *Runner) store(ctx context.Context, keyType, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		r.Logger.Warn("encode cache entry", "type", keyType, "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Translate maps a declaration block to classnames.
func (r *Runner) Translate(ctx context.Context, ix *Indexes, text string, opts translate.Options) (Translation, error) {
	if err := errors.ValidateDeclarations(text); err != nil {
		return Translation{}, err
	}

	cacheKey := r.Keyer.TranslationKey(ix.ThemeHash, text, cache.TranslationKeyOpts{
		OmitDefaults:     opts.OmitDefaults,
		OpacityShorthand: opts.OpacityShorthand,
		SnapToNearest:    opts.SnapToNearest,
		Index:            keyOpts(ix.IndexOptions),
	})
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var tr Translation
		if err := json.Unmarshal(data, &tr); err == nil {
			observability.Cache().OnCacheHit(ctx, "translate")
			tr.Cached = true
			return tr, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "translate")

	start := time.Now()
	classes, ok := r.Engine.Translate(text, ix.Index.Reverse, opts)
	block, anomalies := decl.Parse(text)
	observability.Pipeline().OnTranslate(ctx, len(block), ok, time.Since(start))
	for _, a := range anomalies {
		r.Logger.Debug("skipped declaration", "offset", a.Offset, "reason", a.Message)
	}

	tr := Translation{Classes: classes, Matched: ok}
	r.store(ctx, "translate", cacheKey, tr, cache.TTLTranslation)
	return tr, nil
}

// Sort orders classnames by authoring order.
func (r *Runner) Sort(ix *Indexes, tokens string) (string, error) {
	if err := errors.ValidateTokens(tokens); err != nil {
		return "", err
	}
	return order.Sort(tokens, ix.Rank), nil
}

// Diff merges per-breakpoint class lists into responsive overrides.
// inputs[0] is the base list and inputs[i] applies from breakpoints[i-1]
// on, so there must be exactly one more input than breakpoints. Every
// breakpoint must be defined by the theme.
func (r *Runner) Diff(ix *Indexes, inputs []string, breakpoints []string) (string, error) {
	if len(inputs) != len(breakpoints)+1 {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"need one more input than breakpoints, got %d inputs and %d breakpoints", len(inputs), len(breakpoints))
	}
	known := ix.Breakpoints()
	for _, bp := range breakpoints {
		if err := errors.ValidateBreakpoint(bp); err != nil {
			return "", err
		}
		if !slices.Contains(known, bp) {
			return "", errors.New(errors.ErrCodeInvalidInput, "unknown breakpoint %q (have %v)", bp, known)
		}
	}

	lists := make([][]string, len(inputs))
	for i, in := range inputs {
		if err := errors.ValidateTokens(in); err != nil {
			return "", fmt.Errorf("input %d: %w", i, err)
		}
		lists[i] = strings.Fields(in)
	}
	return responsive.Diff(lists, ix.Index.Forward, breakpoints), nil
}

// Classes lists the classnames a plugin contributes. A plugin that exists
// but is disabled or ignored yields an empty list.
func (r *Runner) Classes(ix *Indexes, name string) ([]string, error) {
	if _, err := plugin.Lookup(name); err != nil {
		return nil, err
	}
	return ix.Index.Classes(name), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
