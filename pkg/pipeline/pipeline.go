// Package pipeline wires theme resolution, index construction and the
// translation engine together, with caching.
//
// The CLI and the HTTP API both go through a [Runner], so that indices are
// built and cached the same way everywhere:
//
//  1. Load: hash the resolved theme, then fetch or build the forward and
//     reverse indices and the authoring-order ranks
//  2. Translate, Sort, Diff, Classes: run against the loaded [Indexes]
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	ix, err := runner.Load(ctx, th, pipeline.LoadOptions{})
//	if err != nil {
//	    return err
//	}
//	tr, err := runner.Translate(ctx, ix, "display: flex; margin-top: 8px", translate.DefaultOptions())
//	fmt.Println(tr.Classes) // "flex mt-2"
package pipeline

import (
	"slices"
	"time"

	"github.com/matzehuels/figwind/pkg/cache"
	"github.com/matzehuels/figwind/pkg/index"
	"github.com/matzehuels/figwind/pkg/order"
	"github.com/matzehuels/figwind/pkg/theme"
)

// LoadOptions control index loading.
type LoadOptions struct {
	// Index options. The zero value means index.DefaultOptions().
	Index *index.Options `json:"index,omitempty"`
	// Refresh rebuilds the indices even when they are cached.
	Refresh bool `json:"refresh,omitempty"`
}

func (o LoadOptions) indexOptions() index.Options {
	if o.Index == nil {
		return index.DefaultOptions()
	}
	return *o.Index
}

func keyOpts(o index.Options) cache.IndexKeyOpts {
	return cache.IndexKeyOpts{
		Ignore:       slices.Clone(o.Ignore),
		SkipPrefixes: slices.Clone(o.SkipPrefixes),
		Denylist:     slices.Clone(o.Denylist),
	}
}

// Indexes is everything built from one theme. It is immutable once loaded
// and safe to share between goroutines.
type Indexes struct {
	Theme     *theme.Theme
	ThemeHash string
	Index     *index.Index
	Rank      order.Rank

	// IndexOptions are the options Index was built with.
	IndexOptions index.Options

	// CacheInfo tracks which parts came from the cache.
	CacheInfo CacheInfo
	// Stats contains timing and size information.
	Stats Stats
}

// Breakpoints returns the theme's breakpoint names in ascending width.
func (ix *Indexes) Breakpoints() []string {
	return ix.Theme.Breakpoints()
}

// CacheInfo tracks cache hits for each loaded part.
type CacheInfo struct {
	IndexHit bool `json:"index_hit"`
	RankHit  bool `json:"rank_hit"`
}

// Stats contains load statistics.
type Stats struct {
	ClassCount   int           `json:"class_count"`
	ReverseCount int           `json:"reverse_count"`
	IndexTime    time.Duration `json:"index_time"`
	RankTime     time.Duration `json:"rank_time"`
}

// Translation is the result of one translation.
type Translation struct {
	Classes string `json:"classes"`
	// Matched is false when nothing in the input could be translated.
	Matched bool `json:"matched"`
	Cached  bool `json:"-"`
}
