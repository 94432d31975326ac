// Package cache stores serialized indices so that a theme is enumerated
// once per configuration rather than once per invocation.
//
// Building the forward and reverse indices walks every plugin over every
// scale of a theme. The result depends only on the resolved theme and the
// index options, so it is cached under a content hash of both:
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.NewDefaultKeyer().IndexKey(themeHash, cache.IndexKeyOpts{...})
//	data, hit, err := c.Get(ctx, key)
//
// Backends:
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for multi-instance servers
//   - [MongoCache]: document store with a TTL index
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (hit == false, err == nil).
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Default entry lifetimes.
const (
	// TTLIndex covers forward/reverse indices. They only change when the
	// theme or the catalog changes, and both are part of the key.
	TTLIndex = 30 * 24 * time.Hour

	// TTLRank covers authoring-order rank indices.
	TTLRank = 30 * 24 * time.Hour

	// TTLTranslation covers single translation results.
	TTLTranslation = 7 * 24 * time.Hour
)

// IndexKeyOpts are the index build options that change the result.
type IndexKeyOpts struct {
	Ignore       []string `json:"ignore,omitempty"`
	SkipPrefixes []string `json:"skip_prefixes,omitempty"`
	Denylist     []string `json:"denylist,omitempty"`
}

// TranslationKeyOpts are the translation options that change the result,
// including the options of the index translated against.
type TranslationKeyOpts struct {
	OmitDefaults     bool         `json:"omit_defaults"`
	OpacityShorthand bool         `json:"opacity_shorthand"`
	SnapToNearest    bool         `json:"snap_to_nearest"`
	Index            IndexKeyOpts `json:"index"`
}

// Keyer derives cache keys. Implementations must be deterministic.
type Keyer interface {
	// IndexKey keys the forward and reverse indices of a theme.
	IndexKey(themeHash string, opts IndexKeyOpts) string

	// RankKey keys the authoring-order rank index of a theme.
	RankKey(themeHash string) string

	// TranslationKey keys one translated declaration block.
	TranslationKey(themeHash, text string, opts TranslationKeyOpts) string
}

// DefaultKeyer produces "kind:version:sha256" keys. Version is bumped when
// the serialized form or the plugin catalog changes.
type DefaultKeyer struct {
	Version string
}

// KeyVersion is the version DefaultKeyer uses when none is set.
const KeyVersion = "v1"

// NewDefaultKeyer returns a keyer using KeyVersion.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{Version: KeyVersion}
}

func (k *DefaultKeyer) version() string {
	if k.Version == "" {
		return KeyVersion
	}
	return k.Version
}

// IndexKey implements Keyer.
func (k *DefaultKeyer) IndexKey(themeHash string, opts IndexKeyOpts) string {
	return hashKey("index:"+k.version(), themeHash, opts)
}

// RankKey implements Keyer.
func (k *DefaultKeyer) RankKey(themeHash string) string {
	return hashKey("rank:"+k.version(), themeHash)
}

// TranslationKey implements Keyer.
func (k *DefaultKeyer) TranslationKey(themeHash, text string, opts TranslationKeyOpts) string {
	return hashKey("translate:"+k.version(), themeHash, text, opts)
}

var (
	_ Keyer   = (*DefaultKeyer)(nil)
	_ Clearer = (*FileCache)(nil)
	_ Clearer = (*RedisCache)(nil)
	_ Clearer = (*MongoCache)(nil)
)
