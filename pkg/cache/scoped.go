package cache

// ScopedKeyer prefixes every key of an inner Keyer, so that several
// tenants or environments can share one backend.
//
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// the DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// IndexKey generates a prefixed index key.
func (k *ScopedKeyer) IndexKey(themeHash string, opts IndexKeyOpts) string {
	return k.prefix + k.inner.IndexKey(themeHash, opts)
}

// RankKey generates a prefixed rank key.
func (k *ScopedKeyer) RankKey(themeHash string) string {
	return k.prefix + k.inner.RankKey(themeHash)
}

// TranslationKey generates a prefixed translation key.
func (k *ScopedKeyer) TranslationKey(themeHash, text string, opts TranslationKeyOpts) string {
	return k.prefix + k.inner.TranslationKey(themeHash, text, opts)
}
