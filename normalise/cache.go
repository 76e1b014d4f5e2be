package normalise

import (
	"github.com/hashicorp/golang-lru"
	"github.com/hscells/mutcompare"
	"github.com/pkg/errors"
)

// Cached memoises another normaliser. Annotation sets repeat the same mention text many times within and across
// documents, and every rule is a regular expression pass over the whole string.
type Cached struct {
	n     mutcompare.Normaliser
	cache *lru.Cache
}

// NewCached wraps n with an LRU cache holding at most size entries.
func NewCached(n mutcompare.Normaliser, size int) (Cached, error) {
	c, err := lru.New(size)
	if err != nil {
		return Cached{}, errors.Wrap(err, "could not create normalisation cache")
	}
	return Cached{n: n, cache: c}, nil
}

// Normalise returns the cached normalisation of text, computing it on a miss.
func (c Cached) Normalise(text string) string {
	if v, ok := c.cache.Get(text); ok {
		return v.(string)
	}
	s := c.n.Normalise(text)
	c.cache.Add(text, s)
	return s
}

// Len is the number of cached entries.
func (c Cached) Len() int {
	return c.cache.Len()
}
