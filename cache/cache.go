// Package cache shares built lexicons between solvers. Building a trie
// over a few hundred thousand words is the expensive step of
// construction, so repeated solver setups against the same word
// collection reuse the cached object, keyed by the collection's
// fingerprint.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"github.com/openwordgames/wordsolver/lexicon"
)

type cache struct {
	sync.Mutex
	objects map[uint64]*lexicon.Lexicon
}

var globalLexiconCache = &cache{objects: map[uint64]*lexicon.Lexicon{}}

// Key computes the cache key for a raw word collection. It hashes the
// words as given; order matters, so callers with identical lists get
// cache hits and everything else falls through to a fresh build.
func Key(words []string) uint64 {
	h := xxhash.New()
	for _, w := range words {
		h.WriteString(w)
		h.WriteString("\n")
	}
	return h.Sum64()
}

// Lexicon returns a built lexicon for the word collection, building and
// caching it on first use.
func Lexicon(words []string) (*lexicon.Lexicon, error) {
	key := Key(words)
	c := globalLexiconCache
	c.Lock()
	defer c.Unlock()
	if lex, ok := c.objects[key]; ok {
		log.Debug().Uint64("key", key).Msg("lexicon cache hit")
		return lex, nil
	}
	lex, err := lexicon.Build(words)
	if err != nil {
		return nil, err
	}
	c.objects[key] = lex
	log.Debug().Uint64("key", key).Msg("loaded lexicon into cache")
	return lex, nil
}
