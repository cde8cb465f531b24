// Package lexicon implements the word index backing every solver: a
// prefix trie built once from a word collection and read-only
// afterwards, so it is safe for unlimited concurrent searches.
package lexicon

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Node is a single trie node. Children are indexed by letter (0 = 'A').
// A terminal node marks the end of a complete word.
type Node struct {
	children [26]*Node
	terminal bool
}

// Child returns the child node for the 0-25 letter index, or nil if no
// word continues with that letter.
func (n *Node) Child(idx int) *Node {
	return n.children[idx]
}

// Terminal returns whether the path from the root to this node spells a
// complete word.
func (n *Node) Terminal() bool {
	return n.terminal
}

// BuildError is returned when a word collection cannot produce a usable
// lexicon.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return "cannot build lexicon: " + e.Reason
}

// Lexicon is an immutable prefix trie over a word collection.
type Lexicon struct {
	root        *Node
	numWords    int
	fingerprint uint64
}

var upperCaser = cases.Upper(language.English)

// Build constructs a Lexicon from the given words. Words are upper-cased
// and deduplicated; entries containing anything but letters are skipped.
// An empty collection, or one with no usable words, is a BuildError.
func Build(words []string) (*Lexicon, error) {
	if len(words) == 0 {
		return nil, &BuildError{Reason: "empty word collection"}
	}
	lex := &Lexicon{root: &Node{}}
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = upperCaser.String(strings.TrimSpace(w))
		if !alpha(w) {
			continue
		}
		if lex.insert(w) {
			normalized = append(normalized, w)
		}
	}
	if lex.numWords == 0 {
		return nil, &BuildError{Reason: "no usable words in collection"}
	}
	// Hash the sorted word set so equal collections get equal
	// fingerprints regardless of input order.
	sort.Strings(normalized)
	h := xxhash.New()
	for _, w := range normalized {
		h.WriteString(w)
		h.WriteString("\n")
	}
	lex.fingerprint = h.Sum64()
	log.Debug().Int("words", lex.numWords).
		Uint64("fingerprint", lex.fingerprint).Msg("built lexicon")
	return lex, nil
}

func alpha(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// insert adds a normalized word, reporting whether it was new.
func (lex *Lexicon) insert(word string) bool {
	node := lex.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'A'
		if node.children[idx] == nil {
			node.children[idx] = &Node{}
		}
		node = node.children[idx]
	}
	if node.terminal {
		return false
	}
	node.terminal = true
	lex.numWords++
	return true
}

// Root returns the root trie node.
func (lex *Lexicon) Root() *Node {
	return lex.root
}

// NumWords returns the number of distinct words in the lexicon.
func (lex *Lexicon) NumWords() int {
	return lex.numWords
}

// Fingerprint returns a hash of the normalized word set. Two lexica
// built from the same collection share a fingerprint; the cache package
// uses it as a key.
func (lex *Lexicon) Fingerprint() uint64 {
	return lex.fingerprint
}

// walk returns the node reached by the given upper-case string, or nil.
func (lex *Lexicon) walk(s string) *Node {
	node := lex.root
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return nil
		}
		node = node.children[s[i]-'A']
		if node == nil {
			return nil
		}
	}
	return node
}

// Contains returns whether the word is in the lexicon. The check is
// case-insensitive.
func (lex *Lexicon) Contains(word string) bool {
	node := lex.walk(strings.ToUpper(word))
	return node != nil && node.terminal
}

// HasPrefix returns whether any word in the lexicon starts with the
// given prefix.
func (lex *Lexicon) HasPrefix(prefix string) bool {
	return lex.walk(strings.ToUpper(prefix)) != nil
}

// Walk calls fn for every word in the lexicon, in alphabetical order.
func (lex *Lexicon) Walk(fn func(word string)) {
	var rec func(n *Node, prefix []byte)
	rec = func(n *Node, prefix []byte) {
		if n.terminal {
			fn(string(prefix))
		}
		for i := 0; i < 26; i++ {
			if n.children[i] != nil {
				rec(n.children[i], append(prefix, byte('A'+i)))
			}
		}
	}
	rec(lex.root, make([]byte, 0, 32))
}
