package lexicon

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndContains(t *testing.T) {
	lex, err := Build([]string{"cat", "CATS", "Dog"})
	require.NoError(t, err)
	assert.Equal(t, 3, lex.NumWords())

	assert.True(t, lex.Contains("CAT"))
	assert.True(t, lex.Contains("cat"))
	assert.True(t, lex.Contains("DOG"))
	assert.False(t, lex.Contains("CA"))
	assert.False(t, lex.Contains("CATSS"))
	assert.False(t, lex.Contains(""))
}

func TestHasPrefix(t *testing.T) {
	lex, err := Build([]string{"CAT", "CATS"})
	require.NoError(t, err)
	assert.True(t, lex.HasPrefix("C"))
	assert.True(t, lex.HasPrefix("CAT"))
	assert.True(t, lex.HasPrefix("cats"))
	assert.False(t, lex.HasPrefix("CATSUP"))
	assert.False(t, lex.HasPrefix("X"))
}

func TestBuildDeduplicates(t *testing.T) {
	lex, err := Build([]string{"CAT", "cat", "Cat", "DOG"})
	require.NoError(t, err)
	assert.Equal(t, 2, lex.NumWords())
}

func TestBuildSkipsMalformedWords(t *testing.T) {
	lex, err := Build([]string{"CAT", "DON'T", "A B", "", "DOG"})
	require.NoError(t, err)
	assert.Equal(t, 2, lex.NumWords())
	assert.False(t, lex.Contains("DON'T"))
}

func TestBuildEmptyCollection(t *testing.T) {
	_, err := Build(nil)
	var be *BuildError
	require.ErrorAs(t, err, &be)

	// A collection with no usable word at all is just as empty.
	_, err = Build([]string{"", "123"})
	require.ErrorAs(t, err, &be)
}

func TestFingerprintIgnoresOrder(t *testing.T) {
	a, err := Build([]string{"CAT", "DOG", "EMU"})
	require.NoError(t, err)
	b, err := Build([]string{"EMU", "CAT", "DOG"})
	require.NoError(t, err)
	c, err := Build([]string{"CAT", "DOG"})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestWalkVisitsEveryWord(t *testing.T) {
	words := []string{"CAT", "CATS", "DOG", "EMU"}
	lex, err := Build(words)
	require.NoError(t, err)

	visited := []string{}
	lex.Walk(func(word string) {
		visited = append(visited, word)
	})
	sort.Strings(visited)
	assert.Equal(t, words, visited)
}

func TestChildTraversal(t *testing.T) {
	lex, err := Build([]string{"AT"})
	require.NoError(t, err)
	node := lex.Root().Child(0)
	require.NotNil(t, node)
	assert.False(t, node.Terminal())
	node = node.Child(int('T' - 'A'))
	require.NotNil(t, node)
	assert.True(t, node.Terminal())
	assert.Nil(t, node.Child(0))
}
