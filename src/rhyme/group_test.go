package rhyme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func analyzedWords(text string) []Word {
	words := Tokenize(text)
	for i := range words {
		words[i].transcribe()
	}
	return words
}

func TestThreshold(t *testing.T) {
	cfg := Config{PerfectThreshold: 0.1, SlantThreshold: 0.3}
	final := &Word{LineFinal: true}
	inner := &Word{}

	assert.Equal(t, 0.1, threshold(final, final, cfg))
	assert.Equal(t, 0.3, threshold(inner, inner, cfg))
	assert.InDelta(t, 0.2, threshold(final, inner, cfg), 1e-9)
	assert.InDelta(t, 0.2, threshold(inner, final, cfg), 1e-9)
}

func TestCompare(t *testing.T) {
	words := analyzedWords("cat hat cap dog")
	m := keyDistance{}

	kind, d, ok := compare(&words[0], &words[1], 0, m)
	assert.True(t, ok)
	assert.Equal(t, MatchPerfect, kind)
	assert.Equal(t, 0.0, d)

	kind, _, ok = compare(&words[0], &words[2], 0.35, m)
	assert.True(t, ok)
	assert.Equal(t, MatchSlant, kind)

	_, d, ok = compare(&words[0], &words[3], 0.35, m)
	assert.False(t, ok)
	assert.True(t, d > 0.35)
}

func TestKeyedSkipsUnpronounceable(t *testing.T) {
	words := analyzedWords("hmm cat pfft hat")
	assert.Equal(t, []int{1, 3}, keyed(words, 10))
	assert.Equal(t, []int{1}, keyed(words, 1))
}

func TestGroupRhymesClaimsOnce(t *testing.T) {
	words := analyzedWords("cat\nhat\nsat\nmat")
	groups := groupRhymes(words, DefaultConfig(), keyDistance{})

	assert.Len(t, groups, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, groups[0].Members)
	assert.Len(t, groups[0].Links, 3)
	for i, link := range groups[0].Links {
		assert.Equal(t, i+1, link.Word)
		assert.Equal(t, MatchPerfect, link.Kind)
	}
}

func TestInternalRhymesStayOnTheirLine(t *testing.T) {
	words := analyzedWords("cat dog\nhat log")
	pairs := internalRhymes(words, DefaultConfig(), keyDistance{})
	assert.Empty(t, pairs)
}
