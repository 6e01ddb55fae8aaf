// Package dict holds the curated exception table of pronunciations consulted
// before any letter-to-sound rules are applied.
package dict

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/exceptions.txt
var exceptionsFile string

var pronunciations map[string][]string

// Lookup returns the curated phoneme sequence for word. Matching is exact
// and case-insensitive; the returned slice is a copy.
func Lookup(word string) ([]string, bool) {
	phonemes, ok := pronunciations[strings.ToLower(word)]
	if !ok {
		return nil, false
	}
	result := make([]string, len(phonemes))
	copy(result, phonemes)
	return result, true
}

func IsWord(word string) bool {
	_, ok := pronunciations[strings.ToLower(word)]
	return ok
}

// Words lists every entry of the table in alphabetical order.
func Words() []string {
	words := make([]string, 0, len(pronunciations))
	for word := range pronunciations {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

func init() {
	pronunciations = make(map[string][]string)

	lines := strings.Split(exceptionsFile, "\n")
	for lineNum, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			panic(fmt.Errorf("could not parse line %d: expected a word and at least one phoneme", lineNum+1))
		}
		word := strings.ToLower(tokens[0])
		if _, dup := pronunciations[word]; dup {
			panic(fmt.Errorf("could not parse line %d: duplicate entry %q", lineNum+1, word))
		}
		pronunciations[word] = tokens[1:]
	}
}
