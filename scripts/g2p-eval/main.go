// g2p-eval measures the letter-to-sound rules against a CMU-format lexicon:
// how often they get the syllable count and the rhyme key right, and which
// words they miss by the widest margin.
//
//	g2p-eval [cmudict-file]
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kalexmills/rhyme-hammer/src/rhyme"
)

const Filename = "data/cmudict-0.7b.txt"

// worst is how many of the largest mismatches get printed.
const worst = 25

type Entry struct {
	word     string
	phonemes []rhyme.Phoneme
}

type mismatch struct {
	word             string
	expected, actual rhyme.RhymeKey
	distance         float64
}

func main() {
	filename := Filename
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}
	entries, err := readFile(filename)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}

	var (
		total, syllablesOK, keysOK, keysClose int
		misses                                []mismatch
	)
	for _, entry := range entries {
		expectedSyls, expectedStress := rhyme.Syllabify(entry.phonemes)
		expected, ok := rhyme.KeyOf(expectedSyls, expectedStress)
		if !ok {
			continue
		}
		total++

		actualSyls, actualStress := rhyme.Syllabify(rhyme.Convert(entry.word))
		if len(actualSyls) == len(expectedSyls) {
			syllablesOK++
		}
		actual, ok := rhyme.KeyOf(actualSyls, actualStress)
		if !ok {
			misses = append(misses, mismatch{entry.word, expected, actual, 1})
			continue
		}
		d := rhyme.Distance(expected, actual)
		switch {
		case d == 0:
			keysOK++
			keysClose++
		case d <= rhyme.DefaultPerfectThreshold:
			keysClose++
		default:
			misses = append(misses, mismatch{entry.word, expected, actual, d})
		}
	}
	if total == 0 {
		fmt.Println("no entries found in", filename)
		os.Exit(1)
	}

	fmt.Printf("words:           %d\n", total)
	fmt.Printf("syllable counts: %.1f%%\n", 100*float64(syllablesOK)/float64(total))
	fmt.Printf("rhyme keys:      %.1f%% exact, %.1f%% within %.2f\n",
		100*float64(keysOK)/float64(total), 100*float64(keysClose)/float64(total), rhyme.DefaultPerfectThreshold)

	sort.SliceStable(misses, func(i, j int) bool {
		return misses[i].distance > misses[j].distance
	})
	if len(misses) > worst {
		misses = misses[:worst]
	}
	fmt.Println()
	for _, m := range misses {
		fmt.Printf("%-20s %.3f  expected %-12s got %s\n", m.word, m.distance, m.expected, m.actual)
	}
}

func readFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var result []Entry
	seen := make(map[string]struct{})
	s := bufio.NewScanner(f)
	for s.Scan() {
		entry, ok := parseLine(s.Text())
		if !ok {
			continue
		}
		if _, dup := seen[entry.word]; dup { // keep the first pronunciation only
			continue
		}
		seen[entry.word] = struct{}{}
		result = append(result, entry)
	}
	return result, s.Err()
}

func parseLine(line string) (Entry, bool) {
	if strings.HasPrefix(line, ";;;") { // comment
		return Entry{}, false
	}
	tokens := strings.SplitN(line, "  ", 2)
	if len(tokens) != 2 {
		return Entry{}, false
	}
	word := strings.ToLower(tokens[0])
	if i := strings.IndexByte(word, '('); i > 0 { // remove extra pronunciation count
		word = word[:i]
	}
	for i := 0; i < len(word); i++ {
		if (word[i] < 'a' || word[i] > 'z') && word[i] != '\'' {
			return Entry{}, false
		}
	}
	var phonemes []rhyme.Phoneme
	for _, code := range strings.Fields(tokens[1]) {
		phonemes = append(phonemes, rhyme.Phoneme(code))
	}
	return Entry{word, phonemes}, len(phonemes) > 0
}
