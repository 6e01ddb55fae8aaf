// dict-candidates lists frequent corpus words that the letter rules cannot
// turn into a rhyme key, or that are contractions, and that have no entry in
// the exception table yet.
//
//	dict-candidates <wikipedia|gen-chat|plain> <file>
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kalexmills/rhyme-hammer/src/dict"
	"github.com/kalexmills/rhyme-hammer/src/rhyme"
)

type Datasource struct {
	lineParser func(string) string
}

var Unescaper = strings.NewReplacer("\\/", "/", "\\\"", "\"", "''''", "'", "''", "'")

var sources = map[string]Datasource{
	"wikipedia": {
		lineParser: func(s string) string {
			tokens := strings.Split(s, "+++$+++")
			if len(tokens) < 8 {
				return ""
			}
			cleaned := strings.TrimSpace(tokens[7]) // 7th index is the 'cleaned' content
			return Unescaper.Replace(cleaned)
		},
	},
	"gen-chat": {
		lineParser: func(s string) string {
			tokens := strings.Split(s, ",")
			if len(tokens) < 4 {
				return ""
			}
			return strings.Trim(tokens[3], " \"")
		},
	},
	"plain": {
		lineParser: func(s string) string { return s },
	},
}

func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: dict-candidates <wikipedia|gen-chat|plain> <file>")
		os.Exit(2)
	}
	source, ok := sources[os.Args[1]]
	if !ok {
		FatalError(fmt.Errorf("unknown source %q", os.Args[1]))
	}

	f, err := os.Open(os.Args[2])
	FatalError(err)
	defer f.Close()

	counts := make(map[string]int)
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		str := strings.TrimSpace(s.Text())
		if str == "" {
			continue
		}
		for _, w := range rhyme.Tokenize(source.lineParser(str)) {
			if isCandidate(w.Normalized) {
				counts[w.Normalized]++
			}
		}
	}
	FatalError(s.Err())

	for _, r := range rank(counts) {
		fmt.Println(r.word, r.count, describe(r.word))
	}
}

// isCandidate reports words missing from the exception table that the rules
// handle badly.
func isCandidate(word string) bool {
	if word == "" || dict.IsWord(word) {
		return false
	}
	if strings.ContainsRune(word, '\'') {
		return true
	}
	_, ok := rhyme.KeyOf(rhyme.Syllabify(rhyme.Convert(word)))
	return !ok
}

type result struct {
	word  string
	count int
}

// rank orders words by descending count, dropping one-offs.
func rank(counts map[string]int) []result {
	var results []result
	for word, count := range counts {
		if count == 1 {
			continue // we don't care about one-offs.
		}
		results = append(results, result{word, count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].count != results[j].count {
			return results[i].count > results[j].count
		}
		return results[i].word < results[j].word
	})
	return results
}

func describe(word string) string {
	var codes []string
	for _, p := range rhyme.Convert(word) {
		codes = append(codes, string(p))
	}
	if len(codes) == 0 {
		return "-"
	}
	return strings.Join(codes, " ")
}

func FatalError(err error) {
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
}
