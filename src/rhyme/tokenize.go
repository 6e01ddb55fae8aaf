package rhyme

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var requoter = strings.NewReplacer("’", "'", "‘", "'")

// Normalize lowercases a word, folds diacritics ("café" becomes "cafe"),
// straightens curly apostrophes and strips everything but letters and inner
// apostrophes.
func Normalize(s string) string {
	// transformers carry state; build one per call so Normalize stays safe
	// for concurrent use.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, requoter.Replace(s))
	if err != nil {
		folded = requoter.Replace(s)
	}

	var result strings.Builder
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || r == '\'' {
			result.WriteRune(r)
		}
	}
	return strings.Trim(result.String(), "'")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || r == '\'' || r == '’' || r == '‘'
}

// Tokenize splits text into words: maximal runs of letters and apostrophes.
// Start and End are byte offsets into text. Runs that normalize to nothing
// (stray apostrophes) are dropped.
func Tokenize(text string) []Word {
	words := make([]Word, 0)
	line, start := 0, -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		surface := text[start:end]
		if normalized := Normalize(surface); normalized != "" {
			words = append(words, Word{
				Text:       surface,
				Normalized: normalized,
				Line:       line,
				Start:      start,
				End:        end,
			})
		}
		start = -1
	}

	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		if r == '\n' {
			line++
		}
	}
	flush(len(text))

	for i := range words {
		words[i].LineFinal = i == len(words)-1 || words[i+1].Line != words[i].Line
	}
	return words
}
