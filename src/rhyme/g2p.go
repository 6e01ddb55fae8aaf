package rhyme

import "github.com/kalexmills/rhyme-hammer/src/dict"

// vowelSpellings are multi-letter vowel patterns. The trie always prefers the
// longest one, so "eigh" wins over "ei".
var vowelSpellings = map[string][]Phoneme{
	"eigh": {"EY"},
	"augh": {"AO"},
	"ough": {"AO"},
	"igh":  {"AY"},
	"eau":  {"OW"},
	"ai":   {"EY"},
	"ay":   {"EY"},
	"au":   {"AO"},
	"aw":   {"AO"},
	"ee":   {"IY"},
	"ea":   {"IY"},
	"ei":   {"EY"},
	"ey":   {"EY"},
	"eu":   {"UW"},
	"ew":   {"UW"},
	"ie":   {"IY"},
	"oa":   {"OW"},
	"oe":   {"OW"},
	"oi":   {"OY"},
	"oy":   {"OY"},
	"oo":   {"UW"},
	"ou":   {"AW"},
	"ow":   {"OW"},
	"ue":   {"UW"},
	"ui":   {"UW"},
	"er":   {"ER"},
	"ir":   {"ER"},
	"ur":   {"ER"},
}

// consonantDigraphs also carries the unstressed suffixes whose vowel letters
// do not sound as spelled ("nation", "vision", "special").
var consonantDigraphs = map[string][]Phoneme{
	"stion": {"S", "CH", "AH", "N"},
	"ssion": {"SH", "AH", "N"},
	"tion":  {"SH", "AH", "N"},
	"sion":  {"ZH", "AH", "N"},
	"cian":  {"SH", "AH", "N"},
	"tial":  {"SH", "AH", "L"},
	"cial":  {"SH", "AH", "L"},
	"tch":   {"CH"},
	"ch":    {"CH"},
	"sh":    {"SH"},
	"th":    {"TH"},
	"ph":    {"F"},
	"wh":    {"W"},
	"wr":    {"R"},
	"kn":    {"N"},
	"ck":    {"K"},
	"ng":    {"NG"},
	"nk":    {"NG", "K"},
	"qu":    {"K", "W"},
	"dg":    {"JH"},
	"rh":    {"R"},
}

var shortVowels = map[byte]Phoneme{
	'a': "AE", 'e': "EH", 'i': "IH", 'o': "AA", 'u': "AH", 'y': "IH",
}

var longVowels = map[byte]Phoneme{
	'a': "EY", 'e': "IY", 'i': "AY", 'o': "OW", 'u': "UW", 'y': "AY",
}

var consonantLetters = map[byte][]Phoneme{
	'b': {"B"}, 'c': {"K"}, 'd': {"D"}, 'f': {"F"}, 'g': {"G"}, 'h': {"HH"},
	'j': {"JH"}, 'k': {"K"}, 'l': {"L"}, 'm': {"M"}, 'n': {"N"}, 'p': {"P"},
	'q': {"K"}, 'r': {"R"}, 's': {"S"}, 't': {"T"}, 'v': {"V"}, 'w': {"W"},
	'x': {"K", "S"}, 'y': {"Y"}, 'z': {"Z"},
}

var (
	vowelTrie     = newTrie(vowelSpellings)
	consonantTrie = newTrie(consonantDigraphs)
)

// Transcribe returns the pronunciation of a normalized word, preferring the
// exception dictionary over the letter rules. The flag reports a dictionary hit.
func Transcribe(word string) ([]Phoneme, bool) {
	if codes, ok := dict.Lookup(word); ok {
		return phonemesOf(codes), true
	}
	return Convert(word), false
}

// Convert derives an approximate pronunciation from spelling alone. The first
// vowel receives primary stress and every later vowel is unstressed.
func Convert(word string) []Phoneme {
	end := len(word)
	long := -1
	if hasSilentE(word) {
		end--
		long = magicVowel(word)
	}

	var out []Phoneme
	for i := 0; i < end; {
		c := word[i]
		if c < 'a' || c > 'z' {
			i++
			continue
		}

		if ph, n := vowelTrie.longestMatch(word[i:end]); n > 0 && rhoticOK(word, i+n, end, ph) {
			out = append(out, ph...)
			i += n
			continue
		}

		if c == 'g' && i+1 < end && word[i+1] == 'h' {
			if i == 0 {
				out = append(out, "G")
			}
			i += 2
			continue
		}
		if ph, n := consonantTrie.longestMatch(word[i:end]); n > 0 {
			out = append(out, ph...)
			i += n
			continue
		}

		if isVowelLetter(c) && (c != 'y' || yIsVowel(word, i, end)) {
			out = append(out, singleVowel(word, i, end, long))
			i++
			continue
		}

		if c == 'c' && i+1 < len(word) && (word[i+1] == 'e' || word[i+1] == 'i' || word[i+1] == 'y') {
			out = append(out, "S")
			i++
			continue
		}
		if ph, ok := consonantLetters[c]; ok {
			out = append(out, ph...)
		}
		i++
	}
	return markStress(collapseConsonants(out))
}

func isVowelLetter(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isConsonantLetter(c byte) bool {
	return 'a' <= c && c <= 'z' && !isVowelLetter(c)
}

func hasVowelLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowelLetter(s[i]) {
			return true
		}
	}
	return false
}

// hasSilentE reports a final e after a consonant with a vowel before it, as
// in "cake" or "rhyme".
func hasSilentE(word string) bool {
	n := len(word)
	return n >= 3 && word[n-1] == 'e' && isConsonantLetter(word[n-2]) && hasVowelLetter(word[:n-2])
}

// magicVowel returns the index of the single vowel lengthened by a silent e,
// or -1 when the spelling does not have that shape.
func magicVowel(word string) int {
	v := len(word) - 3
	if v < 0 || !isVowelLetter(word[v]) {
		return -1
	}
	if v > 0 && isVowelLetter(word[v-1]) {
		return -1
	}
	return v
}

// rhoticOK rejects r-coloured spellings followed by a vowel ("very").
func rhoticOK(word string, next, end int, ph []Phoneme) bool {
	if len(ph) != 1 || ph[0] != "ER" {
		return true
	}
	return next >= end || !isVowelLetter(word[next])
}

func yIsVowel(word string, i, end int) bool {
	if i == 0 {
		return false
	}
	return i+1 >= end || !isVowelLetter(word[i+1])
}

func singleVowel(word string, i, end, long int) Phoneme {
	c := word[i]
	if i == long {
		return longVowels[c]
	}
	lone := !hasVowelLetter(word[:i]) && end == len(word)
	if i == end-1 {
		switch {
		case c == 'y' && lone:
			return "AY"
		case c == 'y':
			return "IY"
		case lone:
			return longVowels[c]
		}
	}
	return shortVowels[c]
}

func collapseConsonants(phonemes []Phoneme) []Phoneme {
	result := make([]Phoneme, 0, len(phonemes))
	for _, p := range phonemes {
		if n := len(result); n > 0 && result[n-1] == p && !p.IsVowel() {
			continue
		}
		result = append(result, p)
	}
	return result
}

func markStress(phonemes []Phoneme) []Phoneme {
	stressed := false
	for i, p := range phonemes {
		if !p.IsVowel() {
			continue
		}
		if !stressed {
			phonemes[i] = Phoneme(p.Base() + "1")
			stressed = true
		} else {
			phonemes[i] = Phoneme(p.Base() + "0")
		}
	}
	return phonemes
}
