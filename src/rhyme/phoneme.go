package rhyme

import "strings"

// Phoneme is an ARPABET code such as "AE1", "K" or "SH". Vowels may carry a
// trailing stress digit.
type Phoneme string

// Base strips the stress digit, if any.
func (p Phoneme) Base() string {
	s := string(p)
	if n := len(s); n > 0 && s[n-1] >= '0' && s[n-1] <= '2' {
		return s[:n-1]
	}
	return s
}

// Stress returns the stress digit, or -1 when the phoneme carries none.
func (p Phoneme) Stress() int {
	s := string(p)
	if n := len(s); n > 0 && s[n-1] >= '0' && s[n-1] <= '2' {
		return int(s[n-1] - '0')
	}
	return -1
}

func (p Phoneme) IsVowel() bool {
	_, ok := vowels[p.Base()]
	return ok
}

func phonemesOf(codes []string) []Phoneme {
	result := make([]Phoneme, 0, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		result = append(result, Phoneme(strings.ToUpper(code)))
	}
	return result
}

var vowels = map[string]struct{}{
	"AA": {}, "AE": {}, "AH": {}, "AO": {}, "AW": {}, "AY": {}, "EH": {}, "ER": {},
	"EY": {}, "IH": {}, "IY": {}, "OW": {}, "OY": {}, "UH": {}, "UW": {},
}

// vowelClass groups perceptually interchangeable vowels under one nucleus label.
var vowelClass = map[string]string{
	"AA": "AH",
	"AH": "AH",
	"AE": "AE",
	"AO": "AO",
	"AW": "AW",
	"AY": "AY",
	"EH": "EH",
	"ER": "ER",
	"EY": "EY",
	"IH": "IH",
	"IY": "IY",
	"OW": "OW",
	"OY": "OY",
	"UH": "UH",
	"UW": "UW",
}

type Family string

const (
	FamilyFront     Family = "front"
	FamilyCentral   Family = "central"
	FamilyBack      Family = "back"
	FamilyDiphthong Family = "diphthong"
)

var vowelFamily = map[string]Family{
	"IY": FamilyFront, "IH": FamilyFront, "EY": FamilyFront, "EH": FamilyFront, "AE": FamilyFront,
	"AH": FamilyCentral, "ER": FamilyCentral,
	"UW": FamilyBack, "UH": FamilyBack, "OW": FamilyBack, "AO": FamilyBack,
	"AY": FamilyDiphthong, "AW": FamilyDiphthong, "OY": FamilyDiphthong,
}

// classify maps a vowel (stress digit optional) to its nucleus label.
func classify(vowel string) string {
	base := Phoneme(vowel).Base()
	if label, ok := vowelClass[base]; ok {
		return label
	}
	return base
}

// FamilyOf returns the family of a vowel or nucleus label. Compound labels
// produced by weak-coda absorption are judged by their trailing element.
func FamilyOf(label string) (Family, bool) {
	f, ok := vowelFamily[classify(trailingVowel(label))]
	return f, ok
}

const nucleusSeparator = "-"

func trailingVowel(label string) string {
	if i := strings.LastIndex(label, nucleusSeparator); i >= 0 {
		return label[i+len(nucleusSeparator):]
	}
	return label
}

var voicelessOf = map[string]string{
	"Z":  "S",
	"V":  "F",
	"D":  "T",
	"G":  "K",
	"B":  "P",
	"ZH": "SH",
	"JH": "CH",
	"DH": "TH",
}

func devoice(consonant string) string {
	if v, ok := voicelessOf[consonant]; ok {
		return v
	}
	return consonant
}

type consonantPair struct{ a, b string }

// equivalentConsonants are pairs that do not count as a coda mismatch.
var equivalentConsonants = map[consonantPair]struct{}{}

func init() {
	pairs := [][2]string{
		// voicing
		{"P", "B"}, {"T", "D"}, {"K", "G"}, {"F", "V"}, {"S", "Z"}, {"SH", "ZH"}, {"CH", "JH"}, {"TH", "DH"},
		// sibilants
		{"S", "SH"}, {"Z", "ZH"}, {"CH", "SH"},
		// nasals
		{"M", "N"},
	}
	for _, p := range pairs {
		equivalentConsonants[consonantPair{p[0], p[1]}] = struct{}{}
		equivalentConsonants[consonantPair{p[1], p[0]}] = struct{}{}
	}
}

func consonantsMatch(a, b string) bool {
	if a == b {
		return true
	}
	_, ok := equivalentConsonants[consonantPair{a, b}]
	return ok
}
