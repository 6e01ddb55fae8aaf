package rhyme

import "strings"

// RhymeKey is the part of a word that has to match for it to rhyme: the
// classified nucleus of the stressed syllable and the devoiced coda after it.
type RhymeKey struct {
	Nucleus string   `json:"nucleus"`
	Coda    []string `json:"coda"`
}

func (k RhymeKey) Equal(other RhymeKey) bool {
	if k.Nucleus != other.Nucleus || len(k.Coda) != len(other.Coda) {
		return false
	}
	for i := range k.Coda {
		if k.Coda[i] != other.Coda[i] {
			return false
		}
	}
	return true
}

func (k RhymeKey) String() string {
	if len(k.Coda) == 0 {
		return k.Nucleus
	}
	return k.Nucleus + " " + strings.Join(k.Coda, " ")
}

// weakCodas are single consonants too faint to characterize a rhyme alone.
var weakCodas = map[string]struct{}{
	"HH": {},
	"R":  {},
	"W":  {},
	"Y":  {},
}

func isWeakCoda(coda []Phoneme) bool {
	if len(coda) == 0 {
		return true
	}
	if len(coda) > 1 {
		return false
	}
	_, ok := weakCodas[coda[0].Base()]
	return ok
}

// KeyOf extracts the rhyme key of the syllable at stress, clamped into range.
// A weak coda pulls in the nucleus and coda of the previous syllable.
func KeyOf(syllables []Syllable, stress int) (RhymeKey, bool) {
	if len(syllables) == 0 {
		return RhymeKey{}, false
	}
	if stress < 0 {
		stress = 0
	}
	if stress >= len(syllables) {
		stress = len(syllables) - 1
	}
	target := syllables[stress]
	if !target.Nucleus.IsVowel() {
		return RhymeKey{}, false
	}

	nucleus := classify(string(target.Nucleus))
	var coda []Phoneme
	if isWeakCoda(target.Coda) && stress > 0 {
		prev := syllables[stress-1]
		nucleus = classify(string(prev.Nucleus)) + nucleusSeparator + nucleus
		coda = append(coda, prev.Coda...)
	}
	coda = append(coda, target.Coda...)

	normalized := make([]string, 0, len(coda))
	for _, c := range coda {
		normalized = append(normalized, devoice(c.Base()))
	}
	for len(normalized) > 0 && normalized[len(normalized)-1] == "HH" {
		normalized = normalized[:len(normalized)-1]
	}
	return RhymeKey{Nucleus: nucleus, Coda: normalized}, true
}

// rhymeTail returns every phoneme from the stressed nucleus to the end of the
// word, without stress digits.
func rhymeTail(syllables []Syllable, stress int) []string {
	if len(syllables) == 0 {
		return nil
	}
	if stress < 0 {
		stress = 0
	}
	if stress >= len(syllables) {
		stress = len(syllables) - 1
	}
	return tailFrom(syllables[stress:])
}

// tailKey joins the last n syllables from their first nucleus onward, or
// returns "" for words with fewer syllables.
func tailKey(syllables []Syllable, n int) string {
	if len(syllables) < n {
		return ""
	}
	return strings.Join(tailFrom(syllables[len(syllables)-n:]), " ")
}

func tailFrom(syllables []Syllable) []string {
	var tail []string
	for _, s := range syllables {
		tail = append(tail, s.Nucleus.Base())
		for _, c := range s.Coda {
			tail = append(tail, c.Base())
		}
	}
	return tail
}
