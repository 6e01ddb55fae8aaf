package rhyme

// Syllable holds exactly one vowel. Only the first syllable of a word can
// have an onset: consonants after a vowel stay in that vowel's coda.
type Syllable struct {
	Onset   []Phoneme `json:"onset,omitempty"`
	Nucleus Phoneme   `json:"nucleus"`
	Coda    []Phoneme `json:"coda,omitempty"`
}

// Phonemes flattens the syllable back into onset, nucleus and coda order.
func (s Syllable) Phonemes() []Phoneme {
	result := make([]Phoneme, 0, len(s.Onset)+1+len(s.Coda))
	result = append(result, s.Onset...)
	result = append(result, s.Nucleus)
	return append(result, s.Coda...)
}

// rime is the nucleus label followed by the devoiced coda, used to compare
// trailing syllables of two words.
func (s Syllable) rime() string {
	out := classify(string(s.Nucleus))
	for _, c := range s.Coda {
		out += " " + devoice(c.Base())
	}
	return out
}

// Syllabify splits phonemes at each vowel. The stress index is the first
// vowel marked with primary stress, the final syllable when no vowel is
// marked, and -1 when there are no syllables at all.
func Syllabify(phonemes []Phoneme) ([]Syllable, int) {
	var (
		syllables []Syllable
		onset     []Phoneme
		stress    = -1
	)
	for _, p := range phonemes {
		if p.IsVowel() {
			syl := Syllable{Nucleus: p}
			if len(syllables) == 0 {
				syl.Onset = onset
			}
			if stress < 0 && p.Stress() == 1 {
				stress = len(syllables)
			}
			syllables = append(syllables, syl)
			continue
		}
		if len(syllables) == 0 {
			onset = append(onset, p)
			continue
		}
		last := &syllables[len(syllables)-1]
		last.Coda = append(last.Coda, p)
	}
	if len(syllables) == 0 {
		return nil, -1
	}
	if stress < 0 {
		stress = len(syllables) - 1
	}
	return syllables, stress
}
