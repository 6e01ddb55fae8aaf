package rhyme

// Distance grades how far apart two rhyme keys sound: 0 is a perfect rhyme
// and the result never leaves [0, 1]. The nucleus dominates the judgement.
func Distance(a, b RhymeKey) float64 {
	return 0.7*NucleusDistance(a.Nucleus, b.Nucleus) + 0.3*CodaDistance(a.Coda, b.Coda)
}

func NucleusDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	if trailingVowel(a) == trailingVowel(b) {
		return 0.05
	}
	fa, okA := FamilyOf(a)
	fb, okB := FamilyOf(b)
	if okA && okB && fa == fb {
		return 0.25
	}
	return 0.6
}

// CodaDistance aligns both codas on their last consonant. Equivalent pairs
// (voicing, sibilants, nasals) are free; every length unit of difference
// costs half a mismatch.
func CodaDistance(a, b []string) float64 {
	if stringsEqual(a, b) {
		return 0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.6
	}
	shorter, diff := len(a), len(b)-len(a)
	if diff < 0 {
		shorter, diff = len(b), -diff
	}

	mismatches := 0.5 * float64(diff)
	for i := 1; i <= shorter; i++ {
		if !consonantsMatch(a[len(a)-i], b[len(b)-i]) {
			mismatches++
		}
	}
	d := 0.35 * mismatches
	if d > 1 {
		return 1
	}
	return d
}

// ScoreRhyme is the positional similarity of two rhyme tails read from the
// end: an exact phoneme at offset i earns 1/(i+1), a vowel of the same
// family earns half that. The sum is capped at 0.95.
func ScoreRhyme(a, b []string) float64 {
	score := 0.0
	for i := 0; i < len(a) && i < len(b); i++ {
		pa, pb := a[len(a)-1-i], b[len(b)-1-i]
		switch {
		case pa == pb:
			score += 1 / float64(i+1)
		case sameVowelFamily(pa, pb):
			score += 0.5 / float64(i+1)
		}
	}
	if score > 0.95 {
		return 0.95
	}
	return score
}

func sameVowelFamily(a, b string) bool {
	if !Phoneme(a).IsVowel() || !Phoneme(b).IsVowel() {
		return false
	}
	fa, okA := FamilyOf(a)
	fb, okB := FamilyOf(b)
	return okA && okB && fa == fb
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// matcher is the pairwise comparison behind a Strategy. It reports a
// distance where 0 is a perfect rhyme, whatever the underlying score.
type matcher interface {
	distance(a, b *Word) float64
}

type keyDistance struct{}

func (keyDistance) distance(a, b *Word) float64 {
	return Distance(*a.Key, *b.Key)
}

type positionalScore struct{}

func (positionalScore) distance(a, b *Word) float64 {
	return 1 - ScoreRhyme(a.tail, b.tail)
}

func newMatcher(s Strategy) matcher {
	if s == StrategyPositional {
		return positionalScore{}
	}
	return keyDistance{}
}
