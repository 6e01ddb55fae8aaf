package rhyme

// TypeCounts tallies matches by kind: group links, same-line pairs and
// assonance groups.
type TypeCounts struct {
	Perfect   int `json:"perfect"`
	Slant     int `json:"slant"`
	Multi     int `json:"multi"`
	Internal  int `json:"internal"`
	Assonance int `json:"assonance"`
}

type Metrics struct {
	TotalSyllables   int     `json:"totalSyllables"`
	RhymingSyllables int     `json:"rhymingSyllables"`
	Density          float64 `json:"density"`
	MultiRatio       float64 `json:"multiRatio"`
	// Lines counts the lines that contain at least one word.
	Lines          int     `json:"lines"`
	PerLineAverage float64 `json:"perLineAverage"`
	// Scheme has one character per line up to the last line with words, so
	// Scheme[i] describes line i. Lines without words (stanza breaks) are
	// blanks.
	Scheme string     `json:"scheme"`
	Groups int        `json:"groups"`
	Counts TypeCounts `json:"counts"`
}

const (
	schemeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	noRhyme       = '-'
	noWords       = ' '
	schemeOverrun = '*'
)

func buildMetrics(words []Word, groups []Group, wordGroup map[int]int, assonance []AssonanceGroup, internal map[int][]InternalPair) Metrics {
	var m Metrics
	for i := range words {
		m.TotalSyllables += len(words[i].Syllables)
	}

	multiSyllables := 0
	for _, g := range groups {
		for _, member := range g.Members {
			n := matchedTail(words, member, g.Members)
			m.RhymingSyllables += n
			if n >= 2 {
				multiSyllables += n
			}
		}
		for _, link := range g.Links {
			switch link.Kind {
			case MatchPerfect:
				m.Counts.Perfect++
			case MatchSlant:
				m.Counts.Slant++
			case MatchMulti:
				m.Counts.Multi++
			}
		}
	}
	for _, pairs := range internal {
		m.Counts.Internal += len(pairs)
	}
	m.Counts.Assonance = len(assonance)
	m.Groups = len(groups)

	if m.TotalSyllables > 0 {
		m.Density = float64(m.RhymingSyllables) / float64(m.TotalSyllables)
	}
	if m.RhymingSyllables > 0 {
		m.MultiRatio = float64(multiSyllables) / float64(m.RhymingSyllables)
	}

	m.Scheme = scheme(words, wordGroup)
	for i := range words {
		if words[i].LineFinal {
			m.Lines++
		}
	}
	if m.Lines > 0 {
		m.PerLineAverage = float64(m.RhymingSyllables) / float64(m.Lines)
	}
	return m
}

// matchedTail is the longest run of identical trailing syllable rimes that
// word shares with a fellow group member. Grouped words always count at
// least one syllable.
func matchedTail(words []Word, word int, members []int) int {
	best := 1
	for _, other := range members {
		if other == word {
			continue
		}
		a, b := words[word].Syllables, words[other].Syllables
		n := 0
		for n < len(a) && n < len(b) && a[len(a)-1-n].rime() == b[len(b)-1-n].rime() {
			n++
		}
		if n > best {
			best = n
		}
	}
	if len(words[word].Syllables) < best {
		return len(words[word].Syllables)
	}
	return best
}

// scheme letters the last word of every line that has words. A group gets
// the next letter the first time it ends a line; unrhymed lines get '-' and
// lines without words get ' '.
func scheme(words []Word, wordGroup map[int]int) string {
	letters := make(map[int]byte)
	var out []byte
	for i := range words {
		if !words[i].LineFinal {
			continue
		}
		for len(out) < words[i].Line {
			out = append(out, noWords)
		}
		g, ok := wordGroup[i]
		if !ok {
			out = append(out, noRhyme)
			continue
		}
		letter, ok := letters[g]
		if !ok {
			letter = schemeOverrun
			if len(letters) < len(schemeLetters) {
				letter = schemeLetters[len(letters)]
			}
			letters[g] = letter
		}
		out = append(out, letter)
	}
	return string(out)
}
