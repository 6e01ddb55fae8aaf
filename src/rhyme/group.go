package rhyme

type MatchKind string

const (
	MatchPerfect MatchKind = "perfect"
	MatchSlant   MatchKind = "slant"
	// MatchMulti marks words whose last two or three syllables are identical
	// from the first tail nucleus on; they join without a distance check.
	MatchMulti MatchKind = "multi"
)

// Group is a rhyme group: the seed word and every later word it claimed.
type Group struct {
	ID      int   `json:"id"`
	Members []int `json:"members"`
	// Links describe how each member after the seed matched it.
	Links []Link `json:"links"`
}

type Link struct {
	Word     int       `json:"word"`
	Kind     MatchKind `json:"kind"`
	Distance float64   `json:"distance"`
}

type AssonanceGroup struct {
	ID      int    `json:"id"`
	Vowel   string `json:"vowel"`
	Members []int  `json:"members"`
}

type InternalPair struct {
	A        int       `json:"a"`
	B        int       `json:"b"`
	Kind     MatchKind `json:"kind"`
	Distance float64   `json:"distance"`
}

// compare decides whether two keyed words rhyme under threshold.
func compare(a, b *Word, threshold float64, m matcher) (MatchKind, float64, bool) {
	if a.tail3 != "" && a.tail3 == b.tail3 {
		return MatchMulti, 0, true
	}
	if a.tail2 != "" && a.tail2 == b.tail2 {
		return MatchMulti, 0, true
	}
	d := m.distance(a, b)
	if d > threshold {
		return "", d, false
	}
	if d == 0 {
		return MatchPerfect, d, true
	}
	return MatchSlant, d, true
}

// threshold picks the strict limit between line-final words, the lenient one
// inside lines and their midpoint for a mixed pair.
func threshold(a, b *Word, cfg Config) float64 {
	switch {
	case a.LineFinal && b.LineFinal:
		return cfg.PerfectThreshold
	case a.LineFinal || b.LineFinal:
		return (cfg.PerfectThreshold + cfg.SlantThreshold) / 2
	}
	return cfg.SlantThreshold
}

// keyed returns the indices of words that have a rhyme key, capped at limit.
func keyed(words []Word, limit int) []int {
	var result []int
	for i := range words {
		if words[i].Key == nil {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, i)
	}
	return result
}

// groupRhymes clusters words greedily in document order. A seed claims every
// later unassigned word that rhymes with it; claimed words are never
// reconsidered, so the result depends on order by construction.
func groupRhymes(words []Word, cfg Config, m matcher) []Group {
	groups := make([]Group, 0)
	candidates := keyed(words, cfg.MaxWords)
	assigned := make(map[int]bool)

	for ci, seed := range candidates {
		if assigned[seed] {
			continue
		}
		group := Group{Members: []int{seed}, Links: []Link{}}
		seen := map[string]bool{words[seed].Normalized: true}

		for _, other := range candidates[ci+1:] {
			if cfg.LineRadius > 0 && words[other].Line-words[seed].Line > cfg.LineRadius {
				break
			}
			if assigned[other] || seen[words[other].Normalized] {
				continue
			}
			kind, d, ok := compare(&words[seed], &words[other], threshold(&words[seed], &words[other], cfg), m)
			if !ok {
				continue
			}
			group.Members = append(group.Members, other)
			group.Links = append(group.Links, Link{Word: other, Kind: kind, Distance: d})
			seen[words[other].Normalized] = true
		}

		if len(group.Members) < 2 {
			continue
		}
		for _, member := range group.Members {
			assigned[member] = true
		}
		group.ID = len(groups)
		groups = append(groups, group)
	}
	return groups
}

// groupAssonance buckets content words by the vowel of their stressed
// syllable (or its family). A repeated word counts once per bucket and a
// bucket needs three words to qualify.
func groupAssonance(words []Word, cfg Config) []AssonanceGroup {
	var order []string
	buckets := make(map[string][]int)
	seen := make(map[string]map[string]bool)

	for _, i := range keyed(words, cfg.MaxWords) {
		w := &words[i]
		if isStopWord(w.Normalized) {
			continue
		}
		label := stressedVowel(w)
		if cfg.AssonanceByFamily {
			family, ok := FamilyOf(label)
			if !ok {
				continue
			}
			label = string(family)
		}
		if _, ok := buckets[label]; !ok {
			order = append(order, label)
			seen[label] = make(map[string]bool)
		}
		if seen[label][w.Normalized] {
			continue
		}
		seen[label][w.Normalized] = true
		buckets[label] = append(buckets[label], i)
	}

	groups := make([]AssonanceGroup, 0)
	for _, label := range order {
		if len(buckets[label]) < 3 {
			continue
		}
		groups = append(groups, AssonanceGroup{ID: len(groups), Vowel: label, Members: buckets[label]})
	}
	return groups
}

func stressedVowel(w *Word) string {
	stress := w.Stress
	if stress < 0 || stress >= len(w.Syllables) {
		stress = len(w.Syllables) - 1
	}
	return classify(string(w.Syllables[stress].Nucleus))
}

// internalRhymes tests every pair of words sharing a line against the slant
// threshold. Pairs are reported as found and never merged into groups.
func internalRhymes(words []Word, cfg Config, m matcher) map[int][]InternalPair {
	result := make(map[int][]InternalPair)
	candidates := keyed(words, cfg.MaxWords)

	for ci, a := range candidates {
		for _, b := range candidates[ci+1:] {
			if words[b].Line != words[a].Line {
				break
			}
			if words[a].Normalized == words[b].Normalized {
				continue
			}
			kind, d, ok := compare(&words[a], &words[b], cfg.SlantThreshold, m)
			if !ok {
				continue
			}
			line := words[a].Line
			result[line] = append(result[line], InternalPair{A: a, B: b, Kind: kind, Distance: d})
		}
	}
	return result
}
