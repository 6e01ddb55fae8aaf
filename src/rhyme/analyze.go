// Package rhyme finds rhymes in free text. Every word is transcribed to
// approximate phonemes (curated exceptions first, letter rules otherwise),
// split into syllables and reduced to a rhyme key; keys are then compared
// pairwise to build rhyme groups, assonance groups, line-internal rhyme pairs
// and summary metrics.
//
// Analyze is a pure function of its input. The lookup tables are built once
// at init and never written afterward, so concurrent calls are safe.
package rhyme

import (
	"fmt"
	"math"
	"strings"
)

type Strategy string

const (
	// StrategyDistance compares rhyme keys with the graded nucleus + coda distance.
	StrategyDistance Strategy = "distance"
	// StrategyPositional scores the phoneme tails from the end of each word.
	StrategyPositional Strategy = "positional-score"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyDistance, "":
		return StrategyDistance, nil
	case StrategyPositional:
		return StrategyPositional, nil
	}
	return "", fmt.Errorf("unknown match strategy %q; expected %q or %q", s, StrategyDistance, StrategyPositional)
}

type Config struct {
	// PerfectThreshold is the largest distance accepted between two line-final words.
	PerfectThreshold float64 `json:"perfectThreshold"`
	// SlantThreshold is the largest distance accepted between two words inside lines.
	SlantThreshold float64 `json:"slantThreshold"`

	Assonance         bool     `json:"assonance"`
	AssonanceByFamily bool     `json:"assonanceByFamily"`
	InternalRhymes    bool     `json:"internalRhymes"`
	Strategy          Strategy `json:"matchStrategy"`

	// MaxWords caps how many transcribable words take part in grouping.
	MaxWords int `json:"maxWords"`
	// LineRadius limits how many lines apart a seed and its candidates may
	// be; zero means no limit.
	LineRadius int `json:"lineRadius"`
}

const (
	DefaultPerfectThreshold = 0.10
	DefaultSlantThreshold   = 0.35
	DefaultMaxWords         = 2000
)

func DefaultConfig() Config {
	return Config{
		PerfectThreshold: DefaultPerfectThreshold,
		SlantThreshold:   DefaultSlantThreshold,
		Assonance:        true,
		InternalRhymes:   true,
		Strategy:         StrategyDistance,
		MaxWords:         DefaultMaxWords,
	}
}

// normalized clamps thresholds into [0, 1] and replaces unusable values with
// defaults. Thresholds are tuning knobs, so out-of-range values are not errors.
func (c Config) normalized() Config {
	c.PerfectThreshold = clamp01(c.PerfectThreshold)
	c.SlantThreshold = clamp01(c.SlantThreshold)
	if c.Strategy != StrategyPositional {
		c.Strategy = StrategyDistance
	}
	if c.MaxWords <= 0 {
		c.MaxWords = DefaultMaxWords
	}
	if c.LineRadius < 0 {
		c.LineRadius = 0
	}
	return c
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Word is one token of the analyzed text together with its pronunciation.
type Word struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Line       int    `json:"line"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	LineFinal  bool   `json:"lineFinal"`

	Phonemes       []Phoneme  `json:"phonemes"`
	FromDictionary bool       `json:"fromDictionary"`
	Syllables      []Syllable `json:"syllables"`
	Stress         int        `json:"stress"`
	Key            *RhymeKey  `json:"key,omitempty"`

	tail  []string
	tail2 string
	tail3 string
}

func (w *Word) transcribe() {
	w.Phonemes, w.FromDictionary = Transcribe(w.Normalized)
	w.Syllables, w.Stress = Syllabify(w.Phonemes)
	if w.Phonemes == nil {
		w.Phonemes = []Phoneme{}
	}
	if w.Syllables == nil {
		w.Syllables = []Syllable{}
	}
	if key, ok := KeyOf(w.Syllables, w.Stress); ok {
		w.Key = &key
		w.tail = rhymeTail(w.Syllables, w.Stress)
		w.tail2 = tailKey(w.Syllables, 2)
		w.tail3 = tailKey(w.Syllables, 3)
	}
}

type Result struct {
	Words     []Word           `json:"words"`
	Groups    []Group          `json:"groups"`
	Assonance []AssonanceGroup `json:"assonanceGroups"`
	// Internal holds same-line rhyme pairs keyed by line index.
	Internal map[int][]InternalPair `json:"internalRhymes"`
	// WordGroup maps a word index to the index of its rhyme group.
	WordGroup map[int]int `json:"wordGroup"`
	Metrics   Metrics     `json:"metrics"`
}

// Analyze runs the whole pipeline over text. It never fails: empty input and
// unpronounceable words simply produce empty groups.
func Analyze(text string, cfg Config) Result {
	cfg = cfg.normalized()

	words := Tokenize(text)
	for i := range words {
		words[i].transcribe()
	}

	m := newMatcher(cfg.Strategy)
	groups := groupRhymes(words, cfg, m)

	wordGroup := make(map[int]int)
	for gi, g := range groups {
		for _, member := range g.Members {
			wordGroup[member] = gi
		}
	}

	assonance := make([]AssonanceGroup, 0)
	if cfg.Assonance {
		assonance = groupAssonance(words, cfg)
	}
	internal := make(map[int][]InternalPair)
	if cfg.InternalRhymes {
		internal = internalRhymes(words, cfg, m)
	}

	return Result{
		Words:     words,
		Groups:    groups,
		Assonance: assonance,
		Internal:  internal,
		WordGroup: wordGroup,
		Metrics:   buildMetrics(words, groups, wordGroup, assonance, internal),
	}
}
