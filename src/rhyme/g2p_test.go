package rhyme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func phonemes(s string) []Phoneme {
	if s == "" {
		return []Phoneme{}
	}
	return phonemesOf(strings.Fields(s))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{"cat", "K AE1 T"},
		{"hat", "HH AE1 T"},
		{"dog", "D AA1 G"},
		{"time", "T AY1 M"},
		{"rhyme", "R AY1 M"},
		{"night", "N AY1 T"},
		{"eight", "EY1 T"},
		{"care", "K EY1 R"},
		{"nice", "N AY1 S"},
		{"one", "OW1 N"},
		{"bookkeeper", "B UW1 K IY0 P ER0"},
		{"church", "CH ER1 CH"},
		{"very", "V EH1 R IY0"},
		{"my", "M AY1"},
		{"happy", "HH AE1 P IY0"},
		{"go", "G OW1"},
		{"queen", "K W IY1 N"},
		{"box", "B AA1 K S"},
		{"posting", "P AA1 S T IH0 NG"},
		{"elation", "EH1 L AE0 SH AH0 N"},
		{"nation", "N AE1 SH AH0 N"},
		{"vision", "V IH1 ZH AH0 N"},
		{"mission", "M IH1 SH AH0 N"},
		{"question", "K W EH1 S CH AH0 N"},
		{"partial", "P AE1 R SH AH0 L"},
		{"lion", "L IH1 AA0 N"},
		{"baa", "B AE1 AE0"},
		{"hmm", "HH M"},
		{"pfft", "P F T"},
	}

	for _, tt := range tests {
		assert.Equal(t, phonemes(tt.expected), Convert(tt.word), tt.word)
	}
}

func TestConvertNeverEmitsEmptyPhonemes(t *testing.T) {
	for _, word := range []string{"", "'", "ghost", "don't", "xyz", "straight", "through", "aeiouy", "ng"} {
		for _, p := range Convert(word) {
			assert.NotEmpty(t, string(p), word)
		}
	}
}

func TestConvertStressesFirstVowelOnly(t *testing.T) {
	stressed := 0
	for i, p := range Convert("remembering") {
		if !p.IsVowel() {
			continue
		}
		if stressed == 0 {
			assert.Equal(t, 1, p.Stress(), "phoneme %d", i)
		} else {
			assert.Equal(t, 0, p.Stress(), "phoneme %d", i)
		}
		stressed++
	}
	assert.True(t, stressed > 1)
}

func TestTranscribePrefersDictionary(t *testing.T) {
	ph, fromDict := Transcribe("one")
	assert.True(t, fromDict)
	assert.Equal(t, phonemes("W AH1 N"), ph)
	assert.NotEqual(t, Convert("one"), ph)

	ph, fromDict = Transcribe("cat")
	assert.False(t, fromDict)
	assert.Equal(t, phonemes("K AE1 T"), ph)
}

func TestPhoneme(t *testing.T) {
	assert.Equal(t, "AE", Phoneme("AE1").Base())
	assert.Equal(t, 1, Phoneme("AE1").Stress())
	assert.Equal(t, -1, Phoneme("AE").Stress())
	assert.Equal(t, "SH", Phoneme("SH").Base())
	assert.True(t, Phoneme("ER0").IsVowel())
	assert.False(t, Phoneme("NG").IsVowel())
}
