package rhyme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNucleusDistance(t *testing.T) {
	assert.Equal(t, 0.0, NucleusDistance("AE", "AE"))
	assert.Equal(t, 0.05, NucleusDistance("AH-ER", "IH-ER"))
	assert.Equal(t, 0.05, NucleusDistance("AH-ER", "ER"))
	assert.Equal(t, 0.25, NucleusDistance("AE", "EH"))
	assert.Equal(t, 0.25, NucleusDistance("AY", "OY"))
	assert.Equal(t, 0.6, NucleusDistance("AE", "UW"))
}

func TestCodaDistance(t *testing.T) {
	tests := []struct {
		a, b     []string
		expected float64
	}{
		{[]string{"T"}, []string{"T"}, 0},
		{[]string{}, []string{}, 0},
		{[]string{}, []string{"T"}, 0.6},
		{[]string{"T"}, []string{"P"}, 0.35},
		{[]string{"T"}, []string{"D"}, 0},
		{[]string{"M"}, []string{"N"}, 0},
		{[]string{"S"}, []string{"SH"}, 0},
		{[]string{"N", "T"}, []string{"T"}, 0.175},
		{[]string{"K", "S", "T"}, []string{"P"}, 0.7},
		{[]string{"P", "K", "T", "F", "L"}, []string{"M"}, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, CodaDistance(tt.a, tt.b), 1e-9, "%v vs %v", tt.a, tt.b)
	}
}

var sampleKeys = []RhymeKey{
	{"AE", []string{"T"}},
	{"AE", []string{"P"}},
	{"AH", []string{"K"}},
	{"AH", []string{}},
	{"AY", []string{"M"}},
	{"AH-ER", []string{"T"}},
	{"IH-ER", []string{"N", "T"}},
	{"UW", []string{"P", "K", "T", "F", "L"}},
	{"OY", []string{"S"}},
}

func TestDistanceProperties(t *testing.T) {
	for _, a := range sampleKeys {
		assert.Equal(t, 0.0, Distance(a, a), a.String())
		for _, b := range sampleKeys {
			d := Distance(a, b)
			assert.Equal(t, d, Distance(b, a), "%s vs %s", a, b)
			assert.True(t, d >= 0 && d <= 1, "%s vs %s = %f", a, b, d)
		}
	}
}

func TestDistance(t *testing.T) {
	cat := RhymeKey{"AE", []string{"T"}}
	assert.InDelta(t, 0.105, Distance(cat, RhymeKey{"AE", []string{"P"}}), 1e-9)
	assert.InDelta(t, 0.525, Distance(cat, RhymeKey{"AH", []string{"K"}}), 1e-9)
}

func TestScoreRhyme(t *testing.T) {
	tests := []struct {
		a, b     []string
		expected float64
	}{
		{[]string{"AE", "T"}, []string{"AE", "T"}, 0.95},
		{[]string{"AE", "T"}, []string{"AE", "P"}, 0.5},
		{[]string{"AE"}, []string{"EH"}, 0.5},
		{[]string{"K"}, []string{"T"}, 0},
		{[]string{"OW", "S", "T", "IH", "NG"}, []string{"IH", "NG"}, 0.95},
		{[]string{"AE", "T"}, []string{"UW", "N"}, 0},
		{nil, []string{"T"}, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, ScoreRhyme(tt.a, tt.b), 1e-9, "%v vs %v", tt.a, tt.b)
	}
}
