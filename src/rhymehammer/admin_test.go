package rhymehammer

import (
	"strings"
	"testing"

	"github.com/kalexmills/rhyme-hammer/src/rhymehammer/db"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		content  string
		expected Command
	}{
		{"help", Command{Operation: OpHelp}},
		{"feature on global Assonance AutoScheme", Command{Operation: OpFeatureOn, Target: "global", Features: db.FeatureAssonance | db.FeatureAutoScheme}},
		{"feature off  <#859253738765303818>   ReactToRhyme", Command{Operation: OpFeatureOff, Target: "859253738765303818", Features: db.FeatureReactToRhyme}},
		{"feature list <#12>", Command{Operation: OpFeatureList, Target: "12"}},
		{"threshold slant 0.5", Command{Operation: OpThreshold, Target: "global", Threshold: ThresholdSlant, Value: 0.5}},
		{"threshold perfect 0", Command{Operation: OpThreshold, Target: "global", Threshold: ThresholdPerfect, Value: 0}},
		{"reacts 🔥 <:mic:123> <a:dance:456>", Command{Operation: OpReacts, Target: "global", Reacts: []string{"🔥", "mic:123", "dance:456"}}},
		{"reacts", Command{Operation: OpReacts, Target: "global"}},
	}
	for _, tt := range tests {
		command, err := parseCommand(tt.content, "!rhyme")
		if assert.NoError(t, err, tt.content) {
			assert.Equal(t, tt.expected, command, tt.content)
		}
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []string{
		"",
		"feature",
		"feature on global",
		"feature on everywhere Assonance",
		"feature on <#abc> Assonance",
		"feature on global Rhymes",
		"feature list",
		"threshold",
		"threshold loose 0.2",
		"threshold slant high",
		"threshold slant 1.5",
		"threshold slant -0.1",
		"rhyme time",
		"reacts <:broken>",
		"reacts 1 2 3 4 5 6 7 8 9 10 11",
	}
	for _, content := range tests {
		_, err := parseCommand(content, "!rhyme")
		assert.Error(t, err, content)
	}
}

func TestIsAdminCommand(t *testing.T) {
	assert.True(t, isAdminCommand("help"))
	assert.True(t, isAdminCommand("feature list global"))
	assert.True(t, isAdminCommand("threshold slant 0.2"))
	assert.False(t, isAdminCommand(""))
	assert.False(t, isAdminCommand("the cat sat on the mat"))
	assert.False(t, isAdminCommand("features of the night"))
	assert.True(t, isAdminCommand("reacts 🔥"))

	// verses that open with a command word are analyzed
	assert.False(t, isAdminCommand("help me find a rhyme"))
	assert.False(t, isAdminCommand("feature films at night"))
	assert.False(t, isAdminCommand("threshold of the night"))
}

func TestOpenToAll(t *testing.T) {
	help, err := parseCommand("help", "!rhyme")
	assert.NoError(t, err)
	assert.True(t, openToAll(help))

	for _, content := range []string{"feature list global", "threshold slant 0.4", "reacts 🔥"} {
		command, err := parseCommand(content, "!rhyme")
		assert.NoError(t, err, content)
		assert.False(t, openToAll(command), content)
	}
}

func TestFeatureMutators(t *testing.T) {
	current := db.FeatureAssonance | db.FeatureInternalRhymes
	assert.Equal(t, current|db.FeatureAutoScheme, EnableFeatures(current, db.FeatureAutoScheme))
	assert.Equal(t, db.FeatureInternalRhymes, DisableFeatures(current, db.FeatureAssonance|db.FeatureAutoScheme))
}

func TestMentionTarget(t *testing.T) {
	assert.Equal(t, "global", Command{Target: "global"}.MentionTarget())
	assert.Equal(t, "<#12>", Command{Target: "12"}.MentionTarget())
}

func TestAdminHelp(t *testing.T) {
	help := adminHelp("!verse")
	assert.NotContains(t, help, "~~~")
	assert.NotContains(t, help, "{prefix}")
	assert.Contains(t, help, "`!verse feature on [target] [feature feature...]`")
	assert.Contains(t, help, "`!verse reacts [emoji emoji...]`")
	for _, name := range []string{"Assonance", "AssonanceByFamily", "InternalRhymes", "PositionalScore", "AutoScheme", "ReactToRhyme"} {
		_, ok := db.ParseFeature(name)
		assert.True(t, ok, name)
		assert.True(t, strings.Contains(help, "`"+name+"`"), name)
	}
}
