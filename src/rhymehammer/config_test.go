package rhymehammer

import (
	"testing"

	"github.com/kalexmills/rhyme-hammer/src/rhyme"
	"github.com/kalexmills/rhyme-hammer/src/rhymehammer/db"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	conf, err := ReadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "!rhyme", conf.Prefix)
	assert.Equal(t, 4000, conf.MaxInputLength)
	assert.Equal(t, rhyme.DefaultConfig(), conf.Analysis)
	assert.Equal(t, db.FeatureAssonance|db.FeatureInternalRhymes|db.FeatureReactToRhyme, conf.Flags)
	assert.NotEmpty(t, conf.Reacts)
	assert.Equal(t, "./rhymeDB.sqlite3", conf.DBPath)
}

func TestReadConfig_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("perfectThreshold", 0.2)
	v.Set("matchStrategy", "positional-score")
	v.Set("assonance", false)
	v.Set("autoScheme", true)
	v.Set("lineRadius", 4)

	conf, err := ReadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 0.2, conf.Analysis.PerfectThreshold)
	assert.Equal(t, rhyme.StrategyPositional, conf.Analysis.Strategy)
	assert.Equal(t, 4, conf.Analysis.LineRadius)
	assert.False(t, conf.Flags.Assonance())
	assert.True(t, conf.Flags.PositionalScore())
	assert.True(t, conf.Flags.AutoScheme())
}

func TestReadConfig_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("matchStrategy", "soundex")
	_, err := ReadConfig(v)
	assert.Error(t, err)

	v = viper.New()
	SetDefaults(v)
	v.Set("prefix", "  ")
	_, err = ReadConfig(v)
	assert.Error(t, err)
}

func TestEffective(t *testing.T) {
	conf := Config{
		Analysis: rhyme.DefaultConfig(),
		Flags:    db.FeatureAssonance | db.FeatureReactToRhyme,
		Reacts:   []string{"🎤"},
	}

	// unconfigured guild: server defaults plus channel features
	cfg, flags := conf.Effective(db.Settings{Flags: db.FeaturePositionalScore})
	assert.True(t, cfg.Assonance)
	assert.False(t, cfg.InternalRhymes)
	assert.Equal(t, rhyme.StrategyPositional, cfg.Strategy)
	assert.True(t, flags.ReactToRhyme())
	assert.Equal(t, rhyme.DefaultPerfectThreshold, cfg.PerfectThreshold)

	// configured guild: stored flags replace the defaults
	cfg, flags = conf.Effective(db.Settings{Configured: true, Flags: db.FeatureInternalRhymes, SlantThreshold: 0.5})
	assert.False(t, cfg.Assonance)
	assert.True(t, cfg.InternalRhymes)
	assert.Equal(t, rhyme.StrategyDistance, cfg.Strategy)
	assert.False(t, flags.ReactToRhyme())
	assert.Equal(t, rhyme.DefaultPerfectThreshold, cfg.PerfectThreshold)
	assert.Equal(t, 0.5, cfg.SlantThreshold)

	assert.Equal(t, []string{"🎤"}, conf.reactsFor(db.Settings{}))
	assert.Equal(t, []string{"🔥"}, conf.reactsFor(db.Settings{Reacts: []string{"🔥"}}))
}
