package rhymehammer

import (
	"fmt"
	"strings"

	"github.com/kalexmills/rhyme-hammer/src/rhyme"
	"github.com/kalexmills/rhyme-hammer/src/rhymehammer/db"
	"github.com/spf13/viper"
)

type Config struct {
	Token  string
	Prefix string
	// MaxInputLength is the largest message, in characters, that will be analyzed.
	MaxInputLength int
	// Analysis carries the server-wide thresholds and bounds.
	Analysis rhyme.Config
	// Flags are the features enabled for guilds that have not configured their own.
	Flags  db.FeatureFlag
	Reacts []string

	DBPath string
	Debug  bool
}

func (c Config) String() string {
	return fmt.Sprintf("\tPrefix: %s\n\tMaxInputLength: %d\n\tPerfectThreshold: %.2f\n\tSlantThreshold: %.2f\n\tMaxWords: %d\n\tLineRadius: %d\n\tFeatures: %s\n\tDBPath: %s\n",
		c.Prefix, c.MaxInputLength, c.Analysis.PerfectThreshold, c.Analysis.SlantThreshold,
		c.Analysis.MaxWords, c.Analysis.LineRadius, c.Flags, c.DBPath)
}

// SetDefaults registers the default value of every configuration key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prefix", "!rhyme")
	v.SetDefault("maxInputLength", 4000)
	v.SetDefault("perfectThreshold", rhyme.DefaultPerfectThreshold)
	v.SetDefault("slantThreshold", rhyme.DefaultSlantThreshold)
	v.SetDefault("assonance", true)
	v.SetDefault("assonanceByFamily", false)
	v.SetDefault("internalRhymes", true)
	v.SetDefault("matchStrategy", string(rhyme.StrategyDistance))
	v.SetDefault("maxWords", rhyme.DefaultMaxWords)
	v.SetDefault("lineRadius", 0)
	v.SetDefault("autoScheme", false)
	v.SetDefault("reactToRhyme", true)
	v.SetDefault("reacts", []string{"🎤", "🔥", "🎶", "💯"})
	v.SetDefault("dbPath", "./rhymeDB.sqlite3")
	v.SetDefault("debug", false)
}

// AnalysisConfig reads the analysis keys from v.
func AnalysisConfig(v *viper.Viper) (rhyme.Config, error) {
	strategy, err := rhyme.ParseStrategy(v.GetString("matchStrategy"))
	if err != nil {
		return rhyme.Config{}, err
	}
	return rhyme.Config{
		PerfectThreshold:  v.GetFloat64("perfectThreshold"),
		SlantThreshold:    v.GetFloat64("slantThreshold"),
		Assonance:         v.GetBool("assonance"),
		AssonanceByFamily: v.GetBool("assonanceByFamily"),
		InternalRhymes:    v.GetBool("internalRhymes"),
		Strategy:          strategy,
		MaxWords:          v.GetInt("maxWords"),
		LineRadius:        v.GetInt("lineRadius"),
	}, nil
}

// ReadConfig builds the bot configuration from v.
func ReadConfig(v *viper.Viper) (Config, error) {
	analysis, err := AnalysisConfig(v)
	if err != nil {
		return Config{}, fmt.Errorf("could not read analysis config: %w", err)
	}
	prefix := strings.TrimSpace(v.GetString("prefix"))
	if prefix == "" {
		return Config{}, fmt.Errorf("prefix must not be empty")
	}

	flags := flagsOf(analysis)
	if v.GetBool("autoScheme") {
		flags |= db.FeatureAutoScheme
	}
	if v.GetBool("reactToRhyme") {
		flags |= db.FeatureReactToRhyme
	}
	return Config{
		Token:          v.GetString("token"),
		Prefix:         prefix,
		MaxInputLength: v.GetInt("maxInputLength"),
		Analysis:       analysis,
		Flags:          flags,
		Reacts:         v.GetStringSlice("reacts"),
		DBPath:         v.GetString("dbPath"),
		Debug:          v.GetBool("debug"),
	}, nil
}

func flagsOf(cfg rhyme.Config) db.FeatureFlag {
	var flags db.FeatureFlag
	if cfg.Assonance {
		flags |= db.FeatureAssonance
	}
	if cfg.AssonanceByFamily {
		flags |= db.FeatureAssonanceByFamily
	}
	if cfg.InternalRhymes {
		flags |= db.FeatureInternalRhymes
	}
	if cfg.Strategy == rhyme.StrategyPositional {
		flags |= db.FeaturePositionalScore
	}
	return flags
}

// Effective resolves the analysis config and feature flags for one channel.
// Guilds that never configured anything start from the server defaults;
// stored thresholds of zero keep the server threshold.
func (c Config) Effective(s db.Settings) (rhyme.Config, db.FeatureFlag) {
	flags := s.Flags
	if !s.Configured {
		flags = flags.Or(c.Flags)
	}

	cfg := c.Analysis
	cfg.Assonance = flags.Assonance()
	cfg.AssonanceByFamily = flags.AssonanceByFamily()
	cfg.InternalRhymes = flags.InternalRhymes()
	cfg.Strategy = rhyme.StrategyDistance
	if flags.PositionalScore() {
		cfg.Strategy = rhyme.StrategyPositional
	}
	if s.PerfectThreshold > 0 {
		cfg.PerfectThreshold = s.PerfectThreshold
	}
	if s.SlantThreshold > 0 {
		cfg.SlantThreshold = s.SlantThreshold
	}
	return cfg, flags
}

// reactsFor prefers reactions stored for the guild over the server defaults.
func (c Config) reactsFor(s db.Settings) []string {
	if len(s.Reacts) > 0 {
		return s.Reacts
	}
	return c.Reacts
}
