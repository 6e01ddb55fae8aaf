package db

import (
	"context"
	"strings"

	"github.com/jonbodner/proteus"
)

// FeatureFlag is a bitmask of optional analysis and bot features.
type FeatureFlag int64

const (
	FeatureAssonance FeatureFlag = 1 << iota
	FeatureAssonanceByFamily
	FeatureInternalRhymes
	FeaturePositionalScore
	FeatureAutoScheme
	FeatureReactToRhyme
)

// featureNames lists every feature in bit order; admin commands and
// FeatureFlag.String use these names.
var featureNames = []struct {
	name string
	flag FeatureFlag
}{
	{"Assonance", FeatureAssonance},
	{"AssonanceByFamily", FeatureAssonanceByFamily},
	{"InternalRhymes", FeatureInternalRhymes},
	{"PositionalScore", FeaturePositionalScore},
	{"AutoScheme", FeatureAutoScheme},
	{"ReactToRhyme", FeatureReactToRhyme},
}

// ParseFeature returns the flag for a feature name as written in admin commands.
func ParseFeature(name string) (FeatureFlag, bool) {
	for _, f := range featureNames {
		if f.name == name {
			return f.flag, true
		}
	}
	return 0, false
}

func (f FeatureFlag) Assonance() bool {
	return f&FeatureAssonance > 0
}

func (f FeatureFlag) AssonanceByFamily() bool {
	return f&FeatureAssonanceByFamily > 0
}

func (f FeatureFlag) InternalRhymes() bool {
	return f&FeatureInternalRhymes > 0
}

func (f FeatureFlag) PositionalScore() bool {
	return f&FeaturePositionalScore > 0
}

func (f FeatureFlag) AutoScheme() bool {
	return f&FeatureAutoScheme > 0
}

func (f FeatureFlag) ReactToRhyme() bool {
	return f&FeatureReactToRhyme > 0
}

func (f FeatureFlag) Or(other FeatureFlag) FeatureFlag {
	return f | other
}

func (f FeatureFlag) And(other FeatureFlag) FeatureFlag {
	return f & other
}

func (f FeatureFlag) String() string {
	var names []string
	for _, feat := range featureNames {
		if f&feat.flag > 0 {
			names = append(names, feat.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

type ChannelConfig struct {
	ChannelID int64       `prof:"channel_id"`
	Flags     FeatureFlag `prof:"flags"`
}

var ChannelConfigDAO ChannelConfigDAOImpl

type ChannelConfigDAOImpl struct {
	Upsert   func(ctx context.Context, e proteus.ContextExecutor, channelID int64, flags int64) (int64, error) `proq:"q:chan_upsert" prop:"channelID,flags"`
	FindByID func(ctx context.Context, e proteus.ContextQuerier, channelID int64) (ChannelConfig, error)   `proq:"q:chan_findByID" prop:"channelID"`
}

// GuildConfig holds guild-wide settings. Zero thresholds fall back to the
// server defaults; Reacts is a space-separated list of emoji.
type GuildConfig struct {
	GuildID          int64       `prof:"guild_id"`
	Flags            FeatureFlag `prof:"flags"`
	PerfectThreshold float64     `prof:"perfect_threshold"`
	SlantThreshold   float64     `prof:"slant_threshold"`
	Reacts           string      `prof:"reacts"`
}

var GuildConfigDAO GuildConfigDAOImpl

type GuildConfigDAOImpl struct {
	Upsert   func(ctx context.Context, e proteus.ContextExecutor, config GuildConfig) (int64, error) `proq:"q:guild_upsert" prop:"config"`
	FindByID func(ctx context.Context, e proteus.ContextQuerier, guildID int64) (GuildConfig, error) `proq:"q:guild_findByID" prop:"guildID"`
}

// Settings are the stored settings in effect for one channel.
type Settings struct {
	// Configured is false until an admin has changed anything guild-wide.
	Configured       bool
	Flags            FeatureFlag
	PerfectThreshold float64
	SlantThreshold   float64
	Reacts           []string
}

// LookupSettings merges the guild and channel rows for a channel. A feature
// enabled on either is enabled. Missing rows read as zero values.
func LookupSettings(ctx context.Context, e proteus.ContextQuerier, guildID int64, channelID int64) (Settings, error) {
	chanConf, err := ChannelConfigDAO.FindByID(ctx, e, channelID)
	if err != nil {
		return Settings{}, err
	}
	guildConf, err := GuildConfigDAO.FindByID(ctx, e, guildID)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Configured:       guildConf.GuildID != 0,
		Flags:            guildConf.Flags.Or(chanConf.Flags),
		PerfectThreshold: guildConf.PerfectThreshold,
		SlantThreshold:   guildConf.SlantThreshold,
		Reacts:           strings.Fields(guildConf.Reacts),
	}, nil
}

func init() {
	ctx := context.Background()
	m := proteus.MapMapper{
		"chan_upsert": `INSERT INTO channel_config (channel_id, flags)
						VALUES (:channelID:, :flags:)
						ON CONFLICT (channel_id)
						DO UPDATE SET flags = excluded.flags`,
		"chan_findByID": `SELECT * FROM channel_config WHERE channel_id = :channelID:`,
		"guild_upsert": `INSERT INTO guild_config (guild_id, flags, perfect_threshold, slant_threshold, reacts)
						VALUES (:config.GuildID:, :config.Flags:, :config.PerfectThreshold:, :config.SlantThreshold:, :config.Reacts:)
						ON CONFLICT (guild_id)
						DO UPDATE SET flags = excluded.flags, perfect_threshold = excluded.perfect_threshold,
						              slant_threshold = excluded.slant_threshold, reacts = excluded.reacts`,
		"guild_findByID": `SELECT * FROM guild_config WHERE guild_id = :guildID:`,
	}
	err := proteus.ShouldBuild(ctx, &ChannelConfigDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
	err = proteus.ShouldBuild(ctx, &GuildConfigDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}
