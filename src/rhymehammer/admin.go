package rhymehammer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/kalexmills/rhyme-hammer/src/rhymehammer/db"
)

// adminCommandPerms is a bitmask for the min permissions required to send admin commands. If any flag is set, the
// user can send RhymeHammer admin commands.
const adminCommandPerms = discordgo.PermissionAdministrator | discordgo.PermissionManageChannels | discordgo.PermissionManageServer

const targetGlobal = "global"

// HandleAdminCommand runs an admin command. content is the message text with the command prefix removed.
// Help is open to everyone, in guilds and direct messages alike.
func (h *RhymeHammer) HandleAdminCommand(s *discordgo.Session, m *discordgo.Message, content string) {
	command, parseErr := parseCommand(content, h.config.Prefix)
	if parseErr == nil && openToAll(command) {
		h.reply(s, m, adminHelp(h.config.Prefix))
		return
	}
	if m.GuildID == "" {
		h.reply(s, m, "Admin commands must be sent in the guild they are meant to apply to.")
		return
	}
	perms, err := h.Permissions(s, m)
	if err != nil {
		log.Println("could not retrieve permissions for user, ignoring admin command,", err)
		return
	}
	if perms&adminCommandPerms == 0 {
		if h.config.Debug {
			log.Printf("could not verify admin permissions, found perms %d, expected %d", perms, adminCommandPerms)
		}
		h.DM(s, m, fmt.Sprintf("You do not have permissions to manage RhymeHammer in <#%s>", m.ChannelID))
		return
	}
	if parseErr != nil {
		h.reply(s, m, parseErr.Error())
		return
	}

	switch command.Operation {
	case OpFeatureOn:
		if err := h.updateFeatures(m, command, EnableFeatures); err != nil {
			log.Println("could not enable features,", err)
			h.reply(s, m, "Sorry, I could not save those features.")
			return
		}
		h.reply(s, m, fmt.Sprintf("Enabled features %s for target %s", command.Features, command.MentionTarget()))
	case OpFeatureOff:
		if err := h.updateFeatures(m, command, DisableFeatures); err != nil {
			log.Println("could not disable features,", err)
			h.reply(s, m, "Sorry, I could not save those features.")
			return
		}
		h.reply(s, m, fmt.Sprintf("Disabled features %s for target %s", command.Features, command.MentionTarget()))
	case OpFeatureList:
		h.handleFeatureList(s, m, command)
	case OpThreshold:
		if err := h.updateThreshold(m, command); err != nil {
			log.Println("could not update threshold,", err)
			h.reply(s, m, "Sorry, I could not save that threshold.")
			return
		}
		h.reply(s, m, fmt.Sprintf("Set the %s threshold to %.2f for this guild", command.Threshold, command.Value))
	case OpReacts:
		if err := h.updateReacts(m, command); err != nil {
			log.Println("could not update reactions,", err)
			h.reply(s, m, "Sorry, I could not save those reactions.")
			return
		}
		if len(command.Reacts) == 0 {
			h.reply(s, m, "Reset reactions to the defaults for this guild")
			return
		}
		h.reply(s, m, fmt.Sprintf("Set reactions to %s for this guild", strings.Join(command.Reacts, " ")))
	}
}

// Permissions computes the guild permissions of the message author from their roles.
func (h *RhymeHammer) Permissions(s *discordgo.Session, m *discordgo.Message) (int64, error) {
	g, err := s.Guild(m.GuildID)
	if err != nil {
		return 0, err
	}
	if g.OwnerID == m.Author.ID {
		return discordgo.PermissionAll, nil
	}
	member, err := s.GuildMember(m.GuildID, m.Author.ID)
	if err != nil {
		return 0, err
	}
	roles, err := s.GuildRoles(m.GuildID)
	if err != nil {
		return 0, err
	}
	roleMap := make(map[string]int64)
	for _, role := range roles {
		roleMap[role.ID] = role.Permissions
	}
	permissions := roleMap[m.GuildID] // @everyone shares the guild's ID
	for _, role := range member.Roles {
		permissions |= roleMap[role]
	}
	if permissions&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator {
		return discordgo.PermissionAll, nil
	}
	return permissions, nil
}

func (h *RhymeHammer) handleFeatureList(s *discordgo.Session, m *discordgo.Message, command Command) {
	ctx := context.Background()
	var flags db.FeatureFlag
	switch command.Target {
	case targetGlobal:
		gid, err := parseID(m.GuildID)
		if err != nil {
			log.Println("could not parse guildID as integer,", m.GuildID)
			return
		}
		currConfig, err := db.GuildConfigDAO.FindByID(ctx, h.db, gid)
		if err != nil {
			log.Println("could not read guild config from database,", err)
			return
		}
		flags = currConfig.Flags
		if currConfig.GuildID == 0 {
			flags = h.config.Flags
		}
	default:
		cid, err := parseID(command.Target)
		if err != nil {
			log.Println("could not parse channelID as integer,", command.Target)
			return
		}
		currConfig, err := db.ChannelConfigDAO.FindByID(ctx, h.db, cid)
		if err != nil {
			log.Println("could not read channel config from database,", err)
			return
		}
		flags = currConfig.Flags
	}
	h.reply(s, m, fmt.Sprintf("Features enabled for target %s: %s", command.MentionTarget(), flags))
}

type featureMutator func(db.FeatureFlag, db.FeatureFlag) db.FeatureFlag

func EnableFeatures(current db.FeatureFlag, feats db.FeatureFlag) db.FeatureFlag {
	return current.Or(feats)
}

func DisableFeatures(current db.FeatureFlag, feats db.FeatureFlag) db.FeatureFlag {
	return current.And(^feats) // and with bitwise not
}

// guildConfig reads the stored guild config. A guild without a row starts
// from the server defaults so the first change does not wipe them.
func (h *RhymeHammer) guildConfig(ctx context.Context, guildID string) (db.GuildConfig, error) {
	gid, err := parseID(guildID)
	if err != nil {
		return db.GuildConfig{}, fmt.Errorf("could not parse guildID %q: %w", guildID, err)
	}
	currConfig, err := db.GuildConfigDAO.FindByID(ctx, h.db, gid)
	if err != nil {
		return db.GuildConfig{}, fmt.Errorf("could not read guild config: %w", err)
	}
	if currConfig.GuildID == 0 {
		currConfig.GuildID = gid
		currConfig.Flags = h.config.Flags
	}
	return currConfig, nil
}

func (h *RhymeHammer) updateFeatures(m *discordgo.Message, command Command, mutator featureMutator) error {
	ctx := context.Background()
	switch command.Target {
	case targetGlobal:
		currConfig, err := h.guildConfig(ctx, m.GuildID) // read
		if err != nil {
			return err
		}

		currConfig.Flags = mutator(currConfig.Flags, command.Features) // modify

		if _, err = db.GuildConfigDAO.Upsert(ctx, h.db, currConfig); err != nil { // write
			return fmt.Errorf("could not update guild config: %w", err)
		}
	default: // channel ID (target was verified by parseCommand)
		cid, err := parseID(command.Target)
		if err != nil {
			return fmt.Errorf("could not parse channelID %q: %w", command.Target, err)
		}
		currConfig, err := db.ChannelConfigDAO.FindByID(ctx, h.db, cid)
		if err != nil {
			return fmt.Errorf("could not read channel config: %w", err)
		}

		currConfig.Flags = mutator(currConfig.Flags, command.Features)

		if _, err = db.ChannelConfigDAO.Upsert(ctx, h.db, cid, int64(currConfig.Flags)); err != nil {
			return fmt.Errorf("could not update channel config: %w", err)
		}
	}
	return nil
}

func (h *RhymeHammer) updateThreshold(m *discordgo.Message, command Command) error {
	ctx := context.Background()
	currConfig, err := h.guildConfig(ctx, m.GuildID)
	if err != nil {
		return err
	}
	switch command.Threshold {
	case ThresholdPerfect:
		currConfig.PerfectThreshold = command.Value
	case ThresholdSlant:
		currConfig.SlantThreshold = command.Value
	}
	if _, err = db.GuildConfigDAO.Upsert(ctx, h.db, currConfig); err != nil {
		return fmt.Errorf("could not update guild config: %w", err)
	}
	return nil
}

func (h *RhymeHammer) updateReacts(m *discordgo.Message, command Command) error {
	ctx := context.Background()
	currConfig, err := h.guildConfig(ctx, m.GuildID)
	if err != nil {
		return err
	}
	currConfig.Reacts = strings.Join(command.Reacts, " ")
	if _, err = db.GuildConfigDAO.Upsert(ctx, h.db, currConfig); err != nil {
		return fmt.Errorf("could not update guild config: %w", err)
	}
	return nil
}

// openToAll reports commands that need neither a guild nor admin permissions.
func openToAll(c Command) bool {
	return c.Operation == OpHelp
}

type Operation uint8

const (
	OpFeatureOn Operation = iota
	OpFeatureOff
	OpFeatureList
	OpThreshold
	OpReacts
	OpHelp
)

const (
	ThresholdPerfect = "perfect"
	ThresholdSlant   = "slant"
)

type Command struct {
	Operation Operation
	Target    string
	Features  db.FeatureFlag

	// Threshold and Value are set for OpThreshold.
	Threshold string
	Value     float64
	// Reacts is set for OpReacts; empty restores the server defaults.
	Reacts []string
}

func (c Command) MentionTarget() string {
	if c.Target == targetGlobal {
		return targetGlobal
	}
	return fmt.Sprintf("<#%s>", c.Target)
}

// isAdminCommand reports whether content, with the prefix removed, has the shape of an admin command. Anything
// else is a verse to analyze, even when it starts with a command word ("help me find a rhyme").
func isAdminCommand(content string) bool {
	tokens := strings.Fields(content)
	if len(tokens) == 0 {
		return false
	}
	switch tokens[0] {
	case "help":
		return len(tokens) == 1
	case "reacts":
		return true
	case "feature":
		return len(tokens) > 1 && (tokens[1] == "on" || tokens[1] == "off" || tokens[1] == "list")
	case "threshold":
		return len(tokens) > 1 && (tokens[1] == ThresholdPerfect || tokens[1] == ThresholdSlant)
	}
	return false
}

func parseCommand(content string, prefix string) (Command, error) {
	tokens := strings.Fields(content)
	if len(tokens) < 1 {
		return Command{}, fmt.Errorf("expected a valid command after `%s`; send `%s help` for help", prefix, prefix)
	}
	command := tokens[0]
	if len(tokens) > 1 {
		command += " " + tokens[1]
	}
	result := Command{}
	switch {
	case command == "feature on":
		result.Operation = OpFeatureOn
		if len(tokens) < 4 {
			return Command{}, fmt.Errorf("expected a target and list of features after `feature on`; send `%s help` for help", prefix)
		}
	case command == "feature off":
		result.Operation = OpFeatureOff
		if len(tokens) < 4 {
			return Command{}, fmt.Errorf("expected a target and list of features after `feature off`; send `%s help` for help", prefix)
		}
	case command == "feature list":
		result.Operation = OpFeatureList
		if len(tokens) < 3 {
			return Command{}, fmt.Errorf("expected a target after `feature list`; send `%s help` for help", prefix)
		}
	case tokens[0] == "threshold":
		return parseThreshold(tokens[1:], prefix)
	case tokens[0] == "reacts":
		return parseReacts(tokens[1:])
	case tokens[0] == "help":
		result.Operation = OpHelp
		return result, nil
	default:
		return Command{}, fmt.Errorf("could not understand command %s", command)
	}

	target, err := parseTarget(tokens[2])
	if err != nil {
		return Command{}, err
	}
	result.Target = target
	if result.Operation == OpFeatureList {
		return result, nil
	}

	result.Features, err = parseFeatures(tokens[3:], prefix)
	if err != nil {
		return Command{}, err
	}
	return result, nil
}

// parseTarget accepts `global` or a channel mention and returns `global` or the channel ID.
func parseTarget(target string) (string, error) {
	if target == targetGlobal {
		return target, nil
	}
	if strings.HasPrefix(target, "<#") && strings.HasSuffix(target, ">") {
		id, err := parseID(target[2 : len(target)-1])
		if err != nil {
			return "", fmt.Errorf("couldn't parse target '%s' as valid channel mention", target)
		}
		return strconv.FormatInt(id, 10), nil
	}
	return "", fmt.Errorf("couldn't parse target '%s' as valid target", target)
}

func parseThreshold(args []string, prefix string) (Command, error) {
	if len(args) != 2 {
		return Command{}, fmt.Errorf("expected `perfect` or `slant` and a value after `threshold`; send `%s help` for help", prefix)
	}
	if args[0] != ThresholdPerfect && args[0] != ThresholdSlant {
		return Command{}, fmt.Errorf("unknown threshold '%s'; expected `perfect` or `slant`", args[0])
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil || value < 0 || value > 1 {
		return Command{}, fmt.Errorf("threshold must be a number between 0 and 1, got '%s'", args[1])
	}
	return Command{Operation: OpThreshold, Target: targetGlobal, Threshold: args[0], Value: value}, nil
}

// maxReacts bounds how many reactions a guild can store.
const maxReacts = 10

// parseReacts accepts unicode emoji and custom emoji mentions (<:name:id>, <a:name:id>), converting mentions to
// the name:id form Discord expects when reacting.
func parseReacts(args []string) (Command, error) {
	if len(args) > maxReacts {
		return Command{}, fmt.Errorf("expected at most %d reactions, got %d", maxReacts, len(args))
	}
	var reacts []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "<") {
			if !strings.HasSuffix(arg, ">") || strings.Count(arg, ":") != 2 {
				return Command{}, fmt.Errorf("couldn't parse '%s' as an emoji", arg)
			}
			arg = strings.TrimPrefix(strings.TrimPrefix(arg[1:len(arg)-1], "a"), ":")
		}
		reacts = append(reacts, arg)
	}
	return Command{Operation: OpReacts, Target: targetGlobal, Reacts: reacts}, nil
}

func parseFeatures(features []string, prefix string) (db.FeatureFlag, error) {
	var result db.FeatureFlag
	for _, feature := range features {
		flag, ok := db.ParseFeature(feature)
		if !ok {
			return 0, fmt.Errorf("could not understand '%s' as a valid feature; send `%s help` for help", feature, prefix)
		}
		result |= flag
	}
	if result == 0 {
		return 0, errors.New("expected at least one feature")
	}
	return result, nil
}

func parseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

func adminHelp(prefix string) string {
	return strings.ReplaceAll(strings.ReplaceAll(adminHelpTemplate, "~~~", "`"), "{prefix}", prefix)
}

const adminHelpTemplate = `Send ~~~{prefix} [text]~~~ to have a verse analyzed; the text may start on the next line.

Admin commands must be sent in the guild they are meant to apply to.
  ~~~{prefix} feature on [target] [feature feature...]~~~
  ~~~{prefix} feature off [target] [feature feature...]~~~
  ~~~{prefix} feature list [target]~~~
  ~~~{prefix} threshold perfect|slant [value]~~~
  ~~~{prefix} reacts [emoji emoji...]~~~

~~~[target]~~~ can be either a channel mention or ~~~global~~~ to enable features for every channel in the guild.
~~~[feature feature...]~~~ is a space-separated list of features from the below list.
~~~[value]~~~ is a distance between 0 and 1; higher values accept looser rhymes, 0 restores the default.
~~~reacts~~~ sets the emoji used by ~~~ReactToRhyme~~~ in this guild; send it with no emoji to restore the defaults.

   - ~~~Assonance~~~ - report groups of words sharing a stressed vowel
   - ~~~AssonanceByFamily~~~ - group assonance by vowel family instead of exact vowel
   - ~~~InternalRhymes~~~ - report rhyming pairs within a single line
   - ~~~PositionalScore~~~ - compare words by their trailing sounds instead of rhyme-key distance
   - ~~~AutoScheme~~~ - reply to every multi-line message that rhymes with its rhyme scheme
   - ~~~ReactToRhyme~~~ - add an emoji reaction to messages that rhyme
`
