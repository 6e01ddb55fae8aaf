package rhymehammer

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"runtime/debug"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/kalexmills/rhyme-hammer/src/rhyme"
	"github.com/kalexmills/rhyme-hammer/src/rhymehammer/db"
)

type RhymeHammer struct {
	session *discordgo.Session
	db      *sql.DB

	config Config

	mut     sync.Mutex
	dmCache map[string]*discordgo.Channel
}

func NewRhymeHammer(config Config, DB *sql.DB) *RhymeHammer {
	log.Printf("Rhyme Bot Config:\n%v", config)
	return &RhymeHammer{
		config:  config,
		db:      DB,
		dmCache: make(map[string]*discordgo.Channel),
	}
}

func (h *RhymeHammer) Open() error {
	var err error
	h.session, err = discordgo.New("Bot " + h.config.Token)
	if err != nil {
		log.Println("error creating Discord session,", err)
		return err
	}

	if h.config.Debug {
		h.session.LogLevel = discordgo.LogDebug
	}

	h.session.AddHandler(h.ReceiveNewMessage)

	h.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMessageReactions | discordgo.IntentsDirectMessageReactions

	err = h.session.Open()
	if err != nil {
		log.Println("error opening connection,", err)
		return err
	}
	return nil
}

func (h *RhymeHammer) Close() error {
	return h.session.Close()
}

func (h *RhymeHammer) ReceiveNewMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic on content, %s, panicking on: %v\n%s", escapeNewlines(m.Content), r, debug.Stack())
			panic(r)
		}
	}()
	if m.Author == nil || m.Author.Bot { // prevent SkyNet; don't talk to bots
		return
	}
	if content, ok := h.command(m.Content); ok {
		if isAdminCommand(content) {
			h.HandleAdminCommand(s, m.Message, content)
			return
		}
		h.HandleAnalyze(s, m.Message, content)
		return
	}
	h.HandleChatter(s, m.Message)
}

// command strips the command prefix from content. The prefix must be followed
// by whitespace or the end of the message.
func (h *RhymeHammer) command(content string) (string, bool) {
	trimmed := strings.TrimLeft(content, " \t")
	if !strings.HasPrefix(trimmed, h.config.Prefix) {
		return "", false
	}
	rest := trimmed[len(h.config.Prefix):]
	if rest != "" {
		r, _ := utf8.DecodeRuneInString(rest)
		if !strings.ContainsRune(" \t\r\n", r) {
			return "", false
		}
	}
	return strings.TrimSpace(rest), true
}

// HandleAnalyze replies to an explicit request with a full report.
func (h *RhymeHammer) HandleAnalyze(s *discordgo.Session, m *discordgo.Message, text string) {
	if text == "" {
		h.reply(s, m, fmt.Sprintf("Send `%s` followed by some lines to analyze, or `%s help` for help.", h.config.Prefix, h.config.Prefix))
		return
	}
	if n := utf8.RuneCountInString(text); h.config.MaxInputLength > 0 && n > h.config.MaxInputLength {
		h.reply(s, m, fmt.Sprintf("That's %d characters; I can only analyze up to %d at a time.", n, h.config.MaxInputLength))
		return
	}
	settings, err := h.settings(m)
	if err != nil {
		log.Println("could not look up channel settings, using defaults,", err)
	}
	cfg, _ := h.config.Effective(settings)

	result := rhyme.Analyze(text, cfg)
	if h.config.Debug {
		log.Printf("analyzed %d words into %d groups: %s\n", len(result.Words), len(result.Groups), escapeNewlines(text))
	}
	h.reply(s, m, FormatReport(result, MessageLimit))
}

// HandleChatter applies the passive features to an ordinary message.
func (h *RhymeHammer) HandleChatter(s *discordgo.Session, m *discordgo.Message) {
	if strings.TrimSpace(m.Content) == "" {
		return
	}
	if h.config.MaxInputLength > 0 && utf8.RuneCountInString(m.Content) > h.config.MaxInputLength {
		return
	}
	settings, err := h.settings(m)
	if err != nil {
		log.Println("could not look up channel settings,", err)
		return
	}
	cfg, flags := h.config.Effective(settings)
	if !flags.AutoScheme() && !flags.ReactToRhyme() {
		return
	}

	result := rhyme.Analyze(m.Content, cfg)
	if len(result.Groups) == 0 {
		return
	}
	if flags.ReactToRhyme() {
		if reacts := h.config.reactsFor(settings); len(reacts) > 0 {
			h.react(s, m, randomString(reacts))
		}
	}
	if flags.AutoScheme() && result.Metrics.Lines > 1 {
		h.reply(s, m, FormatScheme(result))
		log.Println("sent rhyme scheme,", m.ID, result.Metrics.Scheme)
	}
}

// settings looks up the stored settings for the message's channel. Direct
// messages have no guild and only ever use the server defaults.
func (h *RhymeHammer) settings(m *discordgo.Message) (db.Settings, error) {
	if m.GuildID == "" || h.db == nil {
		return db.Settings{}, nil
	}
	gid, err := parseID(m.GuildID)
	if err != nil {
		return db.Settings{}, fmt.Errorf("could not parse guildID %q: %w", m.GuildID, err)
	}
	cid, err := parseID(m.ChannelID)
	if err != nil {
		return db.Settings{}, fmt.Errorf("could not parse channelID %q: %w", m.ChannelID, err)
	}
	return db.LookupSettings(context.Background(), h.db, gid, cid)
}

func (h *RhymeHammer) reply(s *discordgo.Session, m *discordgo.Message, content string) {
	ref := &discordgo.MessageReference{MessageID: m.ID, ChannelID: m.ChannelID, GuildID: m.GuildID}
	_, err := s.ChannelMessageSendReply(m.ChannelID, content, ref)
	if err != nil {
		log.Println("could not send reply,", err)
	}
}

// DM sends content to the author of m in a direct message.
func (h *RhymeHammer) DM(s *discordgo.Session, m *discordgo.Message, content string) {
	dmChannel, err := h.createDMChannel(s, m.Author.ID)
	if err != nil {
		log.Println("could not create user DM channel,", err)
		return
	}
	_, err = s.ChannelMessageSend(dmChannel.ID, content)
	if err != nil {
		log.Println("could not send message to user DM channel,", err)
	}
}

func (h *RhymeHammer) react(s *discordgo.Session, m *discordgo.Message, reaction string) {
	err := s.MessageReactionAdd(m.ChannelID, m.ID, reaction)
	if err != nil {
		log.Println("could not add emoji reaction,", err)
		return
	}
}

func (h *RhymeHammer) createDMChannel(s *discordgo.Session, authorID string) (*discordgo.Channel, error) {
	h.mut.Lock()
	c, ok := h.dmCache[authorID]
	h.mut.Unlock()
	if ok {
		return c, nil
	}
	c, err := s.UserChannelCreate(authorID)
	if err != nil {
		return nil, err
	}
	log.Println("retrieved new DM channel for user", authorID)
	h.mut.Lock()
	h.dmCache[authorID] = c
	h.mut.Unlock()
	return c, nil
}

func randomString(strs []string) string {
	return strs[rand.Intn(len(strs))]
}

func escapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}
