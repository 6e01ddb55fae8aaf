package rhymehammer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kalexmills/rhyme-hammer/src/rhyme"
)

// MessageLimit is the most characters Discord accepts in one message.
const MessageLimit = 2000

const truncationMark = "\n…"

// FormatReport renders an analysis as a Discord message no longer than limit
// bytes. Sections are cut at line boundaries.
func FormatReport(r rhyme.Result, limit int) string {
	if len(r.Words) == 0 {
		return "I couldn't find any words to rhyme."
	}
	var sb strings.Builder
	m := r.Metrics
	fmt.Fprintf(&sb, "**Scheme** `%s`\n", m.Scheme)
	fmt.Fprintf(&sb, "**Density** %.0f%% of %d syllables, %.2f rhyming syllables per line, %.0f%% multi-syllable\n",
		100*m.Density, m.TotalSyllables, m.PerLineAverage, 100*m.MultiRatio)
	fmt.Fprintf(&sb, "**Matches** %d perfect, %d slant, %d multi, %d internal\n",
		m.Counts.Perfect, m.Counts.Slant, m.Counts.Multi, m.Counts.Internal)

	if len(r.Groups) > 0 {
		sb.WriteString("\n**Rhyme groups**\n")
		for _, g := range r.Groups {
			fmt.Fprintf(&sb, "%d. %s\n", g.ID+1, formatGroup(r, g))
		}
	}
	if len(r.Assonance) > 0 {
		sb.WriteString("\n**Assonance**\n")
		for _, g := range r.Assonance {
			fmt.Fprintf(&sb, "`%s` %s\n", g.Vowel, joinWords(r, g.Members))
		}
	}
	if len(r.Internal) > 0 {
		sb.WriteString("\n**Internal rhymes**\n")
		lines := make([]int, 0, len(r.Internal))
		for line := range r.Internal {
			lines = append(lines, line)
		}
		sort.Ints(lines)
		for _, line := range lines {
			pairs := make([]string, 0, len(r.Internal[line]))
			for _, p := range r.Internal[line] {
				pairs = append(pairs, r.Words[p.A].Text+"/"+r.Words[p.B].Text)
			}
			fmt.Fprintf(&sb, "line %d: %s\n", line+1, strings.Join(pairs, ", "))
		}
	}
	return truncate(strings.TrimRight(sb.String(), "\n"), limit)
}

// FormatScheme is the one-line summary sent for rhyming messages.
func FormatScheme(r rhyme.Result) string {
	return fmt.Sprintf("Rhyme scheme: `%s` (%d groups, %.0f%% density)", r.Metrics.Scheme, len(r.Groups), 100*r.Metrics.Density)
}

func formatGroup(r rhyme.Result, g rhyme.Group) string {
	var sb strings.Builder
	sb.WriteString(r.Words[g.Members[0]].Text)
	for _, link := range g.Links {
		sb.WriteString(", ")
		sb.WriteString(r.Words[link.Word].Text)
		if link.Kind != rhyme.MatchPerfect {
			fmt.Fprintf(&sb, " (%s)", link.Kind)
		}
	}
	return sb.String()
}

func joinWords(r rhyme.Result, members []int) string {
	words := make([]string, 0, len(members))
	for _, i := range members {
		words = append(words, r.Words[i].Text)
	}
	return strings.Join(words, ", ")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit - len(truncationMark)
	if cut <= 0 {
		return ""
	}
	if i := strings.LastIndexByte(s[:cut], '\n'); i > 0 {
		cut = i
	} else {
		for cut > 0 && !isRuneStart(s[cut]) {
			cut--
		}
	}
	return s[:cut] + truncationMark
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
