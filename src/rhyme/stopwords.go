package rhyme

// stopWords never take part in assonance; they repeat too often to signal a
// deliberate vowel pattern.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "nor", "so", "yet", "if", "as",
		"at", "by", "for", "from", "in", "into", "of", "off", "on", "onto", "to", "up", "with",
		"i", "me", "my", "you", "your", "he", "him", "his", "she", "her", "it", "its",
		"we", "us", "our", "they", "them", "their",
		"this", "that", "these", "those", "there", "here",
		"is", "am", "are", "was", "were", "be", "been", "being",
		"do", "does", "did", "have", "has", "had",
		"not", "no", "just", "than", "then", "too", "very",
		"what", "when", "where", "who", "why", "how", "which",
		"i'm", "it's", "don't", "can't", "won't",
	} {
		stopWords[w] = struct{}{}
	}
}

func isStopWord(normalized string) bool {
	_, ok := stopWords[normalized]
	return ok
}
