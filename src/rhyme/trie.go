package rhyme

// trieNode indexes spelling patterns letter by letter so the converter can
// find the longest pattern starting at a position in one walk.
type trieNode struct {
	isPattern bool
	phonemes  []Phoneme
	children  [26]*trieNode
}

func newTrie(patterns map[string][]Phoneme) *trieNode {
	root := &trieNode{}
	for pattern, phonemes := range patterns {
		root.insert(pattern, phonemes)
	}
	return root
}

func (n *trieNode) insert(pattern string, phonemes []Phoneme) {
	if len(pattern) == 0 {
		n.isPattern = true
		n.phonemes = phonemes
		return
	}

	child := n.Child(pattern[0])
	if child == nil {
		if pattern[0] < 'a' || pattern[0] > 'z' {
			return
		}
		child = &trieNode{}
		n.children[pattern[0]-'a'] = child
	}
	child.insert(pattern[1:], phonemes)
}

func (n *trieNode) Child(ch byte) *trieNode {
	if n == nil || ch < 'a' || ch > 'z' {
		return nil
	}
	return n.children[ch-'a']
}

// longestMatch returns the phonemes of the longest pattern that prefixes s
// and the number of letters it spans; zero when nothing matches.
func (n *trieNode) longestMatch(s string) ([]Phoneme, int) {
	var (
		best   []Phoneme
		length int
	)
	curr := n
	for i := 0; i < len(s); i++ {
		curr = curr.Child(s[i])
		if curr == nil {
			break
		}
		if curr.isPattern {
			best, length = curr.phonemes, i+1
		}
	}
	return best, length
}
