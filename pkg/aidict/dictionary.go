package aidict

import "sort"

// Dictionary is the full catalogue of GS1 Application Identifiers,
// exposing both exact lookup and trie-based longest-prefix matching.
type Dictionary struct {
	root    *trieNode
	entries map[string]*Spec
}

// New builds a Dictionary from a set of entries, indexing them into the
// trie. Exposed mainly for tests that want a reduced catalogue; normal
// callers should use Default.
func New(entries map[string]*Spec) *Dictionary {
	d := &Dictionary{root: newTrieNode(), entries: make(map[string]*Spec, len(entries))}
	for ai, spec := range entries {
		d.add(ai, spec)
	}
	return d
}

func (d *Dictionary) add(ai string, spec *Spec) {
	d.root.insert(ai, spec)
	d.entries[ai] = spec
}

// Get returns the Spec for an exact AI code, or nil if unknown.
func (d *Dictionary) Get(ai string) *Spec {
	return d.entries[ai]
}

// FindLongestMatch finds the longest AI recognized starting at text[start:].
// It returns the matching Spec and the number of characters it consumed
// from the AI code itself (2, 3 or 4), or (nil, 0) if nothing matches.
func (d *Dictionary) FindLongestMatch(text string, start int) (*Spec, int) {
	return d.root.findLongestMatch(text, start)
}

// Len returns the number of distinct AI codes in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// AllCodes returns every AI code in the dictionary, sorted.
func (d *Dictionary) AllCodes() []string {
	codes := make([]string, 0, len(d.entries))
	for ai := range d.entries {
		codes = append(codes, ai)
	}
	sort.Strings(codes)
	return codes
}

// Default is the standard GS1 AI dictionary, built once at package
// init from the embedded syntax table.
var Default = New(parseRawTable())
