// Package lexicon builds the deduplicated, frequency-ordered vocabulary
// used by IndexedStringVariable: each distinct token is assigned an ID
// equal to its position in a list sorted by descending occurrence count,
// ties broken by first occurrence, mirroring Counter.most_common() over
// an insertion-ordered Counter.
package lexicon

import "sort"

// Build deduplicates tokens into a lexicon ordered by descending
// occurrence count (ties broken by order of first appearance), and
// returns, for each input token, its index into that lexicon.
//
// The reference implementation resolves a token's ID with a linear scan
// over the lexicon (lex.index(token)) for every occurrence, which is
// O(len(lexicon)*len(tokens)). Build instead keys a map from token to
// lexicon index once the lexicon is fixed, making the second pass O(1)
// per token.
func Build(tokens []string) (lex []string, ids []int) {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))

	for _, t := range tokens {
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	lex = make([]string, len(order))
	copy(lex, order)

	// Stable sort by descending count; order already reflects first
	// occurrence, so a stable sort preserves it as the tiebreak.
	sort.SliceStable(lex, func(i, j int) bool {
		return counts[lex[i]] > counts[lex[j]]
	})

	index := make(map[string]int, len(lex))
	for i, t := range lex {
		index[t] = i
	}

	ids = make([]int, len(tokens))
	for i, t := range tokens {
		ids[i] = index[t]
	}

	return lex, ids
}
