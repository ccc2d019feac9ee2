package eportfolio

import "strings"

// keywordIndex maps a lowercase keyword to the ascending positions of the
// holdings whose name or symbol contains it.
//
// Positions are only ever appended in increasing order, so every list stays
// sorted and duplicate-free by checking its last element.
type keywordIndex map[string][]int

// keywords returns the lowercase tokens of s, split on whitespace.
func keywords(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// add indexes the name tokens and the symbol of h at position pos.
// pos must be greater than any position already indexed.
func (idx keywordIndex) add(h *Holding, pos int) {
	for _, kw := range keywords(h.name) {
		idx.put(kw, pos)
	}
	if symbol := strings.ToLower(strings.TrimSpace(h.symbol)); symbol != "" {
		idx.put(symbol, pos)
	}
}

func (idx keywordIndex) put(kw string, pos int) {
	list := idx[kw]
	if n := len(list); n > 0 && list[n-1] == pos {
		return
	}
	idx[kw] = append(list, pos)
}

// rebuild clears the index and indexes all holdings at their current position.
func (idx keywordIndex) rebuild(holdings []*Holding) {
	clear(idx)
	for i, h := range holdings {
		idx.add(h, i)
	}
}

// lookup returns the positions matching every token (AND semantics).
// It returns nil when tokens is empty.
func (idx keywordIndex) lookup(tokens []string) []int {
	if len(tokens) == 0 {
		return nil
	}
	result := idx[tokens[0]]
	for _, kw := range tokens[1:] {
		if len(result) == 0 {
			break
		}
		result = intersect(result, idx[kw])
	}
	return result
}

// intersect returns the positions present in both sorted lists.
func intersect(a, b []int) []int {
	var out []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
