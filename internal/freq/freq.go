package freq

import (
	"sort"
	"unicode/utf8"
)

// Entry is one (word, count) pair from a frequency table.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Table maps canonical words to occurrence counts while remembering the
// order in which words were first seen. First-seen order is the tie-break
// for every derived ranking, which keeps output deterministic across runs.
type Table struct {
	counts map[string]int
	order  []string
}

// Count builds a table from the canonical word stream.
func Count(words []string) *Table {
	t := &Table{counts: make(map[string]int, len(words))}
	for _, w := range words {
		if _, seen := t.counts[w]; !seen {
			t.order = append(t.order, w)
		}
		t.counts[w]++
	}
	return t
}

// Unique returns the number of distinct words.
func (t *Table) Unique() int { return len(t.counts) }

// Get returns the count for a canonical word, zero if absent.
func (t *Table) Get(word string) int { return t.counts[word] }

// Total returns the sum of all counts, which equals the length of the word
// stream the table was built from.
func (t *Table) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// TopN returns up to n entries ordered by count descending, first-seen
// order ascending.
func (t *Table) TopN(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	entries := t.entriesInFirstSeenOrder()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// LongestN returns up to n distinct words ordered by character length
// descending, first-seen order ascending.
func (t *Table) LongestN(n int) []string {
	if n <= 0 {
		return []string{}
	}
	words := make([]string, len(t.order))
	copy(words, t.order)
	sort.SliceStable(words, func(i, j int) bool {
		return utf8.RuneCountInString(words[i]) > utf8.RuneCountInString(words[j])
	})
	if len(words) > n {
		words = words[:n]
	}
	return words
}

func (t *Table) entriesInFirstSeenOrder() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, w := range t.order {
		entries = append(entries, Entry{Word: w, Count: t.counts[w]})
	}
	return entries
}

// AverageLength is the mean rune length over the raw (non-unique) token
// stream. Zero for an empty stream.
func AverageLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return float64(total) / float64(len(words))
}
