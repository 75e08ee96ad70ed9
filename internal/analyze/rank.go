package analyze

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// Rank reduces a multiset to a frequency table sorted by count
// descending. Equal-count keys keep the relative order of their first
// appearance in the input: counting is insertion-ordered and the sort
// is stable, so output is deterministic for a given input order.
func Rank[K comparable](items []K) []Entry[K] {
	index := make(map[K]int, len(items))
	entries := make([]Entry[K], 0, len(items))
	for _, it := range items {
		if i, ok := index[it]; ok {
			entries[i].Count++
			continue
		}
		index[it] = len(entries)
		entries = append(entries, Entry[K]{Key: it, Count: 1})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Total returns the sum of counts in a frequency table, which equals
// the size of the source multiset.
func Total[K comparable](entries []Entry[K]) int {
	var sum int
	for _, e := range entries {
		sum += e.Count
	}
	return sum
}

// keepWord reports whether a token is counted: longer than one rune,
// entirely alphanumeric, not entirely numeric, and its lower-cased
// form is not a stop word.
func keepWord(w string, stop Stoplist) bool {
	runes := []rune(w)
	if len(runes) <= 1 {
		return false
	}
	numeric := true
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsDigit(r) {
			numeric = false
		}
	}
	if numeric {
		return false
	}
	return !stop.Contains(strings.ToLower(w))
}

// FilterWords keeps countable tokens and lower-cases them, so word
// frequencies aggregate case-insensitively.
func FilterWords(words []string, stop Stoplist) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keepWord(w, stop) {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

// FilterPairs keeps sender/word pairs whose word component is
// countable. Only the word is filtered; the sender never is, and the
// word keeps its original case in the pair key.
func FilterPairs(pairs []Pair, stop Stoplist) []Pair {
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if keepWord(p.Second, stop) {
			out = append(out, p)
		}
	}
	return out
}

// Favorites reduces a ranked pair table to at most one entry per
// distinct first key: the first (highest-ranked) pairing encountered
// for that key. The result is a subsequence of the input.
func Favorites(ranked []Entry[Pair]) []Entry[Pair] {
	seen := make(map[string]bool)
	out := make([]Entry[Pair], 0, len(ranked))
	for _, e := range ranked {
		if e.Count <= 0 || seen[e.Key.First] {
			continue
		}
		seen[e.Key.First] = true
		out = append(out, e)
	}
	return out
}

// ActivityBuckets maps timestamps to weekly activity grid cells:
// full weekday name and two-digit hour.
func ActivityBuckets(timestamps []time.Time) []Bucket {
	out := make([]Bucket, 0, len(timestamps))
	for _, t := range timestamps {
		out = append(out, Bucket{
			Day:  t.Weekday().String(),
			Hour: t.Format("15"),
		})
	}
	return out
}
