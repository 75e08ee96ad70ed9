// Package analyze accumulates classified chat records into per-category
// multisets and reduces them to ranked frequency tables. All reductions
// are pure computations over the frozen counter state.
package analyze

import "time"

// Entry is one row of a frequency table: a distinct key and how many
// times it occurred in the source multiset.
type Entry[K comparable] struct {
	Key   K
	Count int
}

// Pair couples a sender with one of their words or emojis.
type Pair struct {
	First  string
	Second string
}

// Bucket is one cell of the weekly activity grid: a full weekday name
// and a two-digit hour.
type Bucket struct {
	Day  string
	Hour string
}

// Counter is the aggregation state for one analysis run: scalar
// counters plus multisets collected in record-arrival order. Arrival
// order is significant — it is the tie-break source for ranking.
type Counter struct {
	ChatCount        int
	DeletedChatCount int
	EventCount       int
	AttachmentCount  int

	Senders           []string
	Words             []string
	Domains           []string
	Emojis            []string
	Timestamps        []time.Time
	SenderEmojis      []Pair
	SenderWords       []Pair
	AttachmentSenders []string
}

// Stoplist is an opaque set of lower-case words excluded from word
// frequency counting.
type Stoplist interface {
	Contains(word string) bool
}
