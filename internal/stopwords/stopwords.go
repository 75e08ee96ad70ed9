// Package stopwords loads the word lists excluded from word frequency
// counting: embedded per-language lists or a user-supplied file with
// one lower-case word per line.
package stopwords

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

//go:embed data/*.txt
var dataFS embed.FS

// Set is a stop-word membership set over lower-case words.
type Set map[string]struct{}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Languages returns the names of the embedded language lists, sorted.
func Languages() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// Load returns the embedded stop-word list for the named language.
func Load(language string) (Set, error) {
	f, err := dataFS.Open("data/" + language + ".txt")
	if err != nil {
		return nil, fmt.Errorf("unknown stop-word language %q (available: %s)",
			language, strings.Join(Languages(), ", "))
	}
	defer f.Close()
	return parse(f)
}

// LoadFile reads a custom stop-word file: UTF-8 text, one word per line.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stop-word file: %w", err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) (Set, error) {
	set := make(Set)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		set[strings.ToLower(word)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stop words: %w", err)
	}
	return set, nil
}
