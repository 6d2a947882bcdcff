// Package lexicon provides the word universe a puzzle is filled from.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/domino14/crossfill/config"
)

var upper = cases.Upper(language.Und)

// A Lexicon is an immutable, normalized word list. Words are upper-cased
// and de-duplicated on construction; ordering is stable (sorted) so that
// downstream domain initialization is reproducible.
type Lexicon struct {
	name  string
	words []string
	set   map[string]struct{}
}

func New(name string, words []string) *Lexicon {
	normalized := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = upper.String(strings.TrimSpace(w))
		return w, w != ""
	})
	normalized = lo.Uniq(normalized)
	sort.Strings(normalized)

	set := make(map[string]struct{}, len(normalized))
	for _, w := range normalized {
		set[w] = struct{}{}
	}
	return &Lexicon{name: name, words: normalized, set: set}
}

func (l *Lexicon) Name() string {
	return l.name
}

func (l *Lexicon) Len() int {
	return len(l.words)
}

func (l *Lexicon) HasWord(w string) bool {
	_, ok := l.set[w]
	return ok
}

// Words returns the full word list. The returned slice is a copy.
func (l *Lexicon) Words() []string {
	return append([]string(nil), l.words...)
}

// Fingerprint hashes the word list. Two lexica with the same words have
// the same fingerprint regardless of name or input order; useful as a
// cache key and in logs.
func (l *Lexicon) Fingerprint() uint64 {
	h := xxhash.New()
	for _, w := range l.words {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// LoadFromFile reads the word list named name from the configured lexicon
// path (one word per line; blank lines and lines starting with '#' are
// skipped).
func LoadFromFile(cfg *config.Config, name string) (*Lexicon, error) {
	path := filepath.Join(cfg.GetString("lexicon-path"), name+".txt")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon %s: %w", name, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", name, err)
	}
	lex := New(name, words)
	log.Debug().
		Str("lexicon", name).
		Int("words", lex.Len()).
		Uint64("fingerprint", lex.Fingerprint()).
		Msg("loaded lexicon")
	return lex, nil
}
