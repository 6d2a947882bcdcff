package lexicon

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/crossfill/config"
)

func TestNewNormalizes(t *testing.T) {
	is := is.New(t)
	lex := New("test", []string{" cat ", "CAT", "dog", "", "Ten"})
	is.Equal(lex.Words(), []string{"CAT", "DOG", "TEN"})
	is.Equal(lex.Len(), 3)
	is.True(lex.HasWord("CAT"))
	is.True(!lex.HasWord("cat"))
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	a := New("a", []string{"cat", "dog"})
	b := New("b", []string{"DOG", "CAT", "dog"})
	c := New("c", []string{"cat", "dog", "ten"})
	// Same words, same fingerprint, regardless of name, case, or order.
	is.Equal(a.Fingerprint(), b.Fingerprint())
	is.True(a.Fingerprint() != c.Fingerprint())
}

func TestLoadFromFile(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set("lexicon-path", "testdata")

	lex, err := LoadFromFile(cfg, "small")
	is.NoErr(err)
	is.Equal(lex.Name(), "small")
	// Comments and blank lines skipped, case folded, dupes collapsed.
	is.Equal(lex.Words(), []string{"CAT", "DOG", "NET", "TEN"})
}

func TestLoadFromFileMissing(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set("lexicon-path", "testdata")

	_, err := LoadFromFile(cfg, "nonexistent")
	is.True(err != nil)
}
