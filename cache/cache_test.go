package cache

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/lexicon"
)

func TestLoadCachesLexica(t *testing.T) {
	is := is.New(t)
	CreateGlobalLexiconCache()

	loads := 0
	loader := func(cfg *config.Config, name string) (*lexicon.Lexicon, error) {
		loads++
		return lexicon.New(name, []string{"cat", "dog"}), nil
	}

	cfg := config.DefaultConfig()
	first, err := Load(cfg, "tiny", loader)
	is.NoErr(err)
	second, err := Load(cfg, "tiny", loader)
	is.NoErr(err)

	is.Equal(loads, 1)
	is.Equal(first, second)

	_, err = Load(cfg, "other", loader)
	is.NoErr(err)
	is.Equal(loads, 2)
}
