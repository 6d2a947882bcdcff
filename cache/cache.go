// Package cache keeps loaded lexica in memory so that repeated solves
// against the same word list do not reread it from disk. Useful when
// crossfill is embedded in a server filling many grids.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/lexicon"
)

type cache struct {
	sync.Mutex
	lexica map[string]*lexicon.Lexicon
}

type loadFunc func(cfg *config.Config, name string) (*lexicon.Lexicon, error)

// GlobalLexiconCache is our global lexicon cache, of course.
var GlobalLexiconCache *cache

func (c *cache) load(cfg *config.Config, name string, loadFunc loadFunc) error {
	log.Debug().Str("lexicon", name).Msg("loading into cache")

	lex, err := loadFunc(cfg, name)
	if err != nil {
		return err
	}
	c.lexica[name] = lex
	return nil
}

func (c *cache) get(cfg *config.Config, name string, loadFunc loadFunc) (*lexicon.Lexicon, error) {
	c.Lock()
	defer c.Unlock()
	if lex, ok := c.lexica[name]; ok {
		log.Debug().Str("lexicon", name).Msg("getting lexicon from cache")
		return lex, nil
	}
	if err := c.load(cfg, name, loadFunc); err != nil {
		return nil, err
	}
	return c.lexica[name], nil
}

func CreateGlobalLexiconCache() {
	GlobalLexiconCache = &cache{lexica: make(map[string]*lexicon.Lexicon)}
}

// Load fetches the named lexicon from the global cache, invoking loadFunc
// on a miss.
func Load(cfg *config.Config, name string, loadFunc loadFunc) (*lexicon.Lexicon, error) {
	if GlobalLexiconCache == nil {
		CreateGlobalLexiconCache()
	}
	return GlobalLexiconCache.get(cfg, name, loadFunc)
}
