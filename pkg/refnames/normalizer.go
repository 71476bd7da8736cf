package refnames

import (
	"github.com/gnames/gnparser"
)

// Normalizer converts a scientific name into a key used for joins.
type Normalizer interface {
	Key(name string) string
}

type verbatim struct{}

// Verbatim returns a Normalizer that uses names as they are.
func Verbatim() Normalizer {
	return verbatim{}
}

func (verbatim) Key(name string) string {
	return name
}

// cacheSize limits the number of parsed names a canonical Normalizer
// keeps in memory.
const cacheSize = 100_000

type canonical struct {
	prs   gnparser.GNparser
	limit int
	cache map[string]string
}

// Canonical returns a Normalizer that replaces a scientific name with its
// simple canonical form, for example "Apis mellifera Linnaeus, 1758"
// becomes "Apis mellifera". Names that cannot be parsed are kept verbatim.
//
// The Normalizer keeps up to 100,000 parsed results in memory and starts
// over when the limit is reached. It is not safe for concurrent use.
func Canonical() Normalizer {
	return newCanonical(cacheSize)
}

func newCanonical(limit int) *canonical {
	cfg := gnparser.NewConfig()
	return &canonical{
		prs:   gnparser.New(cfg),
		limit: max(limit, 1),
		cache: make(map[string]string),
	}
}

func (c *canonical) Key(name string) string {
	if name == "" {
		return ""
	}
	if res, ok := c.cache[name]; ok {
		return res
	}

	res := name
	p := c.prs.ParseName(name)
	if p.Parsed && p.Canonical != nil && p.Canonical.Simple != "" {
		res = p.Canonical.Simple
	}
	if len(c.cache) >= c.limit {
		clear(c.cache)
	}
	c.cache[name] = res
	return res
}
