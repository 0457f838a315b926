package stringr

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize bounds the number of compiled patterns the package-level
// convenience functions keep around.
const cacheSize = 64

var (
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.WarnLevel,
		Prefix: "stringr",
	})

	cacheOnce sync.Once
	cache     *lru.Cache[string, *Matcher]
)

// SetLogger replaces the package logger. The default logs to stderr at
// warn level.
func SetLogger(l *log.Logger) {
	logger = l
}

// cachedCompile returns a matcher for p, reusing an earlier compilation of
// the same pattern when one is still cached.
func cachedCompile(p Pattern) (*Matcher, error) {
	cacheOnce.Do(func() {
		c, err := lru.New[string, *Matcher](cacheSize)
		if err != nil {
			// Only reachable with a non-positive size.
			logger.Error("pattern cache disabled", "err", err)
			return
		}
		cache = c
	})
	if cache == nil {
		return Compile(p)
	}

	key := p.key()
	if m, ok := cache.Get(key); ok {
		return m, nil
	}
	m, err := Compile(p)
	if err != nil {
		return nil, err
	}
	logger.Debug("compiled pattern", "pattern", p.String())
	cache.Add(key, m)
	return m, nil
}
