// Package regexp adapts the stdlib regexp/syntax engine to ECMAScript-style
// construction semantics: a bounded, compute-if-absent cache keyed by
// pattern/flags, flag validation restricted to g/i/m, and empty-pattern
// normalization.
//
// The cache-then-compile shape follows a conventional regex-helper cache:
// each Cache uses sync.Map for compute-if-absent semantics, so readers
// never block writers.
package regexp

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// RegExp is a compiled pattern plus the flags it was built with.
type RegExp struct {
	Source string
	Flags  string
	Global bool
	re     *regexp.Regexp
}

func (r *RegExp) Regexp() *regexp.Regexp { return r.re }

// FlagError reports an invalid flag string, naming the specific rule
// violated.
type FlagError struct {
	Flags string
	Rule  string // "repeated.flag" or "unsupported.flag"
	Flag  byte
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("%s: %q in %q", e.Rule, string(e.Flag), e.Flags)
}

// validateFlags accepts only g, i, m, each at most once, in any order.
func validateFlags(flags string) (goFlags string, global bool, err error) {
	seen := make(map[byte]bool, len(flags))
	var letters []byte
	for i := 0; i < len(flags); i++ {
		f := flags[i]
		if seen[f] {
			return "", false, &FlagError{Flags: flags, Rule: "repeated.flag", Flag: f}
		}
		switch f {
		case 'g', 'i', 'm':
			seen[f] = true
			letters = append(letters, f)
		default:
			return "", false, &FlagError{Flags: flags, Rule: "unsupported.flag", Flag: f}
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	var inline []byte
	for _, f := range letters {
		switch f {
		case 'i':
			inline = append(inline, 'i')
		case 'm':
			inline = append(inline, 'm')
		case 'g':
			global = true
		}
	}
	if len(inline) > 0 {
		goFlags = "(?" + string(inline) + ")"
	}
	return goFlags, global, nil
}

// normalizePattern maps the empty pattern to a no-op non-capturing group,
// matching every position without ever matching a character.
func normalizePattern(pattern string) string {
	if pattern == "" {
		return "(?:)"
	}
	return pattern
}

// Compile builds a RegExp directly, bypassing the cache. Most callers
// should use a Cache's Create instead.
func Compile(pattern, flags string) (*RegExp, error) {
	goFlags, global, err := validateFlags(flags)
	if err != nil {
		return nil, err
	}
	pattern = normalizePattern(pattern)
	re, err := regexp.Compile(goFlags + pattern)
	if err != nil {
		return nil, err
	}
	return &RegExp{Source: pattern, Flags: flags, Global: global, re: re}, nil
}

// Cache is a bounded, concurrent compute-if-absent pattern/flag cache.
// Readers never block writers: hits take the fast sync.Map path, and a
// miss compiles outside any lock before racing to store (the loser's
// compiled RegExp is simply discarded in favor of the winner's).
type Cache struct {
	limit   int
	entries sync.Map // string(key) -> *RegExp
	mu      sync.Mutex
	order   []string // approximate insertion order, for eviction
}

// NewCache returns a Cache that holds at most limit distinct pattern/flag
// pairs, evicting the oldest entry (by insertion order) once full.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = 256
	}
	return &Cache{limit: limit}
}

func cacheKey(pattern, flags string) string {
	return pattern + "\x00" + flags
}

// Create returns the cached RegExp for pattern/flags, compiling and
// storing it on a miss.
func (c *Cache) Create(pattern, flags string) (*RegExp, error) {
	key := cacheKey(pattern, flags)
	if v, ok := c.entries.Load(key); ok {
		return v.(*RegExp), nil
	}
	re, err := Compile(pattern, flags)
	if err != nil {
		return nil, err
	}
	if _, loaded := c.entries.LoadOrStore(key, re); !loaded {
		c.mu.Lock()
		c.order = append(c.order, key)
		if len(c.order) > c.limit {
			evict := c.order[0]
			c.order = c.order[1:]
			c.entries.Delete(evict)
		}
		c.mu.Unlock()
	}
	v, _ := c.entries.Load(key)
	return v.(*RegExp), nil
}

// Validate compiles pattern/flags and discards the result, surfacing only
// the error if construction would fail.
func (c *Cache) Validate(pattern, flags string) error {
	_, err := c.Create(pattern, flags)
	return err
}

// String renders a RegExp the way ECMAScript's RegExp.prototype.toString
// would: /source/flags with flags printed in canonical g,i,m order.
func (r *RegExp) String() string {
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(r.Source)
	b.WriteByte('/')
	if r.Global {
		b.WriteByte('g')
	}
	for _, f := range "im" {
		if strings.ContainsRune(r.Flags, f) {
			b.WriteRune(f)
		}
	}
	return b.String()
}
