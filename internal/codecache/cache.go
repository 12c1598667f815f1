// Package codecache implements the directory-backed persistent compile
// cache: compiled-function blobs keyed by a digest of their source plus a
// stable function key, stored under a semver-versioned cache directory so
// an incompatible cache format from a prior release is never read as if
// compatible.
//
// Uses golang.org/x/mod/semver for the version-directory validation,
// github.com/google/uuid for synthetic function keys (the same
// uuid.NewString() idiom used elsewhere for synthetic run/operation IDs),
// and github.com/dustin/go-humanize for size diagnostics in cache stat
// output.
package codecache

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/mod/semver"
)

// FormatVersion is this cache format's semver tag. Bumping it invalidates
// every prior cache directory automatically, since Open namespaces the
// cache root by version.
const FormatVersion = "v1.0.0"

// MinSourceSize is the minimum source length (in bytes) a function must
// have before it is considered for caching; tiny functions cost more to
// serialize/deserialize than to simply recompile.
const MinSourceSize = 1000

// Cache is a directory-backed key -> blob store.
type Cache struct {
	root   string
	logger *slog.Logger
}

// Open returns a Cache rooted at dir/FormatVersion, creating the
// directory tree if needed. Warnings (e.g. a refused non-serializable
// constant) go to slog.Default(); use OpenWithLogger to route them
// elsewhere.
func Open(dir string) (*Cache, error) {
	return OpenWithLogger(dir, slog.Default())
}

// OpenWithLogger is Open with an explicit logger, e.g. the "codestore"
// named logger from internal/diag.Loggers.
func OpenWithLogger(dir string, logger *slog.Logger) (*Cache, error) {
	if !semver.IsValid(FormatVersion) {
		return nil, fmt.Errorf("codecache: invalid format version %q", FormatVersion)
	}
	versioned := filepath.Join(dir, FormatVersion)
	if err := os.MkdirAll(versioned, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{root: versioned, logger: logger}, nil
}

// FunctionKey identifies one cached function: its digest (of source plus
// any compile-time flags that affect codegen) plus a name. Anonymous
// functions get a synthetic UUID name instead of a source-derived one,
// since two different anonymous functions can share byte-identical source.
type FunctionKey struct {
	Digest string // hex-encoded, from token.Source.Digest()
	Name   string
}

// NewAnonymousFunctionKey mints a FunctionKey for a function with no
// declared name, using a random UUID so two anonymous functions with
// identical source never collide in the cache.
func NewAnonymousFunctionKey(digest string) FunctionKey {
	return FunctionKey{Digest: digest, Name: "$anon$" + uuid.NewString()}
}

func (k FunctionKey) path(root string) string {
	return filepath.Join(root, k.Digest+"-"+k.Name+".bin")
}

var errRefused = errors.New("codecache: entry refused at write time")

// ErrMiss is returned by Get when no cached entry exists for key.
var ErrMiss = errors.New("codecache: miss")

// Get reads the cached blob for key.
func (c *Cache) Get(key FunctionKey) ([]byte, error) {
	data, err := os.ReadFile(key.path(c.root))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrMiss
	}
	return data, err
}

// Put writes blob under key, refusing (and returning errRefused) entries
// below MinSourceSize — the caller should simply not bother calling Put
// for those, but Put enforces it defensively too.
//
// constants is the function's constant-pool values (whatever Ldc operands
// codegen.MethodHandle.Constant recorded for it). If any of them is not
// serializable — a function, a channel, a mirror.JSObject, or anything
// else that can't round-trip through the on-disk blob format — Put logs a
// warning on the cache's logger and silently drops the entry instead of
// writing a blob the next process couldn't deserialize; it still reports
// no error, since refusing to cache a function is never a caller-visible
// failure.
func (c *Cache) Put(key FunctionKey, sourceLen int, constants []any, blob []byte) error {
	if sourceLen < MinSourceSize {
		return errRefused
	}
	if bad, ok := firstNonSerializable(constants); ok {
		c.logger.Warn("codecache: refusing entry with non-serializable constant",
			"digest", key.Digest, "name", key.Name, "value", fmt.Sprintf("%T", bad))
		return nil
	}
	return os.WriteFile(key.path(c.root), blob, 0o644)
}

// firstNonSerializable reports the first constant (recursing into arrays
// and plain maps) that isn't one of the value shapes the cache's blob
// format can encode.
func firstNonSerializable(constants []any) (any, bool) {
	for _, v := range constants {
		if bad, ok := firstNonSerializableValue(v); ok {
			return bad, true
		}
	}
	return nil, false
}

func firstNonSerializableValue(v any) (any, bool) {
	switch t := v.(type) {
	case nil, bool, int32, int64, float64, string:
		return nil, false
	case []any:
		return firstNonSerializable(t)
	case map[string]any:
		for _, elem := range t {
			if bad, ok := firstNonSerializableValue(elem); ok {
				return bad, true
			}
		}
		return nil, false
	default:
		return v, true
	}
}

// Stat describes one cache directory's aggregate size, formatted via
// go-humanize for log/CLI output.
type Stat struct {
	Entries   int
	TotalSize int64
}

func (s Stat) String() string {
	return fmt.Sprintf("%d entries, %s", s.Entries, humanize.Bytes(uint64(s.TotalSize)))
}

// Stats walks the cache directory and reports aggregate size.
func (c *Cache) Stats() (Stat, error) {
	var s Stat
	err := filepath.WalkDir(c.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		s.Entries++
		s.TotalSize += info.Size()
		return nil
	})
	return s, err
}
