package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSpecLiterals(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "javascript", cfg.Engine.Name)
	assert.Equal(t, "Oracle Nashorn", cfg.Engine.Engine)
	assert.Equal(t, "ECMA - 262 Edition 5.1", cfg.Engine.LanguageVersion)
	assert.Equal(t, "", cfg.Engine.Threading)
	assert.Equal(t, 1000, cfg.CodeCache.MinSourceSize)
}

func TestLoadOverridesOverDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[code_cache]
dir = "/tmp/cache"
min_source_size = 500

[logging]
recompile_enabled = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cache", cfg.CodeCache.Dir)
	assert.Equal(t, 500, cfg.CodeCache.MinSourceSize)
	assert.True(t, cfg.Logging.RecompileEnabled)
	assert.Equal(t, "javascript", cfg.Engine.Name) // untouched default survives
}

func TestMethodCallSyntax(t *testing.T) {
	assert.Equal(t, "obj.method(a1,a2)", MethodCallSyntax("obj", "method", "a1", "a2"))
	assert.Equal(t, "print(1+1)", OutputStatement("1+1"))
	assert.Equal(t, "a;b;c", Program([]string{"a", "b", "c"}))
}
