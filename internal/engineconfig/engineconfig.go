// Package engineconfig holds the TOML-loadable engine construction
// parameters an embedder configures: the factory's name/MIME/extension
// answers, the THREADING model, the code-cache directory and size
// threshold, and logger toggles.
//
// BurntSushi/toml is the decoder, loading onto a Default() base so any
// field an embedder's config file omits keeps its documented default.
package engineconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the engine's full construction parameter set.
type Config struct {
	Engine    EngineParams    `toml:"engine"`
	CodeCache CodeCacheParams `toml:"code_cache"`
	Logging   LoggingParams   `toml:"logging"`
}

// EngineParams answers the factory-identity questions calls for:
// the case-insensitive short names a host can look the engine up by, its
// MIME types, its file extension, and its threading model.
type EngineParams struct {
	Names           []string `toml:"names"`
	MimeTypes       []string `toml:"mime_types"`
	Extensions      []string `toml:"extensions"`
	Name            string   `toml:"name"`
	Engine          string   `toml:"engine_name"`
	Language        string   `toml:"language"`
	LanguageVersion string   `toml:"language_version"`
	Threading       string   `toml:"threading"` // "" means not thread-safe
	DumpOnError     bool     `toml:"dump_on_error"`
}

// DefaultEngineParams matches the literal defaults.
func DefaultEngineParams() EngineParams {
	return EngineParams{
		Names:           []string{"nashorn", "js", "JavaScript", "ECMAScript"},
		MimeTypes:       []string{"application/javascript", "application/ecmascript", "text/javascript", "text/ecmascript"},
		Extensions:      []string{"js"},
		Name:            "javascript",
		Engine:          "Oracle Nashorn",
		Language:        "ECMAScript",
		LanguageVersion: "ECMA - 262 Edition 5.1",
		Threading:       "",
		DumpOnError:     true,
	}
}

// CodeCacheParams configures the directory-backed persistent cache.
type CodeCacheParams struct {
	Dir           string `toml:"dir"`
	MinSourceSize int    `toml:"min_source_size"`
}

// LoggingParams toggles the two named loggers names.
type LoggingParams struct {
	CodeStoreEnabled       bool `toml:"codestore_enabled"`
	RecompileEnabled       bool `toml:"recompile_enabled"`
	RecompileRetainReturns bool `toml:"recompile_retain_returns"`
}

// Default returns a Config with spec-literal defaults and no code-cache
// directory configured (caching off by default).
func Default() Config {
	return Config{
		Engine:    DefaultEngineParams(),
		CodeCache: CodeCacheParams{MinSourceSize: 1000},
		Logging:   LoggingParams{CodeStoreEnabled: true, RecompileEnabled: false},
	}
}

// Load decodes a TOML file at path over Default(), so an unset field
// keeps its spec-literal default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("engineconfig: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("engineconfig: decode %s: %w", path, err)
	}
	return cfg, nil
}

// MethodCallSyntax renders the getMethodCallSyntax answer.
func MethodCallSyntax(obj, method string, args ...string) string {
	s := obj + "." + method + "("
	for i, a := range args {
		if i > 0 {
			s += ","
		}
		s += a
	}
	return s + ")"
}

// OutputStatement renders the getOutputStatement answer.
func OutputStatement(expr string) string {
	return "print(" + expr + ")"
}

// Program renders the getProgram answer.
func Program(statements []string) string {
	s := ""
	for i, stmt := range statements {
		if i > 0 {
			s += ";"
		}
		s += stmt
	}
	return s
}
