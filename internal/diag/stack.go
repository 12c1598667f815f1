package diag

import "strings"

// RawFrame is one frame as the engine records it internally, before the
// user-visible filter runs: a dotted "<file>.<method>" tag, e.g.
// "<foo.js>.<program>" or "<foo.js>.bar$1$baz" for a nested function.
type RawFrame struct {
	Tag string
}

// Frame is one filtered, human-readable script stack frame.
type Frame struct {
	FileName     string
	FunctionName string
}

// ScriptStack is an ordered sequence of filtered frames, oldest first.
type ScriptStack []Frame

// isScriptFrameTag reports whether tag's file component is recognized as
// a script frame rather than host/native machinery — here, any tag
// wrapped in angle brackets, following the "<file.js>" convention for
// script-originated frames.
func isScriptFrameTag(tag string) bool {
	return strings.HasPrefix(tag, "<") && strings.Contains(tag, ">.")
}

// FilterScriptStack implements the "User-visible failure" stack
// filter: walk raw frames, keep only recognized script frames, map the
// root <program> frame name, and strip "$id"/nested-function separators
// from internal method names.
func FilterScriptStack(raw []RawFrame) ScriptStack {
	var out ScriptStack
	for _, rf := range raw {
		if !isScriptFrameTag(rf.Tag) {
			continue
		}
		closeIdx := strings.Index(rf.Tag, ">.")
		fileName := strings.TrimPrefix(rf.Tag[:closeIdx], "<")
		method := rf.Tag[closeIdx+2:]
		out = append(out, Frame{
			FileName:     fileName,
			FunctionName: cleanMethodName(method),
		})
	}
	return out
}

// cleanMethodName maps the root program frame and strips the engine's
// internal "$N$" nested-function disambiguation segments, leaving only
// the innermost name: "<program>" stays as-is, "bar$1$baz" becomes "baz".
func cleanMethodName(method string) string {
	if method == "<program>" {
		return method
	}
	parts := strings.Split(method, "$")
	return parts[len(parts)-1]
}
