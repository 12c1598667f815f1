package token

import "testing"

func TestNewPacksAndUnpacksFields(t *testing.T) {
	tok := New(KindString, 12, 5)
	if got := tok.Kind(); got != KindString {
		t.Fatalf("Kind() = %v, want %v", got, KindString)
	}
	if got := tok.Start(); got != 12 {
		t.Fatalf("Start() = %d, want 12", got)
	}
	if got := tok.Length(); got != 5 {
		t.Fatalf("Length() = %d, want 5", got)
	}
	if got := tok.Finish(); got != 17 {
		t.Fatalf("Finish() = %d, want 17", got)
	}
}

func TestKindStringNamesEveryKind(t *testing.T) {
	cases := map[Kind]string{
		KindUnknown:     "UNKNOWN",
		KindIdent:       "IDENT",
		KindNumber:      "NUMBER",
		KindString:      "STRING",
		KindTemplate:    "TEMPLATE",
		KindRegex:       "REGEX",
		KindKeyword:     "KEYWORD",
		KindOperator:    "OPERATOR",
		KindPunctuation: "PUNCTUATION",
		KindEOF:         "EOF",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestNewSourceComputesDigestOnce(t *testing.T) {
	src := NewSource("a.js", "let x = 1;")
	if src.Digest() == "" {
		t.Fatal("Digest() is empty")
	}
	same := NewSource("b.js", "let x = 1;")
	if src.Digest() != same.Digest() {
		t.Fatal("Digest() should depend only on text, not Name")
	}
	other := NewSource("a.js", "let y = 2;")
	if src.Digest() == other.Digest() {
		t.Fatal("Digest() should differ for different text")
	}
}

func TestSourceLength(t *testing.T) {
	src := NewSource("a.js", "hello")
	if src.Length() != 5 {
		t.Fatalf("Length() = %d, want 5", src.Length())
	}
}

func TestSourceSliceReturnsTokenSpan(t *testing.T) {
	src := NewSource("a.js", "let x = 1;")
	tok := New(KindIdent, 4, 1)
	if got := src.Slice(tok); got != "x" {
		t.Fatalf("Slice() = %q, want %q", got, "x")
	}
}

func TestSourceSliceOutOfRangeReturnsEmpty(t *testing.T) {
	src := NewSource("a.js", "let x = 1;")
	tok := New(KindIdent, 100, 5)
	if got := src.Slice(tok); got != "" {
		t.Fatalf("Slice() = %q, want empty", got)
	}
}
