package ir

import (
	"github.com/cwbudde/ecmacore/internal/lexcontext"
	"github.com/cwbudde/ecmacore/internal/symbols"
	"github.com/cwbudde/ecmacore/internal/token"
)

// Block flags.
const (
	BlockNeedsScope uint32 = 1 << iota
	BlockIsTerminal
	BlockIsGlobalScope
	BlockIsSynthetic
	BlockIsBody
	BlockIsParameterBlock
	BlockIsSwitchBlock
	BlockIsBreakable
)

// Block is an ordered list of statements plus the symbol table declared
// directly within it.
type Block struct {
	token      token.Token
	finish     int
	statements []Statement
	symbols    *symbols.Table
	flags      uint32
	breakLabel string
	nextSlot   int32
}

func NewBlock(tok token.Token, finish int, statements []Statement, syms *symbols.Table, flags uint32) *Block {
	if syms == nil {
		syms = symbols.Empty
	}
	return &Block{token: tok, finish: finish, statements: statements, symbols: syms, flags: flags}
}

func (b *Block) Tok() token.Token          { return b.token }
func (b *Block) Finish() int               { return b.finish }
func (b *Block) Statements() []Statement   { return b.statements }
func (b *Block) Symbols() *symbols.Table   { return b.symbols }
func (b *Block) statementNode()            {}
func (b *Block) Kind() lexcontext.NodeKind { return lexcontext.KindBlock }
func (b *Block) FlagBits() int32           { return int32(b.flags) }
func (b *Block) BreakLabel() string        { return b.breakLabel }

// HasSymbol satisfies lexcontext.ScopeNode.
func (b *Block) HasSymbol(name string) bool { return b.symbols.HasSymbol(name) }

func (b *Block) Is(flag uint32) bool { return b.flags&flag != 0 }

// IsTerminal holds when the last statement is terminal (an empty block is
// never terminal).
func (b *Block) IsTerminal() bool {
	if len(b.statements) == 0 {
		return false
	}
	return b.statements[len(b.statements)-1].IsTerminal()
}

func (b *Block) String() string {
	s := "{"
	for _, st := range b.statements {
		s += " " + st.String()
	}
	return s + " }"
}

// WithFlagBits satisfies lexcontext.FlagCarrier; it is the join point
// between the pass-accumulated int32 (NEEDS_SCOPE/HAS_SCOPE_BLOCK) and this
// node's own richer uint32 flag word — both live in the same bit space at
// the low end.
func (b *Block) WithFlagBits(bits int32) Node {
	if uint32(bits) == b.flags {
		return b
	}
	cp := *b
	cp.flags = uint32(bits)
	return &cp
}

func (b *Block) WithStatements(stmts []Statement) *Block {
	cp := *b
	cp.statements = stmts
	return &cp
}

func (b *Block) WithSymbols(t *symbols.Table) *Block {
	if b.symbols == t {
		return b
	}
	cp := *b
	cp.symbols = t
	return &cp
}

func (b *Block) WithBreakLabel(label string) *Block {
	if b.breakLabel == label {
		return b
	}
	cp := *b
	cp.breakLabel = label
	return &cp
}

// NextSlot returns the next free bytecode local-variable slot number and a
// copy of b with the counter advanced. Per-type slot allocation happens
// off one integer counter per block, shared across every type a symbol in
// that block is assigned.
func (b *Block) NextSlot() (int32, *Block) {
	cp := *b
	cp.nextSlot = b.nextSlot + 1
	return b.nextSlot, &cp
}
