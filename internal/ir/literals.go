package ir

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

// LiteralKind distinguishes the primitive literal shapes: null, bool,
// number, string, lexer-token, undefined.
// ArrayLiteral and ObjectLiteral are their own node types below, since they
// carry substantially more structure than a single scalar payload.
type LiteralKind uint8

const (
	LiteralNull LiteralKind = iota
	LiteralUndefined
	LiteralBoolean
	LiteralNumber
	LiteralString
	LiteralRaw // a lexer-token literal carried verbatim (e.g. a template raw segment)
)

// Literal is an immutable primitive constant.
type Literal struct {
	token  token.Token
	finish int
	kind   LiteralKind
	value  any // bool | float64 | string, or nil for Null/Undefined
}

func NewLiteral(tok token.Token, finish int, kind LiteralKind, value any) *Literal {
	return &Literal{token: tok, finish: finish, kind: kind, value: value}
}

func (l *Literal) Tok() token.Token  { return l.token }
func (l *Literal) Finish() int       { return l.finish }
func (l *Literal) Kind() LiteralKind { return l.kind }
func (l *Literal) Value() any        { return l.value }
func (l *Literal) expressionNode()   {}

// BoolValue panics if Kind() != LiteralBoolean; callers check Kind first.
func (l *Literal) BoolValue() bool { return l.value.(bool) }

// NumberValue panics if Kind() != LiteralNumber.
func (l *Literal) NumberValue() float64 { return l.value.(float64) }

// StringValue panics if Kind() != LiteralString.
func (l *Literal) StringValue() string { return l.value.(string) }

// IsAlwaysTrue / IsAlwaysFalse let constant-folding passes short-circuit an
// If/Ternary/While test without consulting the runtime.
func (l *Literal) IsAlwaysTrue() bool {
	switch l.kind {
	case LiteralBoolean:
		return l.value.(bool)
	case LiteralNumber:
		return l.value.(float64) != 0
	case LiteralString:
		return l.value.(string) != ""
	case LiteralNull, LiteralUndefined:
		return false
	default:
		return false
	}
}

func (l *Literal) IsAlwaysFalse() bool {
	switch l.kind {
	case LiteralBoolean:
		return !l.value.(bool)
	case LiteralNumber:
		return l.value.(float64) == 0
	case LiteralString:
		return l.value.(string) == ""
	case LiteralNull, LiteralUndefined:
		return true
	default:
		return false
	}
}

// Type returns the literal's static type; this never varies per instance,
// so it is computed rather than stored.
func (l *Literal) Type() *types.Type {
	switch l.kind {
	case LiteralBoolean:
		return types.BOOLEAN
	case LiteralNumber:
		return types.NUMBER
	case LiteralString:
		return types.STRING
	case LiteralUndefined:
		return types.UNDEFINED
	case LiteralNull:
		return types.OBJECT
	default:
		return types.OBJECT
	}
}

func (l *Literal) String() string {
	switch l.kind {
	case LiteralNull:
		return "null"
	case LiteralUndefined:
		return "undefined"
	case LiteralBoolean:
		return strconv.FormatBool(l.value.(bool))
	case LiteralNumber:
		return strconv.FormatFloat(l.value.(float64), 'g', -1, 64)
	case LiteralString:
		return strconv.Quote(l.value.(string))
	default:
		return fmt.Sprintf("%v", l.value)
	}
}

// ArrayLiteral is a literal array with a precomputed element type and the
// split between compile-time constant elements (presets) and elements that
// must be evaluated at runtime (postsets)
type ArrayLiteral struct {
	token    token.Token
	finish   int
	elements []Expression

	// initialized guards the one-time elementType/presets/postsets
	// computation; calling Initialize on an array literal twice is
	// idempotent.
	initialized bool
	elementType *types.Type
	postsets    []int
	presets     []any
	presetType  *types.Type
}

func NewArrayLiteral(tok token.Token, finish int, elements []Expression) *ArrayLiteral {
	return &ArrayLiteral{token: tok, finish: finish, elements: elements}
}

func (a *ArrayLiteral) Tok() token.Token      { return a.token }
func (a *ArrayLiteral) Finish() int           { return a.finish }
func (a *ArrayLiteral) Elements() []Expression { return a.elements }
func (a *ArrayLiteral) expressionNode()       {}

// Initialize computes ElementType/Presets/Postsets. isConstant classifies an
// element as a compile-time constant (eligible for the presets array) vs.
// one needing runtime evaluation (a postset index); constFold extracts the
// constant's value and static type when isConstant returns true. Calling
// Initialize more than once is a no-op.
func (a *ArrayLiteral) Initialize(isConstant func(Expression) bool, constFold func(Expression) (any, *types.Type)) {
	if a.initialized {
		return
	}
	a.initialized = true

	elemType := types.UNKNOWN
	for _, e := range a.elements {
		var t *types.Type
		if isConstant(e) {
			_, t = constFold(e)
		} else if te, ok := e.(interface{ Type() *types.Type }); ok {
			t = te.Type()
		} else {
			t = types.OBJECT
		}
		if elemType == types.UNKNOWN {
			elemType = t
		} else {
			elemType = types.Widest(elemType, t)
		}
		if t == types.BOOLEAN {
			// "boolean collapses to OBJECT" for array element typing.
			elemType = types.OBJECT
		}
	}
	if elemType == types.UNKNOWN {
		elemType = types.OBJECT
	}
	a.elementType = elemType

	switch elemType {
	case types.INT:
		a.presetType = types.INT_ARRAY
	case types.NUMBER:
		a.presetType = types.NUMBER_ARRAY
	default:
		a.presetType = types.OBJECT_ARRAY
	}

	for i, e := range a.elements {
		if isConstant(e) {
			v, _ := constFold(e)
			a.presets = append(a.presets, v)
		} else {
			a.postsets = append(a.postsets, i)
		}
	}
}

func (a *ArrayLiteral) ElementType() *types.Type { return a.elementType }
func (a *ArrayLiteral) Postsets() []int          { return a.postsets }
func (a *ArrayLiteral) Presets() []any           { return a.presets }
func (a *ArrayLiteral) PresetArrayType() *types.Type { return a.presetType }

func (a *ArrayLiteral) String() string {
	s := "["
	for i, e := range a.elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

// PropertyEntry is one member of an ObjectLiteral.
type PropertyEntry struct {
	Key        Expression
	Value      Expression // nil if Getter/Setter is set
	Getter     *Function
	Setter     *Function
	IsStatic   bool
	IsComputed bool
}

// ObjectLiteral is an ordered list of property entries, with support for
// "split ranges" — entry-count buckets used to spread object construction
// over multiple compile units for very large literals.
type ObjectLiteral struct {
	token       token.Token
	finish      int
	properties  []PropertyEntry
	splitRanges [][2]int // [start,end) index ranges into properties
}

func NewObjectLiteral(tok token.Token, finish int, properties []PropertyEntry) *ObjectLiteral {
	return &ObjectLiteral{token: tok, finish: finish, properties: properties}
}

func (o *ObjectLiteral) Tok() token.Token           { return o.token }
func (o *ObjectLiteral) Finish() int                { return o.finish }
func (o *ObjectLiteral) Properties() []PropertyEntry { return o.properties }
func (o *ObjectLiteral) expressionNode()            {}

// WithSplitRanges buckets properties into ranges of at most maxPerRange
// entries each (a simple size-based split; only the existence of buckets
// for multi-compile-unit construction is required, not a specific byte
// accounting policy — the concrete bytecode emitter decides per-bucket
// size).
func (o *ObjectLiteral) WithSplitRanges(maxPerRange int) *ObjectLiteral {
	if maxPerRange <= 0 || len(o.properties) <= maxPerRange {
		return o
	}
	cp := *o
	cp.splitRanges = nil
	for start := 0; start < len(o.properties); start += maxPerRange {
		end := start + maxPerRange
		if end > len(o.properties) {
			end = len(o.properties)
		}
		cp.splitRanges = append(cp.splitRanges, [2]int{start, end})
	}
	return &cp
}

func (o *ObjectLiteral) SplitRanges() [][2]int { return o.splitRanges }

func (o *ObjectLiteral) String() string { return "{...}" }
