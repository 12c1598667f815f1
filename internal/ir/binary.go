package ir

import (
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

// BinaryOp is the operator a Binary node carries.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr    // signed >>
	OpUShr   // unsigned >>>
	OpBitAnd
	OpBitOr
	OpBitXor
	OpAnd // &&
	OpOr  // ||
	OpInstanceof
	OpAssign // =
	OpComma  // ,
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	case OpUShr:
		return ">>>"
	case OpBitAnd:
		return "&"
	case OpBitOr:
		return "|"
	case OpBitXor:
		return "^"
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpInstanceof:
		return "instanceof"
	case OpAssign:
		return "="
	case OpComma:
		return ","
	default:
		return "?"
	}
}

// undecidedAdd is a private sentinel MostOptimisticType returns for an ADD
// node: an optimistic ADD stays undecided until decideType runs.
var undecidedAdd = &types.Type{}

// Binary is a binary operation. lhs/rhs carry their own static types
// (narrowed by whatever pass produced them); pinnedType, when set, narrows
// the merged result further for an optimistic compile.
type Binary struct {
	token        token.Token
	finish       int
	op           BinaryOp
	lhs          Expression
	rhs          Expression
	lhsType      *types.Type
	rhsType      *types.Type
	pinnedType   *types.Type
	programPoint int32
}

func NewBinary(tok token.Token, finish int, op BinaryOp, lhs, rhs Expression) *Binary {
	return &Binary{token: tok, finish: finish, op: op, lhs: lhs, rhs: rhs, programPoint: invalidProgramPoint}
}

func (b *Binary) Tok() token.Token    { return b.token }
func (b *Binary) Finish() int         { return b.finish }
func (b *Binary) Op() BinaryOp        { return b.op }
func (b *Binary) LHS() Expression     { return b.lhs }
func (b *Binary) RHS() Expression     { return b.rhs }
func (b *Binary) ProgramPoint() int32 { return b.programPoint }
func (b *Binary) expressionNode()     {}
func (b *Binary) String() string {
	return "(" + b.lhs.String() + " " + b.op.String() + " " + b.rhs.String() + ")"
}

func (b *Binary) WithLHS(e Expression) *Binary {
	if sameExpr(b.lhs, e) {
		return b
	}
	cp := *b
	cp.lhs = e
	return &cp
}

func (b *Binary) WithRHS(e Expression) *Binary {
	if sameExpr(b.rhs, e) {
		return b
	}
	cp := *b
	cp.rhs = e
	return &cp
}

func (b *Binary) WithOperandTypes(lhs, rhs *types.Type) *Binary {
	if b.lhsType == lhs && b.rhsType == rhs {
		return b
	}
	cp := *b
	cp.lhsType, cp.rhsType = lhs, rhs
	return &cp
}

func (b *Binary) WithType(t *types.Type) *Binary {
	if b.pinnedType == t {
		return b
	}
	cp := *b
	cp.pinnedType = t
	return &cp
}

func (b *Binary) WithProgramPoint(pp int32) *Binary {
	if b.programPoint == pp {
		return b
	}
	cp := *b
	cp.programPoint = pp
	return &cp
}

func (b *Binary) operandType(t *types.Type, e Expression) *types.Type {
	if t != nil {
		return t
	}
	if te, ok := e.(interface{ Type() *types.Type }); ok {
		if et := te.Type(); et != nil {
			return et
		}
	}
	return types.OBJECT
}

// decideType implements the ADD-specific decision rule:
// decide the operand types first, then pick CHARSEQUENCE if either is string,
// otherwise widest after boolean->int and undefined->number, collapsing
// objects to OBJECT.
func decideType(lhs, rhs *types.Type) *types.Type {
	if lhs == types.STRING || rhs == types.STRING || lhs == types.CHARSEQUENCE || rhs == types.CHARSEQUENCE {
		return types.CHARSEQUENCE
	}
	norm := func(t *types.Type) *types.Type {
		switch t {
		case types.BOOLEAN:
			return types.INT
		case types.UNDEFINED:
			return types.NUMBER
		default:
			return t
		}
	}
	l, r := norm(lhs), norm(rhs)
	if types.IsObjectFamily(l) || types.IsObjectFamily(r) {
		return types.OBJECT
	}
	if l == types.INT && r == types.INT {
		// "conservatively widened past INT to avoid overflow re-deopt"
		return types.NUMBER
	}
	return types.Widest(l, r)
}

// MostPessimisticType implements the per-operator widest-operation type
// table.
func (b *Binary) MostPessimisticType() *types.Type {
	lhs, rhs := b.operandType(b.lhsType, b.lhs), b.operandType(b.rhsType, b.rhs)
	switch b.op {
	case OpAdd:
		return decideType(lhs, rhs)
	case OpUShr:
		return types.NUMBER
	case OpShl, OpShr, OpBitAnd, OpBitOr, OpBitXor:
		return types.INT
	case OpDiv, OpMod:
		return types.NUMBER
	case OpMul, OpSub:
		if lhs == types.BOOLEAN && rhs == types.BOOLEAN {
			return types.INT
		}
		return types.NUMBER
	case OpInstanceof:
		return types.BOOLEAN
	case OpAssign:
		return rhs
	case OpComma:
		return rhs
	case OpAnd, OpOr:
		return types.WidestReturnType(lhs, rhs)
	default:
		return types.OBJECT
	}
}

// MostOptimisticType returns UNDECIDED (a private sentinel) for ADD until
// decideType can run, and equals MostPessimisticType() for every other
// operator that cannot overflow in a way worth speculating on, except the
// arithmetic operators that commonly stay in INT range.
func (b *Binary) MostOptimisticType() *types.Type {
	switch b.op {
	case OpAdd:
		return undecidedAdd
	case OpSub, OpMul, OpDiv, OpMod, OpShl, OpBitAnd, OpBitOr, OpBitXor:
		return types.INT
	default:
		return b.MostPessimisticType()
	}
}

// Type is the node's result type, computed on each call: the pinned type if
// one has been set and operand types support narrowing to it, otherwise the
// widest operation type. For an ADD node whose type is
// still undecided, Type defers to decideType.
func (b *Binary) Type() *types.Type {
	widest := b.MostPessimisticType()
	if widest == undecidedAdd {
		widest = decideType(b.operandType(b.lhsType, b.lhs), b.operandType(b.rhsType, b.rhs))
	}
	if b.pinnedType == nil {
		return widest
	}
	lhs, rhs := b.operandType(b.lhsType, b.lhs), b.operandType(b.rhsType, b.rhs)
	return types.Narrowest(widest, types.Widest(b.pinnedType, types.Widest(lhs, rhs)))
}

// CanBeOptimistic reports whether this node's optimistic and pessimistic
// types differ, or — for ADD — whether its type is still undecided.
func (b *Binary) CanBeOptimistic() bool {
	opt := b.MostOptimisticType()
	if opt == undecidedAdd {
		return true
	}
	return opt != b.MostPessimisticType()
}

// DecideType exposes decideType for callers (e.g. internal/optimistic)
// finalizing an ADD node once both operand types are known.
func DecideType(lhs, rhs *types.Type) *types.Type { return decideType(lhs, rhs) }
