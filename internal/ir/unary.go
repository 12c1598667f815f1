package ir

import (
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

// UnaryOp is the operator a Unary node carries, encoded in the node's own
// field rather than sniffed from the token type.
type UnaryOp uint8

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryNot
	UnaryBitNot
	UnaryVoid
	UnaryDelete
	UnaryTypeof
	UnaryPreIncrement
	UnaryPreDecrement
	UnaryPostIncrement
	UnaryPostDecrement
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	case UnaryNot:
		return "!"
	case UnaryBitNot:
		return "~"
	case UnaryVoid:
		return "void"
	case UnaryDelete:
		return "delete"
	case UnaryTypeof:
		return "typeof"
	case UnaryPreIncrement, UnaryPostIncrement:
		return "++"
	case UnaryPreDecrement, UnaryPostDecrement:
		return "--"
	default:
		return "?"
	}
}

func (op UnaryOp) isIncDec() bool {
	switch op {
	case UnaryPreIncrement, UnaryPreDecrement, UnaryPostIncrement, UnaryPostDecrement:
		return true
	default:
		return false
	}
}

// Unary is a prefix or postfix unary operation.
type Unary struct {
	token        token.Token
	finish       int
	op           UnaryOp
	operand      Expression
	operandType  *types.Type // static type of the operand, set by a prior pass
	programPoint int32
}

func NewUnary(tok token.Token, finish int, op UnaryOp, operand Expression) *Unary {
	return &Unary{token: tok, finish: finish, op: op, operand: operand, programPoint: invalidProgramPoint}
}

func (u *Unary) Tok() token.Token      { return u.token }
func (u *Unary) Finish() int           { return u.finish }
func (u *Unary) Op() UnaryOp           { return u.op }
func (u *Unary) Operand() Expression   { return u.operand }
func (u *Unary) ProgramPoint() int32   { return u.programPoint }
func (u *Unary) expressionNode()       {}
func (u *Unary) String() string {
	if u.op == UnaryPostIncrement || u.op == UnaryPostDecrement {
		return u.operand.String() + u.op.String()
	}
	return u.op.String() + u.operand.String()
}

func (u *Unary) WithOperand(e Expression) *Unary {
	if sameExpr(u.operand, e) {
		return u
	}
	cp := *u
	cp.operand = e
	return &cp
}

func (u *Unary) WithOperandType(t *types.Type) *Unary {
	if u.operandType == t {
		return u
	}
	cp := *u
	cp.operandType = t
	return &cp
}

func (u *Unary) WithProgramPoint(pp int32) *Unary {
	if u.programPoint == pp {
		return u
	}
	cp := *u
	cp.programPoint = pp
	return &cp
}

// MostPessimisticType implements the widest-operation type rule for unary
// operators: + of boolean -> INT; + of object -> NUMBER; + of numeric ->
// that numeric; - -> NUMBER (to represent -0); !, delete -> BOOLEAN;
// ~ -> INT; void -> UNDEFINED; pre/post inc/dec are numeric assignments.
func (u *Unary) MostPessimisticType() *types.Type {
	ot := u.operandType
	if ot == nil {
		ot = types.OBJECT
	}
	switch u.op {
	case UnaryPlus:
		switch {
		case ot == types.BOOLEAN:
			return types.INT
		case types.IsNumeric(ot):
			return ot
		default:
			return types.NUMBER
		}
	case UnaryMinus:
		return types.NUMBER
	case UnaryNot, UnaryDelete:
		return types.BOOLEAN
	case UnaryBitNot:
		return types.INT
	case UnaryVoid:
		return types.UNDEFINED
	case UnaryTypeof:
		return types.STRING
	default: // inc/dec
		return types.NUMBER
	}
}

// MostOptimisticType returns INT for operators that can overflow into a
// wider numeric type at runtime (inc/dec, unary +/-), and equals
// MostPessimisticType() otherwise.
func (u *Unary) MostOptimisticType() *types.Type {
	switch {
	case u.op.isIncDec(), u.op == UnaryPlus, u.op == UnaryMinus:
		return types.INT
	default:
		return u.MostPessimisticType()
	}
}

// CanBeOptimistic reports whether the optimistic and pessimistic types
// differ — the canBeOptimistic rule.
func (u *Unary) CanBeOptimistic() bool {
	return u.MostOptimisticType() != u.MostPessimisticType()
}
