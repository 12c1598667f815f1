// Package ir defines the immutable intermediate representation every pass in
// this module walks: expressions, statements, and the two structural node
// kinds (Block, Function). Every node is constructed once and never mutated;
// a setter such as WithBody returns either the same instance (when the new
// field value is reference-equal to the old one) or a fresh node sharing
// every other field.
//
// Doc-comment density here is thorough on the structural nodes (Block,
// Function, the control-flow family) that carry the most invariants, and
// terse or absent on simple expression leaves whose shape speaks for
// itself.
package ir

import "github.com/cwbudde/ecmacore/internal/token"

// Node is the base interface every IR node implements.
type Node interface {
	// Tok returns the token that produced this node.
	Tok() token.Token
	// Finish returns the terminal source offset of this node, which may
	// extend past Tok().Finish() (e.g. a Call node's finish is after its
	// closing paren).
	Finish() int
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action but produces no value.
type Statement interface {
	Node
	statementNode()
	// IsTerminal reports whether control flow cannot fall through this
	// statement.
	IsTerminal() bool
}

// Visitor is the generic enter/leave dispatch that Walk drives, rather than
// an AST walked ad hoc by each pass. It mirrors the
// classic accept(visitor) pattern: Enter runs before a node's
// children are visited and may veto descent by returning false; Leave runs
// after children are visited (and, for a LexicalContextNode, after the
// lexical-context frame for this node has had its accumulated flags
// applied) and returns the node that should replace it in the tree — the
// same instance if unchanged.
//
// A single pair of methods (rather than one EnterX/LeaveX pair per node
// type) is the idiomatic Go rendering of this: the same shape go/ast.Walk uses for
// "visit every node kind" without a 50-method interface. Visitors that only
// care about a few node kinds type-switch inside Enter/Leave; BaseVisitor
// below gives a zero-value no-op default so callers only implement what
// they need.
type Visitor interface {
	Enter(n Node) bool
	Leave(n Node) Node
}

// BaseVisitor is an embeddable Visitor that descends into every node and
// never replaces anything. Embed it and override Enter/Leave selectively.
type BaseVisitor struct{}

func (BaseVisitor) Enter(Node) bool  { return true }
func (BaseVisitor) Leave(n Node) Node { return n }

// sameExpr and sameStmt are the reference-equality helpers WithX setters use to decide
// whether to return the receiver unchanged. Expression/Statement are
// interface values; comparing them compares the underlying pointer, which
// is exactly "reference equal" for the pointer-receiver node types in this
// package.
func sameExpr(a, b Expression) bool { return a == b }
func sameStmt(a, b Statement) bool  { return a == b }
