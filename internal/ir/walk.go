package ir

import "github.com/cwbudde/ecmacore/internal/lexcontext"

// Walk is the single traversal entry point every pass uses, mirroring
// go/ast.Walk's shape rather than a per-node-type accept(visitor) method
// set (see the design note atop node.go). It drives
// v.Enter/v.Leave over n and, for the structural node kinds the lexical
// context cares about (Block, Function, If, While, For, Try, Catch,
// Switch, Case, Label), pushes a frame before descending into children and
// pops it — applying any flags the pass accumulated on that frame — before
// calling Leave.
//
// Each push/pop branch below keeps the frame's node in sync via
// lc.Replace as children are rewritten, since both ApplyTopFlags and Pop
// assert their argument is the current top.
//
// Traversal order follows source order with two documented exceptions
//: a Var's initializer is visited before its name is
// re-visited for assignment purposes, and a do-while's body is visited
// before its test (since the test is source-last but logically gates
// re-entry, not initial entry).
func Walk(v Visitor, lc *lexcontext.LexicalContext, n Node) Node {
	if n == nil {
		return nil
	}
	if !v.Enter(n) {
		return n
	}

	switch t := n.(type) {
	case *Block:
		lc.Push(t)
		stmts := make([]Statement, len(t.statements))
		changed := false
		for i, s := range t.statements {
			ns, _ := Walk(v, lc, s).(Statement)
			stmts[i] = ns
			if ns != s {
				changed = true
			}
		}
		current := Node(t)
		if changed {
			nb := t.WithStatements(stmts)
			lc.Replace(current, nb)
			current = nb
		}
		flagged := lc.ApplyTopFlags(current)
		lc.Pop(flagged)
		return v.Leave(flagged)

	case *Function:
		lc.Push(t)
		newBody, _ := Walk(v, lc, t.body).(*Block)
		current := Node(t)
		if newBody != t.body {
			nf := t.WithBody(newBody)
			lc.Replace(current, nf)
			current = nf
		}
		flagged := lc.ApplyTopFlags(current)
		lc.Pop(flagged)
		return v.Leave(flagged)

	case *If:
		lc.Push(t)
		test := walkExpr(v, lc, t.test)
		cons, _ := Walk(v, lc, t.cons).(Statement)
		var alt Statement
		if t.alt != nil {
			alt, _ = Walk(v, lc, t.alt).(Statement)
		}
		result := t.WithTest(test).WithConsequent(cons).WithAlternate(alt)
		lc.Replace(t, result)
		lc.Pop(result)
		return v.Leave(result)

	case *While:
		lc.Push(t)
		var result *While
		if t.isDoWhile {
			body, _ := Walk(v, lc, t.body).(Statement)
			test := walkExpr(v, lc, t.test)
			result = t.WithBody(body).WithTest(test)
		} else {
			test := walkExpr(v, lc, t.test)
			body, _ := Walk(v, lc, t.body).(Statement)
			result = t.WithTest(test).WithBody(body)
		}
		lc.Replace(t, result)
		lc.Pop(result)
		return v.Leave(result)

	case *For:
		lc.Push(t)
		var result *For
		if t.IsForIn() || t.IsForOf() || t.IsForEach() {
			left := walkExpr(v, lc, t.left)
			right := walkExpr(v, lc, t.right)
			body, _ := Walk(v, lc, t.body).(Statement)
			result = t.WithLeft(left).WithRight(right).WithBody(body)
		} else {
			var init Node
			if t.init != nil {
				init = Walk(v, lc, t.init)
			}
			test := walkExpr(v, lc, t.test)
			update := walkExpr(v, lc, t.update)
			body, _ := Walk(v, lc, t.body).(Statement)
			result = t.WithInit(init).WithTest(test).WithUpdate(update).WithBody(body)
		}
		lc.Replace(t, result)
		lc.Pop(result)
		return v.Leave(result)

	case *Switch:
		lc.Push(t)
		tag := walkExpr(v, lc, t.tag)
		cases := make([]*Case, len(t.cases))
		for i, c := range t.cases {
			cases[i], _ = Walk(v, lc, c).(*Case)
		}
		result := t.WithTag(tag).WithCases(cases)
		lc.Replace(t, result)
		lc.Pop(result)
		return v.Leave(result)

	case *Case:
		lc.Push(t)
		test := walkExpr(v, lc, t.test)
		body := make([]Statement, len(t.body))
		for i, s := range t.body {
			body[i], _ = Walk(v, lc, s).(Statement)
		}
		result := t.WithTest(test).WithBody(body)
		lc.Replace(t, result)
		lc.Pop(result)
		return v.Leave(result)

	case *Try:
		lc.Push(t)
		block, _ := Walk(v, lc, t.block).(*Block)
		var catches []*Catch
		if t.catches != nil {
			catches = make([]*Catch, len(t.catches))
			for i, c := range t.catches {
				catches[i], _ = Walk(v, lc, c).(*Catch)
			}
		}
		var finally *Block
		if t.finally != nil {
			finally, _ = Walk(v, lc, t.finally).(*Block)
		}
		result := t.WithBlock(block).WithCatches(catches).WithFinally(finally)
		lc.Replace(t, result)
		lc.Pop(result)
		return v.Leave(result)

	case *Catch:
		lc.Push(t)
		condition := walkExpr(v, lc, t.condition)
		body, _ := Walk(v, lc, t.body).(*Block)
		result := t.WithCondition(condition).WithBody(body)
		lc.Replace(t, result)
		lc.Pop(result)
		return v.Leave(result)

	case *Label:
		lc.Push(t)
		body, _ := Walk(v, lc, t.body).(Statement)
		result := t.WithBody(body)
		lc.Replace(t, result)
		lc.Pop(result)
		return v.Leave(result)

	case *ExpressionStatement:
		expr := walkExpr(v, lc, t.expr)
		return v.Leave(t.WithExpression(expr))

	case *Var:
		// Exception: initializer before name.
		init := walkExpr(v, lc, t.init)
		result := t.WithInit(init)
		if nameRes, ok := Walk(v, lc, t.name).(*Ident); ok {
			result = result.WithName(nameRes)
		}
		return v.Leave(result)

	case *Throw:
		return v.Leave(t.WithExpression(walkExpr(v, lc, t.expr)))

	case *Return:
		return v.Leave(t.WithExpression(walkExpr(v, lc, t.expr)))

	case *Break, *Continue:
		return v.Leave(n)

	case *Ident:
		return v.Leave(t)

	case *Literal:
		return v.Leave(t)

	case *ArrayLiteral:
		elems := make([]Expression, len(t.elements))
		for i, e := range t.elements {
			elems[i] = walkExpr(v, lc, e)
		}
		cp := *t
		cp.elements = elems
		cp.initialized = false
		return v.Leave(&cp)

	case *ObjectLiteral:
		props := make([]PropertyEntry, len(t.properties))
		for i, p := range t.properties {
			np := p
			np.Key = walkExpr(v, lc, p.Key)
			if p.Value != nil {
				np.Value = walkExpr(v, lc, p.Value)
			}
			props[i] = np
		}
		cp := *t
		cp.properties = props
		return v.Leave(&cp)

	case *Access:
		return v.Leave(t.WithBase(walkExpr(v, lc, t.base)))

	case *Index:
		return v.Leave(t.WithBase(walkExpr(v, lc, t.base)).WithIndex(walkExpr(v, lc, t.index)))

	case *Call:
		callee := walkExpr(v, lc, t.callee)
		args := make([]Expression, len(t.args))
		for i, a := range t.args {
			args[i] = walkExpr(v, lc, a)
		}
		return v.Leave(t.WithCallee(callee).WithArgs(args))

	case *Unary:
		return v.Leave(t.WithOperand(walkExpr(v, lc, t.operand)))

	case *Binary:
		return v.Leave(t.WithLHS(walkExpr(v, lc, t.lhs)).WithRHS(walkExpr(v, lc, t.rhs)))

	case *Ternary:
		test := walkExpr(v, lc, t.test)
		ifTrue := t.ifTrue.WithExpression(walkExpr(v, lc, t.ifTrue.Expression()))
		ifFalse := t.ifFalse.WithExpression(walkExpr(v, lc, t.ifFalse.Expression()))
		return v.Leave(t.WithTest(test).WithIfTrue(ifTrue).WithIfFalse(ifFalse))

	case *Runtime:
		args := make([]Expression, len(t.args))
		for i, a := range t.args {
			args[i] = walkExpr(v, lc, a)
		}
		return v.Leave(t.WithArgs(args))

	case *Error:
		return v.Leave(t)

	default:
		return v.Leave(n)
	}
}

func walkExpr(v Visitor, lc *lexcontext.LexicalContext, e Expression) Expression {
	if e == nil {
		return nil
	}
	r, _ := Walk(v, lc, e).(Expression)
	return r
}
