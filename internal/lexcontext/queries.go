package lexcontext

// CurrentFunction returns the nearest enclosing function frame, or nil if
// none (a pass running over a top-level program body).
func (lc *LexicalContext) CurrentFunction() Node {
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if lc.frames[i].node.Kind() == KindFunction {
			return lc.frames[i].node
		}
	}
	return nil
}

// OutermostFunction returns the top-level (program) function frame.
func (lc *LexicalContext) OutermostFunction() Node {
	for i := 0; i < len(lc.frames); i++ {
		if lc.frames[i].node.Kind() == KindFunction {
			return lc.frames[i].node
		}
	}
	return nil
}

// CurrentBlock returns the nearest enclosing block frame, or nil.
func (lc *LexicalContext) CurrentBlock() Node {
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if lc.frames[i].node.Kind() == KindBlock {
			return lc.frames[i].node
		}
	}
	return nil
}

// ParentBlock returns the block enclosing the current block, or nil if the
// current block is outermost.
func (lc *LexicalContext) ParentBlock() Node {
	seenOne := false
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if lc.frames[i].node.Kind() == KindBlock {
			if seenOne {
				return lc.frames[i].node
			}
			seenOne = true
		}
	}
	return nil
}

// CurrentBlockLabelNode returns the label node if the frame immediately
// enclosing the current block is a Label, or nil otherwise.
func (lc *LexicalContext) CurrentBlockLabelNode() Node {
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if lc.frames[i].node.Kind() == KindBlock {
			if i > 0 && lc.frames[i-1].node.Kind() == KindLabel {
				return lc.frames[i-1].node
			}
			return nil
		}
	}
	return nil
}

// CurrentLoop returns the nearest enclosing While/For frame, or nil.
func (lc *LexicalContext) CurrentLoop() Node {
	for i := len(lc.frames) - 1; i >= 0; i-- {
		k := lc.frames[i].node.Kind()
		if k == KindWhile || k == KindFor {
			return lc.frames[i].node
		}
	}
	return nil
}

// InLoop reports whether the walker is currently inside any loop.
func (lc *LexicalContext) InLoop() bool { return lc.CurrentLoop() != nil }

// GetBreakable resolves a break target: with an empty label, the nearest
// enclosing loop or switch; with a label, the nearest ancestor Label with
// that name.
func (lc *LexicalContext) GetBreakable(label string) Node {
	if label == "" {
		for i := len(lc.frames) - 1; i >= 0; i-- {
			switch lc.frames[i].node.Kind() {
			case KindWhile, KindFor, KindSwitch:
				return lc.frames[i].node
			}
		}
		return nil
	}
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if l, ok := lc.frames[i].node.(Labeled); ok && l.LabelName() == label {
			return l
		}
	}
	return nil
}

// GetContinueTo resolves a continue target; continue only ever resolves to
// a loop, labeled or not.
func (lc *LexicalContext) GetContinueTo(label string) Node {
	if label == "" {
		return lc.CurrentLoop()
	}
	// A labeled continue must name a label that wraps a loop; walk to the
	// label, then confirm the next frame in is a loop.
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if l, ok := lc.frames[i].node.(Labeled); ok && l.LabelName() == label {
			for j := i + 1; j < len(lc.frames); j++ {
				k := lc.frames[j].node.Kind()
				if k == KindWhile || k == KindFor {
					return lc.frames[j].node
				}
			}
			return nil
		}
	}
	return nil
}

// InUnprotectedSwitchContext reports whether the current frame is a block
// whose immediate parent is a switch.
func (lc *LexicalContext) InUnprotectedSwitchContext() bool {
	if len(lc.frames) < 2 {
		return false
	}
	top := lc.frames[len(lc.frames)-1]
	parent := lc.frames[len(lc.frames)-2]
	return top.node.Kind() == KindBlock && parent.node.Kind() == KindSwitch
}

// GetScopeNestingLevelTo counts scope-creating blocks between the top of
// the stack and until (exclusive), returning 0 immediately if a split node
// is encountered along the way — break/continue across a split boundary
// is handled elsewhere.
func (lc *LexicalContext) GetScopeNestingLevelTo(until Node) int {
	count := 0
	for i := len(lc.frames) - 1; i >= 0; i-- {
		n := lc.frames[i].node
		if n == until {
			return count
		}
		if sp, ok := n.(SplitNode); ok && sp.IsSplit() {
			return 0
		}
		if n.Kind() == KindBlock {
			if fc, ok := n.(FlagCarrier); ok && fc.FlagBits()&FlagNeedsScope != 0 {
				count++
			}
		}
	}
	return count
}

// IsExternalTarget reports whether target lies outside split's split
// function body: walking from the top of the stack, seeing split before
// target means the break/continue is escaping the split boundary
// (external); seeing target first means it is still internal. An inlined
// finally of target encountered on the way counts as internal, since
// control still has to pass through that finally before it can ever reach
// split.
func (lc *LexicalContext) IsExternalTarget(split, target Node) bool {
	targetFinallyLabel := ""
	if h, ok := target.(InlinedFinallyHost); ok {
		targetFinallyLabel = h.FinallyLabel()
	}
	for i := len(lc.frames) - 1; i >= 0; i-- {
		n := lc.frames[i].node
		if n == target {
			return false
		}
		if targetFinallyLabel != "" {
			if l, ok := n.(Labeled); ok && l.LabelName() == targetFinallyLabel {
				return false
			}
		}
		if n == split {
			return true
		}
	}
	return false
}

// GetInlinedFinally returns the nearest enclosing Label frame named label —
// the inlined finally a break/continue must route through before reaching
// its real target.
func (lc *LexicalContext) GetInlinedFinally(label string) Node {
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if l, ok := lc.frames[i].node.(Labeled); ok && l.LabelName() == label {
			return lc.frames[i].node
		}
	}
	return nil
}

// GetTryNodeForInlinedFinally returns the nearest enclosing Try whose
// inlined finally carries label, letting a pass find the try that owns a
// given inlined-finally label.
func (lc *LexicalContext) GetTryNodeForInlinedFinally(label string) Node {
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if h, ok := lc.frames[i].node.(InlinedFinallyHost); ok && h.FinallyLabel() == label {
			return lc.frames[i].node
		}
	}
	return nil
}

// GetDefiningBlock walks blocks from the top of the stack looking for one
// whose symbol table has an entry named name.
func (lc *LexicalContext) GetDefiningBlock(name string) Node {
	for i := len(lc.frames) - 1; i >= 0; i-- {
		n := lc.frames[i].node
		if n.Kind() == KindBlock {
			if sc, ok := n.(ScopeNode); ok && sc.HasSymbol(name) {
				return n
			}
		}
	}
	return nil
}

// GetDefiningFunction walks up from name's defining block to the nearest
// enclosing function frame.
func (lc *LexicalContext) GetDefiningFunction(name string) Node {
	definingIdx := -1
	for i := len(lc.frames) - 1; i >= 0; i-- {
		n := lc.frames[i].node
		if n.Kind() == KindBlock {
			if sc, ok := n.(ScopeNode); ok && sc.HasSymbol(name) {
				definingIdx = i
				break
			}
		}
	}
	if definingIdx == -1 {
		return nil
	}
	for i := definingIdx; i >= 0; i-- {
		if lc.frames[i].node.Kind() == KindFunction {
			return lc.frames[i].node
		}
	}
	return nil
}

// Ancestors returns every frame's node from the top of the stack downward
// whose Kind matches kind, optionally stopping once it reaches (and
// including) stopAt.
func (lc *LexicalContext) Ancestors(kind NodeKind, stopAt Node) []Node {
	var out []Node
	for i := len(lc.frames) - 1; i >= 0; i-- {
		n := lc.frames[i].node
		if n.Kind() == kind {
			out = append(out, n)
		}
		if stopAt != nil && n == stopAt {
			break
		}
	}
	return out
}
