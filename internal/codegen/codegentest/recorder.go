// Package codegentest provides a no-op recording BytecodeOps double for
// exercising internal/ir's codegen-facing methods in tests, since
// internal/codegen intentionally ships no concrete emitter.
package codegentest

import (
	"fmt"

	"github.com/cwbudde/ecmacore/internal/codegen"
	"github.com/cwbudde/ecmacore/internal/types"
)

// Entry is one recorded BytecodeOps call, rendered for snapshot-style
// assertions without depending on a concrete instruction encoding.
type Entry struct {
	Op   string
	Args []string
}

func (e Entry) String() string {
	s := e.Op
	for _, a := range e.Args {
		s += " " + a
	}
	return s
}

// Recorder implements codegen.BytecodeOps, appending one Entry per call.
type Recorder struct {
	Entries []Entry
}

func New() *Recorder { return &Recorder{} }

func (r *Recorder) record(op string, args ...string) {
	r.Entries = append(r.Entries, Entry{Op: op, Args: args})
}

func typeName(t *types.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

func (r *Recorder) LoadSlot(index int32, t *types.Type) {
	r.record("LoadSlot", fmt.Sprint(index), typeName(t))
}

func (r *Recorder) StoreSlot(index int32, t *types.Type) {
	r.record("StoreSlot", fmt.Sprint(index), typeName(t))
}

func (r *Recorder) Ldc(value any, t *types.Type) {
	r.record("Ldc", fmt.Sprint(value), typeName(t))
}

func (r *Recorder) LoadUndefined() {
	r.record("LoadUndefined")
}

func (r *Recorder) LoadForcedInitializer(t *types.Type) {
	r.record("LoadForcedInitializer", typeName(t))
}

var arithNames = [...]string{"Add", "Sub", "Mul", "Div", "Rem", "Neg"}

func (r *Recorder) Arithmetic(op codegen.ArithOp, t *types.Type) {
	name := "Unknown"
	if int(op) >= 0 && int(op) < len(arithNames) {
		name = arithNames[op]
	}
	r.record("Arithmetic", name, typeName(t))
}

func (r *Recorder) Cmp(op codegen.CompareOp, t *types.Type) {
	name := "CmpG"
	if op == codegen.CmpL {
		name = "CmpL"
	}
	r.record("Cmp", name, typeName(t))
}

func (r *Recorder) ConvertTo(from, to *types.Type) {
	r.record("ConvertTo", typeName(from), typeName(to))
}

func (r *Recorder) DoReturn(t *types.Type) {
	r.record("DoReturn", typeName(t))
}

func (r *Recorder) ALoad(elem *types.Type) {
	r.record("ALoad", typeName(elem))
}

func (r *Recorder) AStore(elem *types.Type) {
	r.record("AStore", typeName(elem))
}

func (r *Recorder) NewArray(elem *types.Type, length int32) {
	r.record("NewArray", typeName(elem), fmt.Sprint(length))
}

var _ codegen.BytecodeOps = (*Recorder)(nil)
