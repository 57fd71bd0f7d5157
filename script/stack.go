// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// Operand represents stack operand when interpreting script
type Operand []byte

var (
	operandFalse = Operand{}
	operandTrue  = Operand{1}
)

// isTrue interprets the operand as a boolean under the consensus rule: an
// operand is false iff every byte is zero, except that the last byte may be
// the bare sign bit 0x80 (negative zero).
func (o Operand) isTrue() bool {
	for i, b := range o {
		if b != 0 {
			if i == len(o)-1 && b == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}

// Stack is used when interpreting script
type Stack struct {
	stk []Operand
}

// NewStack creates a clean stack
func newStack() *Stack {
	stk := make([]Operand, 0)
	return &Stack{stk}
}

func (s *Stack) size() int {
	return len(s.stk)
}

func (s *Stack) empty() bool {
	return len(s.stk) == 0
}

func (s *Stack) push(o Operand) {
	s.stk = append(s.stk, o)
}

func (s *Stack) pop() Operand {
	stackLen := len(s.stk)
	if stackLen == 0 {
		return nil
	}

	o := s.stk[stackLen-1]
	s.stk = s.stk[:stackLen-1]
	return o
}

// topN returns the top n-th element, n starts from 1.
func (s *Stack) topN(n int) Operand {
	stackLen := len(s.stk)
	if n <= 0 || n > stackLen {
		return nil
	}
	return s.stk[stackLen-n]
}

// removeN removes and returns the top n-th element, n starts from 1.
func (s *Stack) removeN(n int) Operand {
	stackLen := len(s.stk)
	if n <= 0 || n > stackLen {
		return nil
	}
	idx := stackLen - n
	o := s.stk[idx]
	s.stk = append(s.stk[:idx], s.stk[idx+1:]...)
	return o
}

// validateTop succeeds if top stack item is true
func (s *Stack) validateTop() error {
	if s.empty() {
		return ErrFinalStackEmpty
	}
	if !s.topN(1).isTrue() {
		return ErrFinalTopStackEleFalse
	}
	return nil
}

// branchStack records nested IF/ELSE visibility. The script is executing
// only when every entry is true.
type branchStack struct {
	conds []bool
}

func (b *branchStack) empty() bool {
	return len(b.conds) == 0
}

func (b *branchStack) depth() int {
	return len(b.conds)
}

// executing reports whether the current branch is visible. An empty branch
// stack means top-level code, which always executes.
func (b *branchStack) executing() bool {
	for _, cond := range b.conds {
		if !cond {
			return false
		}
	}
	return true
}

func (b *branchStack) push(cond bool) {
	b.conds = append(b.conds, cond)
}

// flip inverts the innermost branch for OP_ELSE.
func (b *branchStack) flip() error {
	if len(b.conds) == 0 {
		return ErrUnbalancedConditional
	}
	b.conds[len(b.conds)-1] = !b.conds[len(b.conds)-1]
	return nil
}

// pop discards the innermost branch for OP_ENDIF.
func (b *branchStack) pop() error {
	if len(b.conds) == 0 {
		return ErrUnbalancedConditional
	}
	b.conds = b.conds[:len(b.conds)-1]
	return nil
}
