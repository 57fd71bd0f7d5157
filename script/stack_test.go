// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestStack(t *testing.T) {
	stack := newStack()
	ensure.True(t, stack.empty())
	ensure.DeepEqual(t, stack.validateTop(), ErrFinalStackEmpty)
	ensure.True(t, stack.pop() == nil)
	ensure.True(t, stack.topN(1) == nil)

	stack.push(Operand{0x01})
	stack.push(Operand{0x02})
	stack.push(Operand{0x03})
	ensure.DeepEqual(t, stack.size(), 3)

	ensure.DeepEqual(t, stack.topN(1), Operand{0x03})
	ensure.DeepEqual(t, stack.topN(3), Operand{0x01})
	ensure.True(t, stack.topN(4) == nil)
	ensure.True(t, stack.topN(0) == nil)

	ensure.Nil(t, stack.validateTop())

	ensure.DeepEqual(t, stack.removeN(2), Operand{0x02})
	ensure.DeepEqual(t, stack.size(), 2)
	ensure.DeepEqual(t, stack.pop(), Operand{0x03})
	ensure.DeepEqual(t, stack.pop(), Operand{0x01})
	ensure.True(t, stack.empty())
}

func TestOperandIsTrue(t *testing.T) {
	tests := []struct {
		operand Operand
		want    bool
	}{
		{Operand{}, false},
		{operandFalse, false},
		{operandTrue, true},
		{Operand{0x00}, false},
		{Operand{0x00, 0x00}, false},
		{Operand{0x80}, false},             // negative zero
		{Operand{0x00, 0x80}, false},       // negative zero, longer form
		{Operand{0x80, 0x00}, true},        // sign byte not last
		{Operand{0x00, 0x00, 0x01}, true},
		{Operand{0x01}, true},
	}
	for _, tc := range tests {
		ensure.DeepEqual(t, tc.operand.isTrue(), tc.want)
	}
}

func TestBranchStack(t *testing.T) {
	branches := &branchStack{}
	ensure.True(t, branches.empty())
	ensure.True(t, branches.executing())
	ensure.DeepEqual(t, branches.flip(), ErrUnbalancedConditional)
	ensure.DeepEqual(t, branches.pop(), ErrUnbalancedConditional)

	branches.push(true)
	ensure.True(t, branches.executing())
	branches.push(false)
	ensure.False(t, branches.executing())
	ensure.DeepEqual(t, branches.depth(), 2)

	// OP_ELSE makes the inner branch visible again
	ensure.Nil(t, branches.flip())
	ensure.True(t, branches.executing())

	// any false entry hides all nested branches
	branches.push(true)
	ensure.True(t, branches.executing())
	ensure.Nil(t, branches.pop())
	ensure.Nil(t, branches.flip())
	ensure.False(t, branches.executing())

	ensure.Nil(t, branches.pop())
	ensure.Nil(t, branches.pop())
	ensure.True(t, branches.empty())
}
