// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
)

// execBitwiseOp evaluates the surviving bit-logic opcodes. The historical bit
// manipulation opcodes are disabled and never reach this evaluator.
func (st *execState) execBitwiseOp(opCode OpCode) error {
	stack := st.stack

	switch opCode {
	case OPEQUAL, OPEQUALVERIFY:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		op1 := stack.topN(2)
		op2 := stack.topN(1)
		// use bytes.Equal() instead of reflect.DeepEqual() for efficiency
		isEqual := bytes.Equal(op1, op2)
		stack.pop()
		stack.pop()
		st.pushBool(isEqual)
		if opCode == OPEQUALVERIFY {
			if isEqual {
				stack.pop()
			} else {
				return ErrScriptEqualVerify
			}
		}

	default:
		return ErrBadOpcode
	}
	return nil
}
