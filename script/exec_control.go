// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// execBranchOp evaluates the conditional opcodes. These are dispatched even
// inside non-executing branches so nesting stays balanced.
func (st *execState) execBranchOp(opCode OpCode) error {
	switch opCode {
	case OPIF, OPNOTIF:
		cond := false
		if st.branches.executing() {
			if st.stack.size() < 1 {
				return ErrInvalidStackOperation
			}
			cond = st.stack.pop().isTrue()
			if opCode == OPNOTIF {
				cond = !cond
			}
		}
		st.branches.push(cond)

	case OPELSE:
		return st.branches.flip()

	case OPENDIF:
		return st.branches.pop()
	}
	return nil
}

// execControlOp evaluates VERIFY, RETURN, and the no-op opcodes.
func (st *execState) execControlOp(opCode OpCode) error {
	switch opCode {
	case OPVERIFY:
		if st.stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		if !st.stack.pop().isTrue() {
			return ErrScriptVerify
		}

	case OPRETURN:
		return ErrOpReturn

	case OPNOP, OPNOP1, OPNOP4, OPNOP5, OPNOP6, OPNOP7, OPNOP8, OPNOP9, OPNOP10:
		// expansion opcodes, deliberately do nothing

	default:
		return ErrBadOpcode
	}
	return nil
}
