// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// execStackOp rearranges the main and alternate stacks.
func (st *execState) execStackOp(opCode OpCode) error {
	stack, altStack := st.stack, st.altStack

	switch opCode {
	case OPTOALTSTACK:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		altStack.push(stack.pop())

	case OPFROMALTSTACK:
		if altStack.size() < 1 {
			return ErrInvalidStackOperation
		}
		stack.push(altStack.pop())

	case OP2DROP:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		stack.pop()
		stack.pop()

	case OP2DUP:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		op1, op2 := stack.topN(2), stack.topN(1)
		stack.push(op1)
		stack.push(op2)

	case OP3DUP:
		if stack.size() < 3 {
			return ErrInvalidStackOperation
		}
		op1, op2, op3 := stack.topN(3), stack.topN(2), stack.topN(1)
		stack.push(op1)
		stack.push(op2)
		stack.push(op3)

	case OP2OVER:
		if stack.size() < 4 {
			return ErrInvalidStackOperation
		}
		op1, op2 := stack.topN(4), stack.topN(3)
		stack.push(op1)
		stack.push(op2)

	case OP2ROT:
		if stack.size() < 6 {
			return ErrInvalidStackOperation
		}
		op1 := stack.removeN(6)
		op2 := stack.removeN(5)
		stack.push(op1)
		stack.push(op2)

	case OP2SWAP:
		if stack.size() < 4 {
			return ErrInvalidStackOperation
		}
		op1 := stack.removeN(4)
		op2 := stack.removeN(3)
		stack.push(op1)
		stack.push(op2)

	case OPIFDUP:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		if top := stack.topN(1); top.isTrue() {
			stack.push(top)
		}

	case OPDEPTH:
		stack.push(scriptNum(stack.size()).Bytes())

	case OPDROP:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		stack.pop()

	case OPDUP:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		stack.push(stack.topN(1))

	case OPNIP:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		stack.removeN(2)

	case OPOVER:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		stack.push(stack.topN(2))

	case OPPICK, OPROLL:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		n, err := makeScriptNum(stack.pop(), maxScriptNumLen, st.minimalData())
		if err != nil {
			return err
		}
		if n < 0 || int(n) >= stack.size() {
			return ErrInvalidStackOperation
		}
		if opCode == OPPICK {
			stack.push(stack.topN(int(n) + 1))
		} else {
			stack.push(stack.removeN(int(n) + 1))
		}

	case OPROT:
		if stack.size() < 3 {
			return ErrInvalidStackOperation
		}
		stack.push(stack.removeN(3))

	case OPSWAP:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		stack.push(stack.removeN(2))

	case OPTUCK:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		op2 := stack.pop()
		op1 := stack.pop()
		stack.push(op2)
		stack.push(op1)
		stack.push(op2)

	case OPSIZE:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		stack.push(scriptNum(len(stack.topN(1))).Bytes())
	}
	return nil
}
