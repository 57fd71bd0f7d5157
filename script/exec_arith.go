// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// pushBool pushes the integer encoding of a comparison result.
func (st *execState) pushBool(b bool) {
	if b {
		st.stack.push(operandTrue)
	} else {
		st.stack.push(operandFalse)
	}
}

// popNum pops the top operand and decodes it as an arithmetic input.
func (st *execState) popNum() (scriptNum, error) {
	if st.stack.size() < 1 {
		return 0, ErrInvalidStackOperation
	}
	return makeScriptNum(st.stack.pop(), maxScriptNumLen, st.minimalData())
}

// pushNum re-encodes an arithmetic result, failing on overflow of the fixed
// output width.
func (st *execState) pushNum(n scriptNum) error {
	if err := n.checkOverflow(); err != nil {
		return err
	}
	st.stack.push(n.Bytes())
	return nil
}

// execArithmeticOp evaluates numeric opcodes over decoded script numbers.
func (st *execState) execArithmeticOp(opCode OpCode) error {
	switch opCode {
	case OP1ADD, OP1SUB, OPNEGATE, OPABS, OPNOT, OP0NOTEQUAL:
		op, err := st.popNum()
		if err != nil {
			return err
		}
		switch opCode {
		case OP1ADD:
			return st.pushNum(op + 1)
		case OP1SUB:
			return st.pushNum(op - 1)
		case OPNEGATE:
			return st.pushNum(-op)
		case OPABS:
			if op < 0 {
				op = -op
			}
			return st.pushNum(op)
		case OPNOT:
			st.pushBool(op == 0)
		case OP0NOTEQUAL:
			st.pushBool(op != 0)
		}

	case OPADD, OPSUB, OPMUL, OPDIV, OPMOD, OPBOOLAND, OPBOOLOR,
		OPNUMEQUAL, OPNUMEQUALVERIFY, OPNUMNOTEQUAL,
		OPLESSTHAN, OPGREATERTHAN, OPLESSTHANOREQUAL, OPGREATERTHANOREQUAL,
		OPMIN, OPMAX:
		if st.stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		op2, err := st.popNum()
		if err != nil {
			return err
		}
		op1, err := st.popNum()
		if err != nil {
			return err
		}

		switch opCode {
		case OPADD:
			return st.pushNum(op1 + op2)
		case OPSUB:
			return st.pushNum(op1 - op2)
		case OPMUL:
			return st.pushNum(op1 * op2)
		case OPDIV:
			if op2 == 0 {
				return ErrDivideByZero
			}
			return st.pushNum(op1 / op2)
		case OPMOD:
			if op2 == 0 {
				return ErrDivideByZero
			}
			return st.pushNum(op1 % op2)
		case OPBOOLAND:
			st.pushBool(op1 != 0 && op2 != 0)
		case OPBOOLOR:
			st.pushBool(op1 != 0 || op2 != 0)
		case OPNUMEQUAL:
			st.pushBool(op1 == op2)
		case OPNUMEQUALVERIFY:
			if op1 != op2 {
				return ErrNumEqualVerify
			}
		case OPNUMNOTEQUAL:
			st.pushBool(op1 != op2)
		case OPLESSTHAN:
			st.pushBool(op1 < op2)
		case OPGREATERTHAN:
			st.pushBool(op1 > op2)
		case OPLESSTHANOREQUAL:
			st.pushBool(op1 <= op2)
		case OPGREATERTHANOREQUAL:
			st.pushBool(op1 >= op2)
		case OPMIN:
			if op2 < op1 {
				op1 = op2
			}
			return st.pushNum(op1)
		case OPMAX:
			if op2 > op1 {
				op1 = op2
			}
			return st.pushNum(op1)
		}

	case OPWITHIN:
		if st.stack.size() < 3 {
			return ErrInvalidStackOperation
		}
		max, err := st.popNum()
		if err != nil {
			return err
		}
		min, err := st.popNum()
		if err != nil {
			return err
		}
		x, err := st.popNum()
		if err != nil {
			return err
		}
		st.pushBool(min <= x && x < max)

	default:
		return ErrBadOpcode
	}
	return nil
}
