// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/okayplanet/bitcoin-s-core/crypto"
)

// Consensus resource limits enforced by the interpreter.
const (
	// maxOpsPerScript is the maximum number of executed non-push operations.
	maxOpsPerScript = 201

	// maxStackSize is the maximum combined height of stack and alt stack
	// during execution.
	maxStackSize = 1000

	// maxScriptSize is the maximum allowed length of a raw script.
	maxScriptSize = 10000

	// maxOperandSize is the maximum number of bytes a single push may place
	// on the stack.
	maxOperandSize = 520
)

// ScriptFlags is a bitmask selecting additional validation rules applied
// during evaluation.
type ScriptFlags uint32

const (
	// ScriptVerifyMinimalData requires numbers to use the shortest
	// possible encoding.
	ScriptVerifyMinimalData ScriptFlags = 1 << iota

	// ScriptVerifyStrictEncoding requires signatures and public keys
	// consumed by signature-check opcodes to be well formed; malformed
	// encodings become hard failures instead of failed comparisons.
	ScriptVerifyStrictEncoding
)

// StandardVerifyFlags is the rule set applied by Evaluate.
const StandardVerifyFlags = ScriptVerifyMinimalData | ScriptVerifyStrictEncoding

// TxContext supplies the transaction-level inputs an evaluation needs: the
// signature hash over a script code, and the spending transaction's lock
// time and input sequence. Implementations live with the transaction logic;
// the interpreter never reconstructs them.
type TxContext interface {
	// SigHash returns the signature hash of the transaction computed
	// against scriptCode.
	SigHash(scriptCode []byte) (*crypto.HashType, error)

	// LockTime returns the transaction lock time.
	LockTime() int64

	// Sequence returns the sequence of the input being validated.
	Sequence() uint32
}

// execState carries the mutable state of one evaluation. A fresh state is
// created per Evaluate call and discarded with the verdict; evaluations share
// nothing.
type execState struct {
	script   Script
	stack    *Stack
	altStack *Stack
	branches *branchStack
	opCount  int
	flags    ScriptFlags
	ctx      TxContext

	// scriptPubKeyStart is the offset right after the latest executed
	// OP_CODESEPARATOR; signature checks cover the script from here on.
	scriptPubKeyStart int
}

func newExecState(script Script, flags ScriptFlags, ctx TxContext) *execState {
	return &execState{
		script:   script,
		stack:    newStack(),
		altStack: newStack(),
		branches: &branchStack{},
		flags:    flags,
		ctx:      ctx,
	}
}

func (st *execState) minimalData() bool {
	return st.flags&ScriptVerifyMinimalData != 0
}

func (st *execState) strictEncoding() bool {
	return st.flags&ScriptVerifyStrictEncoding != 0
}

// Evaluate interprets the script under the standard rule set and returns an
// error unless the script runs to completion with a true top stack element.
// initialStack seeds the main stack bottom-to-top before the first token runs.
func (s *Script) Evaluate(initialStack []Operand, ctx TxContext) error {
	return s.EvaluateFlags(initialStack, ctx, StandardVerifyFlags)
}

// EvaluateFlags interprets the script under an explicit rule set.
func (s *Script) EvaluateFlags(initialStack []Operand, ctx TxContext, flags ScriptFlags) error {
	script := *s
	scriptLen := len(script)
	if scriptLen > maxScriptSize {
		return ErrScriptTooLarge
	}

	state := newExecState(script, flags, ctx)
	for _, operand := range initialStack {
		state.stack.push(operand)
	}

	for pc := 0; pc < scriptLen; {
		opCode, operand, newPc, err := s.parseNextOp(pc)
		if err != nil {
			return err
		}
		pc = newPc

		if err := state.execOp(opCode, operand, pc); err != nil {
			return err
		}

		if state.stack.size()+state.altStack.size() > maxStackSize {
			return ErrStackOverflow
		}
	}

	if !state.branches.empty() {
		return ErrUnbalancedConditional
	}

	// Succeed if top stack item is true
	return state.stack.validateTop()
}

// execOp executes a single token against the state. pc points right past the
// token, including any push payload.
func (st *execState) execOp(opCode OpCode, pushData Operand, pc int) error {
	// Executed or not, every non-push opcode counts toward the operation
	// cap, and disabled opcodes poison the whole script.
	if opCode > OP16 {
		st.opCount++
		if st.opCount > maxOpsPerScript {
			return ErrOpCountExceeded
		}
	}
	if opCode.isDisabled() {
		return ErrDisabledOpcode
	}

	if opCode.isConditional() {
		return st.execBranchOp(opCode)
	}
	if !st.branches.executing() {
		return nil
	}

	// Push value
	if opCode <= OPPUSHDATA4 {
		if len(pushData) > maxOperandSize {
			return ErrPushSize
		}
		st.stack.push(pushData)
		return nil
	}
	if opCode == OP1NEGATE || (opCode >= OP1 && opCode <= OP16) {
		st.stack.push(scriptNum(opCode.smallInt()).Bytes())
		return nil
	}

	if opCode.isReserved() {
		return ErrReservedOpcode
	}

	switch {
	case opCode >= OPTOALTSTACK && opCode <= OPTUCK, opCode == OPSIZE:
		return st.execStackOp(opCode)
	case opCode >= OP1ADD && opCode <= OPWITHIN:
		return st.execArithmeticOp(opCode)
	case opCode == OPEQUAL || opCode == OPEQUALVERIFY:
		return st.execBitwiseOp(opCode)
	case opCode >= OPRIPEMD160 && opCode <= OPCHECKMULTISIGVERIFY:
		return st.execCryptoOp(opCode, pc)
	case opCode == OPCHECKLOCKTIMEVERIFY || opCode == OPCHECKSEQUENCEVERIFY:
		return st.execLockTimeOp(opCode)
	case opCode == OPVERIFY || opCode == OPRETURN || opCode == OPNOP,
		opCode == OPNOP1, opCode >= OPNOP4 && opCode <= OPNOP10:
		return st.execControlOp(opCode)
	default:
		return ErrBadOpcode
	}
}
