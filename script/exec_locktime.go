// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

const (
	// sequenceLockTimeDisabled, when set in a transaction input sequence,
	// means the sequence has no meaning as a relative lock time.
	sequenceLockTimeDisabled = uint32(1) << 31

	// sequenceLockTimeIsSeconds, when set, interprets the relative lock time
	// as seconds instead of blocks.
	sequenceLockTimeIsSeconds = uint32(1) << 22

	// sequenceLockTimeMask extracts the relative lock time value.
	sequenceLockTimeMask = uint32(0x0000ffff)
)

// execLockTimeOp evaluates OP_CHECKLOCKTIMEVERIFY and
// OP_CHECKSEQUENCEVERIFY. Both peek the required value without popping so a
// following OP_DROP keeps the stack clean.
func (st *execState) execLockTimeOp(opCode OpCode) error {
	stack := st.stack
	if stack.size() < 1 {
		return ErrInvalidStackOperation
	}

	// Lock times exceed the 4-byte arithmetic range so allow 5 bytes here.
	lockTime, err := makeScriptNum(stack.topN(1), cltvScriptNumLen, st.minimalData())
	if err != nil {
		return err
	}

	switch opCode {
	case OPCHECKLOCKTIMEVERIFY:
		if lockTime < 0 {
			return ErrScriptLockTimeVerifyFail
		}
		if st.ctx == nil {
			return ErrScriptLockTimeVerifyFail
		}
		return checkLockTime(int64(lockTime), st.ctx.LockTime())

	case OPCHECKSEQUENCEVERIFY:
		if lockTime < 0 {
			return ErrScriptSequenceVerifyFail
		}
		// Stack value with the disable bit set behaves like a NOP.
		if int64(lockTime)&int64(sequenceLockTimeDisabled) != 0 {
			return nil
		}
		if st.ctx == nil {
			return ErrScriptSequenceVerifyFail
		}
		return checkSequence(int64(lockTime), st.ctx.Sequence())

	default:
		return ErrBadOpcode
	}
}

// checkLockTime verifies the transaction lock time against the required one.
// Both must be of the same type: block height or unix timestamp.
func checkLockTime(required, txLockTime int64) error {
	if (required < LockTimeThreshold) != (txLockTime < LockTimeThreshold) {
		return ErrScriptLockTimeVerifyFail
	}
	if required > txLockTime {
		return ErrScriptLockTimeVerifyFail
	}
	return nil
}

// checkSequence verifies the transaction input sequence against the required
// relative lock time.
func checkSequence(required int64, txSequence uint32) error {
	// The transaction version gating lives with the caller; a disabled
	// sequence simply cannot satisfy a relative lock time.
	if txSequence&sequenceLockTimeDisabled != 0 {
		return ErrScriptSequenceVerifyFail
	}

	lockTimeMask := int64(sequenceLockTimeIsSeconds | sequenceLockTimeMask)
	maskedRequired := required & lockTimeMask
	maskedSequence := int64(txSequence) & lockTimeMask

	// Same type: both time based or both block based.
	if (maskedRequired < int64(sequenceLockTimeIsSeconds)) !=
		(maskedSequence < int64(sequenceLockTimeIsSeconds)) {
		return ErrScriptSequenceVerifyFail
	}
	if maskedRequired > maskedSequence {
		return ErrScriptSequenceVerifyFail
	}
	return nil
}
