// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"errors"
)

// Script-semantic failures. These are the terminal verdict reasons of an
// evaluation: every syntactically valid script ends in success or exactly one
// of these.
var (
	ErrInvalidStackOperation     = errors.New("Invalid stack operation")
	ErrBadOpcode                 = errors.New("Bad opcode")
	ErrDisabledOpcode            = errors.New("Disabled opcode")
	ErrReservedOpcode            = errors.New("Reserved opcode")
	ErrOpCountExceeded           = errors.New("Exceeded max operation count")
	ErrStackOverflow             = errors.New("Exceeded max stack size")
	ErrPushSize                  = errors.New("Exceeded max operand push size")
	ErrScriptTooLarge            = errors.New("Exceeded max script size")
	ErrUnbalancedConditional     = errors.New("Unbalanced conditional")
	ErrScriptEqualVerify         = errors.New("Equality verification failure")
	ErrScriptVerify              = errors.New("Verify failed on false top stack element")
	ErrNumEqualVerify            = errors.New("Numeric equality verification failure")
	ErrInvalidScriptNumber       = errors.New("Invalid script number encoding")
	ErrScriptNumOverflow         = errors.New("Script number overflow")
	ErrDivideByZero              = errors.New("Division or modulo by zero")
	ErrInvalidSignatureEnc       = errors.New("Invalid signature or public key encoding")
	ErrScriptSignatureVerifyFail = errors.New("Signature verification failure")
	ErrCountNegative             = errors.New("Count is negative")
	ErrScriptLockTimeVerifyFail  = errors.New("Check lock time verification failure")
	ErrScriptSequenceVerifyFail  = errors.New("Check sequence verification failure")
	ErrOpReturn                  = errors.New("Encounter OP_RETURN")
	ErrFinalStackEmpty           = errors.New("Final stack empty")
	ErrFinalTopStackEleFalse     = errors.New("Final top stack element false")
)

// Infrastructure errors. These mean the raw bytes could not even be decoded
// into tokens; they are reported to the caller and are not part of the
// consensus verdict space.
var (
	ErrScriptBound             = errors.New("Program counter out of script bound")
	ErrNoEnoughDataOPPUSHDATA1 = errors.New("OP_PUSHDATA1 has not enough data")
	ErrNoEnoughDataOPPUSHDATA2 = errors.New("OP_PUSHDATA2 has not enough data")
	ErrNoEnoughDataOPPUSHDATA4 = errors.New("OP_PUSHDATA4 has not enough data")
	ErrInputIndexOutOfBound    = errors.New("input index out of bound")
	ErrAddressNotApplicable    = errors.New("Address not applicable for the script type")
)

var scriptFailures = map[error]struct{}{
	ErrInvalidStackOperation:     {},
	ErrBadOpcode:                 {},
	ErrDisabledOpcode:            {},
	ErrReservedOpcode:            {},
	ErrOpCountExceeded:           {},
	ErrStackOverflow:             {},
	ErrPushSize:                  {},
	ErrScriptTooLarge:            {},
	ErrUnbalancedConditional:     {},
	ErrScriptEqualVerify:         {},
	ErrScriptVerify:              {},
	ErrNumEqualVerify:            {},
	ErrInvalidScriptNumber:       {},
	ErrScriptNumOverflow:         {},
	ErrDivideByZero:              {},
	ErrInvalidSignatureEnc:       {},
	ErrScriptSignatureVerifyFail: {},
	ErrCountNegative:             {},
	ErrScriptLockTimeVerifyFail:  {},
	ErrScriptSequenceVerifyFail:  {},
	ErrOpReturn:                  {},
	ErrFinalStackEmpty:           {},
	ErrFinalTopStackEleFalse:     {},
}

// IsScriptFailure returns whether err is a script-semantic failure verdict,
// as opposed to an infrastructure error such as undecodable script bytes.
func IsScriptFailure(err error) bool {
	_, ok := scriptFailures[err]
	return ok
}
