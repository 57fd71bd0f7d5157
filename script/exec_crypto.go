// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/okayplanet/bitcoin-s-core/crypto"
)

// execCryptoOp evaluates hashing and signature-check opcodes. pc points right
// past the current token and marks where the script code restarts after an
// OP_CODESEPARATOR.
func (st *execState) execCryptoOp(opCode OpCode, pc int) error {
	stack := st.stack

	switch opCode {
	case OPRIPEMD160, OPSHA1, OPSHA256, OPHASH160, OPHASH256:
		if stack.size() < 1 {
			return ErrInvalidStackOperation
		}
		buf := stack.pop()
		switch opCode {
		case OPRIPEMD160:
			stack.push(crypto.Ripemd160(buf))
		case OPSHA1:
			stack.push(crypto.Sha1(buf))
		case OPSHA256:
			stack.push(crypto.Sha256(buf))
		case OPHASH160:
			stack.push(crypto.Hash160(buf))
		case OPHASH256:
			stack.push(crypto.DoubleHashB(buf))
		}

	case OPCODESEPARATOR:
		// script code starts after the separator; pc points to the next byte
		st.scriptPubKeyStart = pc

	case OPCHECKSIG, OPCHECKSIGVERIFY:
		if stack.size() < 2 {
			return ErrInvalidStackOperation
		}
		signature := stack.topN(2)
		pubKey := stack.topN(1)

		if st.strictEncoding() {
			if err := checkSignatureEncoding(signature); err != nil {
				return err
			}
			if err := checkPubKeyEncoding(pubKey); err != nil {
				return err
			}
		}

		// script consists of: scriptSig + OPCODESEPARATOR + scriptPubKey
		scriptPubKey := st.script[st.scriptPubKeyStart:]

		isVerified := st.verifySig(signature, pubKey, scriptPubKey)

		stack.pop()
		stack.pop()
		st.pushBool(isVerified)
		if opCode == OPCHECKSIGVERIFY {
			if isVerified {
				stack.pop()
			} else {
				return ErrScriptSignatureVerifyFail
			}
		}

	case OPCHECKMULTISIG, OPCHECKMULTISIGVERIFY:
		return st.execCheckMultiSig(opCode)

	default:
		return ErrBadOpcode
	}
	return nil
}

// execCheckMultiSig verifies required signatures against an ordered public
// key list, greedily matching left to right.
// Format: e.g.,
// <Signature B> <Signature C> 2 <Public Key A> <Public Key B> <Public Key C> 3 CHECKMULTISIG
func (st *execState) execCheckMultiSig(opCode OpCode) error {
	stack := st.stack
	i := 1
	if stack.size() < i {
		return ErrInvalidStackOperation
	}

	// public keys
	pubKeyNum, err := makeScriptNum(stack.topN(i), maxScriptNumLen, st.minimalData())
	if err != nil {
		return err
	}
	pubKeyCount := int(pubKeyNum)
	if pubKeyCount < 0 {
		return ErrCountNegative
	}
	// every key examined counts toward the operation cap
	st.opCount += pubKeyCount
	if st.opCount > maxOpsPerScript {
		return ErrOpCountExceeded
	}
	i++
	pubKeyIdx := i
	i += pubKeyCount
	if stack.size() < i {
		return ErrInvalidStackOperation
	}

	// signatures
	sigNum, err := makeScriptNum(stack.topN(i), maxScriptNumLen, st.minimalData())
	if err != nil {
		return err
	}
	sigCount := int(sigNum)
	if sigCount < 0 {
		return ErrCountNegative
	}
	if sigCount > pubKeyCount {
		return ErrScriptSignatureVerifyFail
	}
	i++
	sigIdx := i
	i += sigCount
	// Note: i points right beyond signatures so use (i-1)
	if stack.size() < i-1 {
		return ErrInvalidStackOperation
	}

	// script consists of: scriptSig + OPCODESEPARATOR + scriptPubKey
	scriptPubKey := st.script[st.scriptPubKeyStart:]

	isVerified := true
	for isVerified && sigCount > 0 {
		signature := stack.topN(sigIdx)
		pubKey := stack.topN(pubKeyIdx)

		if st.strictEncoding() {
			if err := checkSignatureEncoding(signature); err != nil {
				return err
			}
			if err := checkPubKeyEncoding(pubKey); err != nil {
				return err
			}
		}

		if st.verifySig(signature, pubKey, scriptPubKey) {
			sigIdx++
			sigCount--
		}
		pubKeyIdx++
		pubKeyCount--

		// More signatures left than keys means verification failure
		if sigCount > pubKeyCount {
			isVerified = false
		}
	}

	for ; i > 1; i-- {
		stack.pop()
	}
	st.pushBool(isVerified)
	if opCode == OPCHECKMULTISIGVERIFY {
		if isVerified {
			stack.pop()
		} else {
			return ErrScriptSignatureVerifyFail
		}
	}
	return nil
}

// verifySig checks a signature over the transaction signature hash computed
// against scriptPubKey. Any parse or context failure verifies false; strict
// encoding violations are rejected by the callers before this point.
func (st *execState) verifySig(sigStr, publicKeyStr, scriptPubKey []byte) bool {
	if st.ctx == nil {
		logger.Debugf("No transaction context to compute signature hash")
		return false
	}
	sig, err := crypto.SigFromBytes(sigStr)
	if err != nil {
		logger.Debugf("Deserialize signature failed")
		return false
	}
	publicKey, err := crypto.PublicKeyFromBytes(publicKeyStr)
	if err != nil {
		logger.Debugf("Deserialize public key failed")
		return false
	}

	sigHash, err := st.ctx.SigHash(scriptPubKey)
	if err != nil {
		logger.Debugf("Calculate signature hash failed")
		return false
	}

	return sig.VerifySignature(publicKey, sigHash[:])
}

// checkSignatureEncoding fails unless the signature is structurally valid
// DER. An empty signature is tolerated: it verifies false rather than
// poisoning the script, so unsatisfied multisig slots stay expressible.
func checkSignatureEncoding(sig Operand) error {
	if len(sig) == 0 {
		return nil
	}
	// 0x30 <total len> 0x02 <len R> <R> 0x02 <len S> <S>
	if len(sig) < 8 || len(sig) > 72 {
		return ErrInvalidSignatureEnc
	}
	if sig[0] != 0x30 || int(sig[1]) != len(sig)-2 {
		return ErrInvalidSignatureEnc
	}
	if sig[2] != 0x02 {
		return ErrInvalidSignatureEnc
	}
	rLen := int(sig[3])
	if rLen == 0 || rLen+6 > len(sig) {
		return ErrInvalidSignatureEnc
	}
	if sig[4]&0x80 != 0 {
		return ErrInvalidSignatureEnc
	}
	if sig[4+rLen] != 0x02 {
		return ErrInvalidSignatureEnc
	}
	sLen := int(sig[5+rLen])
	if sLen == 0 || rLen+sLen+6 != len(sig) {
		return ErrInvalidSignatureEnc
	}
	if sig[6+rLen]&0x80 != 0 {
		return ErrInvalidSignatureEnc
	}
	return nil
}

// checkPubKeyEncoding fails unless the public key uses a supported serialized
// form: 33 bytes compressed or 65 bytes uncompressed.
func checkPubKeyEncoding(pubKey Operand) error {
	switch {
	case len(pubKey) == 33 && (pubKey[0] == 0x02 || pubKey[0] == 0x03):
		return nil
	case len(pubKey) == 65 && pubKey[0] == 0x04:
		return nil
	}
	return ErrInvalidSignatureEnc
}
