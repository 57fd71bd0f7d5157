// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/okayplanet/bitcoin-s-core/crypto"
	"github.com/okayplanet/bitcoin-s-core/log"
	"golang.org/x/crypto/ripemd160"
)

var logger = log.NewLogger("script") // logger

// constants
const (
	p2PKHScriptLen = 25
	p2SHScriptLen  = 23

	// LockTimeThreshold divides lock times interpreted as block heights
	// from ones interpreted as UTC seconds.
	LockTimeThreshold = 5e8 // Tue Nov 5 00:53:20 1985 UTC
)

// Script represents scripts
type Script []byte

// NewScript returns an empty script
func NewScript() *Script {
	emptyBytes := make([]byte, 0, p2PKHScriptLen)
	return (*Script)(&emptyBytes)
}

// NewScriptWithCap returns an empty script with the given capacity
func NewScriptWithCap(cap int) *Script {
	emptyBytes := make([]byte, 0, cap)
	return (*Script)(&emptyBytes)
}

// NewScriptFromBytes returns a script from byte slice
func NewScriptFromBytes(scriptBytes []byte) *Script {
	script := Script(scriptBytes)
	return &script
}

// AddOpCode adds an opcode to the script
func (s *Script) AddOpCode(opCode OpCode) *Script {
	*s = append(*s, byte(opCode))
	return s
}

// AddOperand adds an operand to the script
func (s *Script) AddOperand(operand []byte) *Script {
	dataLen := len(operand)

	if dataLen < int(OPPUSHDATA1) {
		*s = append(*s, byte(dataLen))
	} else if dataLen <= 0xff {
		*s = append(*s, byte(OPPUSHDATA1), byte(dataLen))
	} else if dataLen <= 0xffff {
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		*s = append(*s, byte(OPPUSHDATA2))
		*s = append(*s, buf...)
	} else {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		*s = append(*s, byte(OPPUSHDATA4))
		*s = append(*s, buf...)
	}

	// Append the actual operand
	*s = append(*s, operand...)
	return s
}

// AddNumber adds a script number in its canonical minimal encoding
func (s *Script) AddNumber(n int64) *Script {
	return s.AddOperand(scriptNum(n).Bytes())
}

// AddScript appends a script to the script
func (s *Script) AddScript(script *Script) *Script {
	*s = append(*s, (*script)...)
	return s
}

// PayToPubKeyHashScript creates a script to lock a transaction output to the specified address.
func PayToPubKeyHashScript(pubKeyHash []byte) *Script {
	return NewScript().AddOpCode(OPDUP).AddOpCode(OPHASH160).AddOperand(pubKeyHash).
		AddOpCode(OPEQUALVERIFY).AddOpCode(OPCHECKSIG)
}

// PayToPubKeyHashCLTVScript creates a script to lock a transaction output to the specified
// address till a specific time or block height.
func PayToPubKeyHashCLTVScript(pubKeyHash []byte, blockTimeOrHeight int64) *Script {
	return NewScript().AddNumber(blockTimeOrHeight).AddOpCode(OPCHECKLOCKTIMEVERIFY).
		AddOpCode(OPDROP).AddOpCode(OPDUP).AddOpCode(OPHASH160).AddOperand(pubKeyHash).
		AddOpCode(OPEQUALVERIFY).AddOpCode(OPCHECKSIG)
}

// PayToScriptHashScript creates a script to lock a transaction output to a script hash
func PayToScriptHashScript(scriptHash []byte) *Script {
	return NewScript().AddOpCode(OPHASH160).AddOperand(scriptHash).AddOpCode(OPEQUAL)
}

// SignatureScript creates a script to unlock a utxo.
func SignatureScript(sig *crypto.Signature, pubKey []byte) *Script {
	return NewScript().AddOperand(sig.Serialize()).AddOperand(pubKey)
}

// MultiSigScript creates a script locking an output to required signatures out of
// the given public keys.
func MultiSigScript(required int, pubKeys ...[]byte) *Script {
	s := NewScriptWithCap(3 + 34*len(pubKeys)).AddNumber(int64(required))
	for _, pubKey := range pubKeys {
		s.AddOperand(pubKey)
	}
	return s.AddNumber(int64(len(pubKeys))).AddOpCode(OPCHECKMULTISIG)
}

// Validate verifies a spend of scriptPubKey by scriptSig under ctx.
func Validate(scriptSig, scriptPubKey *Script, ctx TxContext) error {
	// concatenate unlocking & locking scripts
	catScript := NewScript().AddScript(scriptSig).AddOpCode(OPCODESEPARATOR).AddScript(scriptPubKey)
	if err := catScript.Evaluate(nil, ctx); err != nil {
		return err
	}

	if !scriptPubKey.IsPayToScriptHash() {
		return nil
	}

	// Handle p2sh
	// scriptSig: signature <serialized redeemScript>

	// First operand is signature
	_, sig, newPc, err := scriptSig.parseNextOp(0)
	if err != nil {
		return err
	}
	newScriptSig := NewScript().AddOperand(sig)

	// Second operand is serialized redeem script
	_, redeemScriptBytes, _, err := scriptSig.parseNextOp(newPc)
	if err != nil {
		return err
	}
	redeemScript := NewScriptFromBytes(redeemScriptBytes)

	// signature becomes the new scriptSig, redeemScript becomes the new scriptPubKey
	catScript = NewScript().AddScript(newScriptSig).AddOpCode(OPCODESEPARATOR).AddScript(redeemScript)
	return catScript.Evaluate(nil, ctx)
}

// Get the next opcode & operand. Operand only applies to data push opcodes. Also return incremented pc.
func (s *Script) parseNextOp(pc int) (OpCode, Operand, int /* pc */, error) {
	script := *s
	scriptLen := len(script)
	if pc >= scriptLen {
		return 0, nil, pc, ErrScriptBound
	}

	opCode := OpCode(script[pc])
	pc++

	if opCode > OPPUSHDATA4 {
		return opCode, nil, pc, nil
	}

	var operandSize int
	if opCode < OPPUSHDATA1 {
		// opcode itself encodes operand size
		operandSize = int(opCode)
	} else if opCode == OPPUSHDATA1 {
		if scriptLen-pc < 1 {
			return opCode, nil, pc, ErrNoEnoughDataOPPUSHDATA1
		}
		// 1 byte after opcode encodes operand size
		operandSize = int(script[pc])
		pc++
	} else if opCode == OPPUSHDATA2 {
		if scriptLen-pc < 2 {
			return opCode, nil, pc, ErrNoEnoughDataOPPUSHDATA2
		}
		// 2 bytes after opcode encodes operand size
		operandSize = int(binary.LittleEndian.Uint16(script[pc : pc+2]))
		pc += 2
	} else if opCode == OPPUSHDATA4 {
		if scriptLen-pc < 4 {
			return opCode, nil, pc, ErrNoEnoughDataOPPUSHDATA4
		}
		// 4 bytes after opcode encodes operand size
		operandSize = int(binary.LittleEndian.Uint32(script[pc : pc+4]))
		pc += 4
	}

	if scriptLen-pc < operandSize {
		return opCode, nil, pc, ErrScriptBound
	}
	// Read operand
	operand := Operand(script[pc : pc+operandSize])
	pc += operandSize
	return opCode, operand, pc, nil
}

// parses the entire script and returns operator/operand sequences.
// The returned result will contain the parsed script up to the failure point, with the last element being the error
func (s *Script) parse() []interface{} {
	var elements []interface{}

	for pc := 0; pc < len(*s); {
		opCode, operand, newPc, err := s.parseNextOp(pc)
		if err != nil {
			elements = append(elements, err)
			return elements
		}
		if operand != nil {
			elements = append(elements, operand)
		} else {
			elements = append(elements, opCode)
		}
		pc = newPc
	}

	return elements
}

// Disasm disassembles script in human readable format. If the script fails to parse, the returned string will
// contain the disassembled script up to the failure point, appended by the string '[Error: error info]'
func (s *Script) Disasm() string {
	var str []string

	elements := s.parse()
	for _, e := range elements {
		switch v := e.(type) {
		case Operand:
			str = append(str, hex.EncodeToString(v))
		case OpCode:
			str = append(str, opCodeToName(v))
		case error:
			str = append(str, "[Error: "+v.Error()+"]")
		default:
			return "Disasmbler encounters unexpected type"
		}
	}

	return strings.Join(str, " ")
}

// IsPayToPubKeyHash returns if the script is p2pkh
func (s *Script) IsPayToPubKeyHash() bool {
	if len(*s) != p2PKHScriptLen {
		return false
	}
	ss := *s
	return ss[0] == byte(OPDUP) && ss[1] == byte(OPHASH160) && ss[2] == ripemd160.Size &&
		ss[23] == byte(OPEQUALVERIFY) && ss[24] == byte(OPCHECKSIG)
}

// IsPayToPubKeyHashCLTVScript returns if the script is p2pkh locked with CLTV
func (s *Script) IsPayToPubKeyHashCLTVScript() bool {
	ss := *s
	l := len(ss)
	return l >= 28 && ss[l-1] == byte(OPCHECKSIG) && ss[l-2] == byte(OPEQUALVERIFY) &&
		ss[l-23] == ripemd160.Size && ss[l-24] == byte(OPHASH160) &&
		ss[l-25] == byte(OPDUP) && ss[l-26] == byte(OPDROP) &&
		ss[l-27] == byte(OPCHECKLOCKTIMEVERIFY)
}

// IsPayToScriptHash returns if the script is p2sh
func (s *Script) IsPayToScriptHash() bool {
	ss := *s
	if len(ss) != p2SHScriptLen {
		return false
	}
	return ss[0] == byte(OPHASH160) && ss[1] == ripemd160.Size && ss[22] == byte(OPEQUAL)
}

// getNthOp returns the n-th (start from 0) operand and operator, counting from pcStart of the script.
func (s *Script) getNthOp(pcStart, n int) (OpCode, Operand, int /* pc */, error) {
	opCode, operand, newPc, err := OpCode(0), Operand(nil), 0, error(nil)

	for pc, i := pcStart, 0; i <= n; i++ {
		opCode, operand, newPc, err = s.parseNextOp(pc)
		if err != nil {
			return 0, nil, 0, err
		}
		pc = newPc
	}
	return opCode, operand, newPc, err
}

// PubKeyHash returns the public key hash a standard locking script pays to.
func (s *Script) PubKeyHash() ([]byte, error) {
	switch {
	case s.IsPayToPubKeyHash():
		_, pubKeyHash, _, err := s.getNthOp(2, 0)
		return pubKeyHash, err
	case s.IsPayToPubKeyHashCLTVScript():
		l := len(*s)
		_, pubKeyHash, _, err := s.getNthOp(l-23, 0)
		return pubKeyHash, err
	case s.IsPayToScriptHash():
		_, scriptHash, _, err := s.getNthOp(1, 0)
		return scriptHash, err
	default:
		return nil, ErrAddressNotApplicable
	}
}

// Address returns the base58check encoding of the hash a standard locking
// script pays to.
func (s *Script) Address() (string, error) {
	pubKeyHash, err := s.PubKeyHash()
	if err != nil {
		return "", err
	}
	return crypto.Base58CheckEncode(pubKeyHash), nil
}

// getSigOpCount returns number of signature operations in a script
func (s *Script) getSigOpCount() int {
	numSigs := 0

	elements := s.parse()
	for _, e := range elements {
		switch v := e.(type) {
		case OpCode:
			if v == OPCHECKSIG || v == OPCHECKSIGVERIFY ||
				v == OPCHECKMULTISIG || v == OPCHECKMULTISIGVERIFY {
				numSigs++
			}
		default:
			// Not an opcode
		}
	}

	return numSigs
}
