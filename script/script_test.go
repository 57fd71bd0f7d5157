// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"testing"

	"github.com/facebookgo/ensure"
	"github.com/okayplanet/bitcoin-s-core/crypto"
)

func TestScriptBuilder(t *testing.T) {
	s := NewScript().AddOpCode(OPDUP).AddOperand([]byte{0x01, 0x02}).AddNumber(1000)
	ensure.DeepEqual(t, []byte(*s), []byte{
		byte(OPDUP),
		0x02, 0x01, 0x02,
		0x02, 0xe8, 0x03,
	})

	// zero encodes as an empty push
	s = NewScript().AddNumber(0)
	ensure.DeepEqual(t, []byte(*s), []byte{0x00})
}

func TestAddOperandPushData(t *testing.T) {
	// OP_PUSHDATA1: length needs its own byte
	operand := bytes.Repeat([]byte{0xab}, 80)
	s := NewScript().AddOperand(operand)
	ensure.DeepEqual(t, (*s)[0], byte(OPPUSHDATA1))
	ensure.DeepEqual(t, (*s)[1], byte(80))
	ensure.DeepEqual(t, []byte((*s)[2:]), operand)

	// OP_PUSHDATA2: length needs two bytes, little endian
	operand = bytes.Repeat([]byte{0xcd}, 300)
	s = NewScript().AddOperand(operand)
	ensure.DeepEqual(t, (*s)[0], byte(OPPUSHDATA2))
	ensure.DeepEqual(t, []byte((*s)[1:3]), []byte{0x2c, 0x01})
	ensure.DeepEqual(t, []byte((*s)[3:]), operand)

	// both decode back to the same operand
	opCode, decoded, _, err := s.parseNextOp(0)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, opCode, OPPUSHDATA2)
	ensure.DeepEqual(t, []byte(decoded), operand)
}

func TestParseNextOpErrors(t *testing.T) {
	s := NewScript().AddOpCode(OPDUP)
	_, _, _, err := s.parseNextOp(1)
	ensure.DeepEqual(t, err, ErrScriptBound)

	// push claims more bytes than the script holds
	truncated := NewScriptFromBytes([]byte{0x05, 0x01, 0x02})
	_, _, _, err = truncated.parseNextOp(0)
	ensure.DeepEqual(t, err, ErrScriptBound)

	truncated = NewScriptFromBytes([]byte{byte(OPPUSHDATA1)})
	_, _, _, err = truncated.parseNextOp(0)
	ensure.DeepEqual(t, err, ErrNoEnoughDataOPPUSHDATA1)

	truncated = NewScriptFromBytes([]byte{byte(OPPUSHDATA2), 0x01})
	_, _, _, err = truncated.parseNextOp(0)
	ensure.DeepEqual(t, err, ErrNoEnoughDataOPPUSHDATA2)

	truncated = NewScriptFromBytes([]byte{byte(OPPUSHDATA4), 0x01, 0x00, 0x00})
	_, _, _, err = truncated.parseNextOp(0)
	ensure.DeepEqual(t, err, ErrNoEnoughDataOPPUSHDATA4)
}

func TestDisasm(t *testing.T) {
	s := NewScript().AddOpCode(OPDUP).AddOpCode(OPHASH160).AddOperand([]byte{0x0a, 0x0b}).
		AddOpCode(OPEQUALVERIFY).AddOpCode(OPCHECKSIG)
	ensure.DeepEqual(t, s.Disasm(), "OP_DUP OP_HASH160 0a0b OP_EQUALVERIFY OP_CHECKSIG")

	// disassembly of an undecodable script keeps the prefix and reports the error
	s = NewScriptFromBytes([]byte{byte(OPDUP), 0x05, 0x01})
	ensure.DeepEqual(t, s.Disasm(), "OP_DUP [Error: "+ErrScriptBound.Error()+"]")
}

func TestStandardScriptRecognizers(t *testing.T) {
	pubKeyHash := crypto.Hash160([]byte("a public key"))

	p2pkh := PayToPubKeyHashScript(pubKeyHash)
	ensure.True(t, p2pkh.IsPayToPubKeyHash())
	ensure.False(t, p2pkh.IsPayToScriptHash())
	ensure.False(t, p2pkh.IsPayToPubKeyHashCLTVScript())

	extracted, err := p2pkh.PubKeyHash()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, extracted, pubKeyHash)

	cltv := PayToPubKeyHashCLTVScript(pubKeyHash, 600000)
	ensure.True(t, cltv.IsPayToPubKeyHashCLTVScript())
	ensure.False(t, cltv.IsPayToPubKeyHash())
	extracted, err = cltv.PubKeyHash()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, extracted, pubKeyHash)

	scriptHash := crypto.Hash160(*p2pkh)
	p2sh := PayToScriptHashScript(scriptHash)
	ensure.True(t, p2sh.IsPayToScriptHash())
	ensure.False(t, p2sh.IsPayToPubKeyHash())
	extracted, err = p2sh.PubKeyHash()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, extracted, scriptHash)

	_, err = NewScript().AddOpCode(OPRETURN).PubKeyHash()
	ensure.DeepEqual(t, err, ErrAddressNotApplicable)
}

func TestScriptAddress(t *testing.T) {
	pubKeyHash := crypto.Hash160([]byte("another public key"))
	s := PayToPubKeyHashScript(pubKeyHash)

	addr, err := s.Address()
	ensure.Nil(t, err)
	decoded, err := crypto.Base58CheckDecode(addr)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, decoded, pubKeyHash)

	_, err = NewScript().AddOpCode(OPRETURN).Address()
	ensure.DeepEqual(t, err, ErrAddressNotApplicable)
}

func TestMultiSigScript(t *testing.T) {
	var pubKeys [][]byte
	for i := 0; i < 3; i++ {
		_, pubKey, err := crypto.NewKeyPair()
		ensure.Nil(t, err)
		pubKeys = append(pubKeys, pubKey.Serialize())
	}

	s := MultiSigScript(2, pubKeys...)

	opCode, operand, pc, err := s.parseNextOp(0)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, opCode, OpCode(0x01))
	ensure.DeepEqual(t, operand, Operand{0x02})
	for i := 0; i < 3; i++ {
		_, operand, pc, err = s.parseNextOp(pc)
		ensure.Nil(t, err)
		ensure.DeepEqual(t, []byte(operand), pubKeys[i])
	}
	_, operand, pc, err = s.parseNextOp(pc)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, operand, Operand{0x03})
	opCode, _, pc, err = s.parseNextOp(pc)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, opCode, OPCHECKMULTISIG)
	ensure.DeepEqual(t, pc, len(*s))

	ensure.DeepEqual(t, s.getSigOpCount(), 1)
}

func TestGetSigOpCount(t *testing.T) {
	s := NewScript().AddOpCode(OPCHECKSIG).AddOpCode(OPCHECKSIGVERIFY).
		AddOpCode(OPCHECKMULTISIG).AddOpCode(OPCHECKMULTISIGVERIFY).AddOpCode(OPDUP)
	ensure.DeepEqual(t, s.getSigOpCount(), 4)

	ensure.DeepEqual(t, NewScript().getSigOpCount(), 0)
}

func TestGetNthOp(t *testing.T) {
	s := NewScript().AddOpCode(OPDUP).AddOperand([]byte{0xaa, 0xbb}).AddOpCode(OPEQUAL)

	opCode, _, _, err := s.getNthOp(0, 0)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, opCode, OPDUP)

	_, operand, _, err := s.getNthOp(0, 1)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, operand, Operand{0xaa, 0xbb})

	opCode, _, _, err = s.getNthOp(0, 2)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, opCode, OPEQUAL)

	_, _, _, err = s.getNthOp(0, 3)
	ensure.DeepEqual(t, err, ErrScriptBound)
}
