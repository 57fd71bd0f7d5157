// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestScriptNumBytes(t *testing.T) {
	tests := []struct {
		n       scriptNum
		encoded Operand
	}{
		{0, Operand{}},
		{1, Operand{0x01}},
		{-1, Operand{0x81}},
		{127, Operand{0x7f}},
		{-127, Operand{0xff}},
		{128, Operand{0x80, 0x00}},
		{-128, Operand{0x80, 0x80}},
		{256, Operand{0x00, 0x01}},
		{-256, Operand{0x00, 0x81}},
		{32767, Operand{0xff, 0x7f}},
		{32768, Operand{0x00, 0x80, 0x00}},
		{-32768, Operand{0x00, 0x80, 0x80}},
		{maxScriptNumValue, Operand{0xff, 0xff, 0xff, 0x7f}},
		{minScriptNumValue, Operand{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tc := range tests {
		ensure.DeepEqual(t, tc.n.Bytes(), tc.encoded)

		decoded, err := makeScriptNum(tc.encoded, maxScriptNumLen, true)
		ensure.Nil(t, err)
		ensure.DeepEqual(t, decoded, tc.n)
	}
}

func TestMakeScriptNumRejectsOversize(t *testing.T) {
	_, err := makeScriptNum(Operand{0x01, 0x02, 0x03, 0x04, 0x05}, maxScriptNumLen, true)
	ensure.DeepEqual(t, err, ErrInvalidScriptNumber)

	// the same operand fits the relaxed locktime width
	n, err := makeScriptNum(Operand{0x01, 0x02, 0x03, 0x04, 0x05}, cltvScriptNumLen, true)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, n, scriptNum(0x0504030201))
}

func TestMakeScriptNumRejectsNonMinimal(t *testing.T) {
	nonMinimal := []Operand{
		{0x00},             // zero must be empty
		{0x80},             // negative zero
		{0x01, 0x00},       // zero padding
		{0x7f, 0x00},       // 127 fits one byte
		{0x01, 0x00, 0x00}, // multiple padding bytes
	}
	for _, operand := range nonMinimal {
		_, err := makeScriptNum(operand, maxScriptNumLen, true)
		ensure.DeepEqual(t, err, ErrInvalidScriptNumber)

		// the same bytes decode fine without the minimal-data rule
		_, err = makeScriptNum(operand, maxScriptNumLen, false)
		ensure.Nil(t, err)
	}

	// sign-bit spill bytes are minimal
	_, err := makeScriptNum(Operand{0x80, 0x00}, maxScriptNumLen, true)
	ensure.Nil(t, err)
	_, err = makeScriptNum(Operand{0x80, 0x80}, maxScriptNumLen, true)
	ensure.Nil(t, err)
}

func TestScriptNumOverflow(t *testing.T) {
	ensure.Nil(t, scriptNum(maxScriptNumValue).checkOverflow())
	ensure.Nil(t, scriptNum(minScriptNumValue).checkOverflow())
	ensure.DeepEqual(t, scriptNum(maxScriptNumValue+1).checkOverflow(), ErrScriptNumOverflow)
	ensure.DeepEqual(t, scriptNum(minScriptNumValue-1).checkOverflow(), ErrScriptNumOverflow)
}
