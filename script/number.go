// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// Script numbers are sign-magnitude little-endian byte sequences of minimal
// length. Zero encodes to the empty sequence; the high bit of the last byte
// carries the sign.
const (
	// maxScriptNumLen is the maximum encoded length of arithmetic inputs.
	maxScriptNumLen = 4

	// cltvScriptNumLen is the maximum encoded length of locktime and
	// sequence operands. Locktimes are unsigned 32-bit values, so 4 signed
	// bytes cannot carry them all.
	cltvScriptNumLen = 5

	// maxScriptNumValue/minScriptNumValue bound the values arithmetic
	// results may take. Results outside the 4-byte width are overflow.
	maxScriptNumValue = 1<<31 - 1
	minScriptNumValue = -(1<<31 - 1)
)

// scriptNum is a decoded script number. Intermediate arithmetic is done on
// the full int64 width; the 4-byte bound is enforced on inputs when decoding
// and on outputs before re-encoding.
type scriptNum int64

// makeScriptNum decodes operand bytes into a script number. It fails if the
// operand is longer than numLen bytes, or, when requireMinimal is set, if the
// encoding is not the shortest possible one.
func makeScriptNum(operand Operand, numLen int, requireMinimal bool) (scriptNum, error) {
	if len(operand) > numLen {
		return 0, ErrInvalidScriptNumber
	}
	if requireMinimal {
		if err := checkMinimalDataEncoding(operand); err != nil {
			return 0, err
		}
	}
	if len(operand) == 0 {
		return 0, nil
	}

	var result int64
	for i, b := range operand {
		result |= int64(b) << uint8(8*i)
	}

	// The most significant byte carries the sign bit.
	if operand[len(operand)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint8(8*(len(operand)-1)))
		return scriptNum(-result), nil
	}
	return scriptNum(result), nil
}

// checkMinimalDataEncoding fails unless the operand is the canonical minimal
// encoding of its numeric value.
func checkMinimalDataEncoding(operand Operand) error {
	if len(operand) == 0 {
		return nil
	}
	// The most significant byte must not be zero padding, unless it only
	// holds the sign bit for a value whose magnitude needs the full
	// previous byte.
	if operand[len(operand)-1]&0x7f == 0 {
		if len(operand) == 1 || operand[len(operand)-2]&0x80 == 0 {
			return ErrInvalidScriptNumber
		}
	}
	return nil
}

// Bytes returns the canonical minimal encoding of the number. Zero encodes
// to the empty sequence.
func (n scriptNum) Bytes() Operand {
	if n == 0 {
		return Operand{}
	}

	isNegative := n < 0
	if isNegative {
		n = -n
	}

	result := make(Operand, 0, 9)
	for n > 0 {
		result = append(result, byte(n&0xff))
		n >>= 8
	}

	// When the high bit of the most significant byte is already set, an
	// extra byte is required to hold the sign; otherwise the sign goes
	// into the high bit directly.
	if result[len(result)-1]&0x80 != 0 {
		extra := byte(0x00)
		if isNegative {
			extra = 0x80
		}
		result = append(result, extra)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// checkOverflow fails when an arithmetic result no longer fits the fixed
// 4-byte output width. Overflow is a hard failure, never wraparound.
func (n scriptNum) checkOverflow() error {
	if n > maxScriptNumValue || n < minScriptNumValue {
		return ErrScriptNumOverflow
	}
	return nil
}
