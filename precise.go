package precise

import (
	"fmt"
	"math"
	"unsafe"
)

// Float is the set of binary floating-point types accepted by [String].
type Float interface {
	~float32 | ~float64
}

// String returns the exact decimal representation of f.
// It dispatches to [Float32] or [Float64] depending on the width of F.
func String[F Float](f F) string {
	if unsafe.Sizeof(f) == 4 {
		return Float32(float32(f))
	}
	return Float64(float64(f))
}

// Float64 returns the exact decimal representation of f, the unique
// rational number equal to the stored value.
// The returned string does not use scientific notation and is formatted
// according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits '.' digits
//
// Trailing zeros are removed from the fractional part, except that at least
// one fractional digit is always present.
// NaN is formatted as "NaN" regardless of its sign and payload,
// and infinities as "inf" and "-inf".
// Negative zero is formatted as "-0.0".
func Float64(f float64) string {
	return string(Append64(nil, f))
}

// Float32 is like [Float64] but for single-precision values.
// For example, Float32(0.1) returns "0.100000001490116119384765625".
func Float32(f float32) string {
	return string(Append32(nil, f))
}

// FromBits64 is like [Float64] but takes the raw IEEE-754 bit pattern.
func FromBits64(b uint64) string {
	return string(appendBits(nil, b, float64info))
}

// FromBits32 is like [Float32] but takes the raw IEEE-754 bit pattern.
func FromBits32(b uint32) string {
	return string(appendBits(nil, uint64(b), float32info))
}

// Append64 appends the exact decimal representation of f, as generated
// by [Float64], to dst and returns the extended buffer.
func Append64(dst []byte, f float64) []byte {
	return appendBits(dst, math.Float64bits(f), float64info)
}

// Append32 appends the exact decimal representation of f, as generated
// by [Float32], to dst and returns the extended buffer.
func Append32(dst []byte, f float32) []byte {
	return appendBits(dst, uint64(math.Float32bits(f)), float32info)
}

func appendBits(dst []byte, bits uint64, fi floatInfo) []byte {
	c := decompose(bits, fi)

	// Special values
	switch {
	case c.isNaN(fi):
		return append(dst, "NaN"...)
	case c.isInf(fi) && c.Neg:
		return append(dst, "-inf"...)
	case c.isInf(fi):
		return append(dst, "inf"...)
	}

	num := getBint()
	defer putBint(num)
	numerator(num, c, fi)
	return appendExact(dst, c.Neg, num, fi.bias)
}

// numerator calculates z = |value| * 10^bias, which is always an integer.
//
// A normal value equals (2^mantbits + mant) * 2^(exp - bias), so
// multiplying by 10^bias = 2^bias * 5^bias leaves
// (2^mantbits + mant) * 2^exp * 5^bias.
// A subnormal or zero value has no implicit leading bit and the same
// binary scale as exp = 1, so the significand is mant alone.
func numerator(z *bint, c Components, fi floatInfo) {
	exp := uint(c.Exp)
	sig := c.Mant
	if exp == 0 {
		exp = 1
	} else {
		sig |= 1 << fi.mantbits
	}
	if uint64(exp) >= fi.expmax() {
		panic(fmt.Sprintf("numerator(%v) failed: exponent is not finite", c))
	}
	z.setUint64(sig)
	z.dblN(z, exp)
	z.scale5(z, fi.bias)
}
