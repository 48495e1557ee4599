package precise

import (
	"fmt"
	"math"
)

// floatInfo describes the binary layout of one IEEE-754 width.
// bias is the IEEE exponent bias plus mantbits, so that a normal value
// equals significand * 2^(exp - bias) with an integer significand.
// It is also the number of fractional decimal digits the conversion emits
// before trimming.
type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int
}

var (
	float32info = floatInfo{23, 8, 150}
	float64info = floatInfo{52, 11, 1075}
)

func (fi floatInfo) expmax() uint64 {
	return 1<<fi.expbits - 1
}

func (fi floatInfo) mantmask() uint64 {
	return 1<<fi.mantbits - 1
}

// Components holds the three fields of a binary floating-point value
// exactly as they are stored.
//
//   - Neg: the sign bit.
//   - Exp: the biased exponent field, without the bias removed.
//   - Mant: the stored fraction field, without the implicit leading bit.
//
// For example, 1.0 as float64 has Exp 1023 and Mant 0.
type Components struct {
	Neg  bool
	Exp  uint16
	Mant uint64
}

// Decompose64 splits f into its sign, biased exponent and fraction fields.
func Decompose64(f float64) Components {
	return decompose(math.Float64bits(f), float64info)
}

// Decompose32 splits f into its sign, biased exponent and fraction fields.
func Decompose32(f float32) Components {
	return decompose(uint64(math.Float32bits(f)), float32info)
}

func decompose(bits uint64, fi floatInfo) Components {
	return Components{
		Neg:  bits>>(fi.expbits+fi.mantbits)&1 != 0,
		Exp:  uint16(bits >> fi.mantbits & fi.expmax()),
		Mant: bits & fi.mantmask(),
	}
}

func (c Components) compose(fi floatInfo) uint64 {
	var bits uint64
	if c.Neg {
		bits = 1 << (fi.expbits + fi.mantbits)
	}
	bits |= uint64(c.Exp) & fi.expmax() << fi.mantbits
	bits |= c.Mant & fi.mantmask()
	return bits
}

// Bits64 reassembles the float64 bit pattern of c.
// Fields wider than the float64 layout are truncated.
func (c Components) Bits64() uint64 {
	return c.compose(float64info)
}

// Bits32 reassembles the float32 bit pattern of c.
// Fields wider than the float32 layout are truncated.
func (c Components) Bits32() uint32 {
	return uint32(c.compose(float32info))
}

// isNaN reports whether c encodes a NaN in the layout described by fi.
func (c Components) isNaN(fi floatInfo) bool {
	return uint64(c.Exp) == fi.expmax() && c.Mant != 0
}

func (c Components) isInf(fi floatInfo) bool {
	return uint64(c.Exp) == fi.expmax() && c.Mant == 0
}

// String returns the fields in the form "sign=1 exp=1023 frac=0x8000000000000".
func (c Components) String() string {
	sign := 0
	if c.Neg {
		sign = 1
	}
	return fmt.Sprintf("sign=%v exp=%v frac=%#x", sign, c.Exp, c.Mant)
}
