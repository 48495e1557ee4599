package precise

import (
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// It exposes only the operations the conversion needs, so the
// arbitrary-precision provider can be swapped without touching the rest
// of the package.
type bint big.Int

// bpow5 is a cache of the powers of 5 used to clear binary fractions,
// where bpow5[bias] = 5^bias.
var bpow5 = map[int]*bint{
	float32info.bias: newBintFromPow5(float32info.bias),
	float64info.bias: newBintFromPow5(float64info.bias),
}

// newBintFromPow5 creates a *big.Int equal to 5^power.
func newBintFromPow5(power int) *bint {
	z := (*bint)(new(big.Int))
	z.pow5(power)
	return z
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

// appendDigits appends the decimal digits of z to dst.
// If z is negative, the result is unpredictable.
func (z *bint) appendDigits(dst []byte) []byte {
	return (*big.Int)(z).Append(dst, 10)
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setUint64(x uint64) {
	(*big.Int)(z).SetUint64(x)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x, y *bint) {
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// pow5 calculates z = 5^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow5(power int) {
	x := getBint()
	defer putBint(x)
	x.setUint64(5)
	y := getBint()
	defer putBint(y)
	y.setUint64(uint64(power))
	z.exp(x, y)
}

// dblN (Double N times) calculates z = x * 2^shift.
func (z *bint) dblN(x *bint, shift uint) {
	(*big.Int)(z).Lsh((*big.Int)(x), shift)
}

// scale5 calculates z = x * 5^power.
// Powers equal to one of the float biases are taken from the cache.
func (z *bint) scale5(x *bint, power int) {
	y, ok := bpow5[power]
	if !ok {
		y = getBint()
		defer putBint(y)
		y.pow5(power)
	}
	z.mul(x, y)
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
