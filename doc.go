/*
Package precise formats binary floating-point numbers as the exact decimal
value they store.
It is intended for debugging, teaching and verification tools that need
to see precisely what a bit pattern encodes, including the error
introduced when a decimal literal was rounded to binary.
For user-facing output use [strconv.FormatFloat] instead.

# Representation

An IEEE-754 value is stored as three fields:

  - Sign: a single bit indicating whether the value is negative.
  - Exponent: an unsigned biased exponent, 8 bits for float32 and
    11 bits for float64.
  - Fraction: the significand without its implicit leading bit,
    23 bits for float32 and 52 bits for float64.

See [Components], [Decompose32] and [Decompose64].

Every finite value is a dyadic rational, significand * 2^(exponent - bias),
where bias is 150 for float32 and 1075 for float64.
Multiplying such a value by 10^bias always yields an integer:

	significand * 2^(exponent - bias) * 10^bias = significand * 2^exponent * 5^bias

The package computes that integer with [big.Int] arithmetic and places
the decimal point bias digits from its right end.
No division and no rounding take place, so the result is exact.
For example, the float64 nearest to 0.1 is

	0.1000000000000000055511151231257827021181583404541015625

# Conversions

  - float64: [Float64], [Append64], [FromBits64].
  - float32: [Float32], [Append32], [FromBits32].
  - either width: [String].

# Special values

Special values are formatted without looking at the fraction field:

	| Value             | Result  |
	| ----------------- | ------- |
	| NaN (any payload) | NaN     |
	| +Inf              | inf     |
	| -Inf              | -inf    |
	| +0                | 0.0     |
	| -0                | -0.0    |

Subnormal numbers are formatted exactly like any other finite value.
The smallest positive float64 has 1074 digits after the decimal point.

# Errors

All functions are total, panic-free and pure.
They are safe for concurrent use by multiple goroutines.

[big.Int]: https://pkg.go.dev/math/big#Int
[strconv.FormatFloat]: https://pkg.go.dev/strconv#FormatFloat
*/
package precise
