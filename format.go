package precise

// appendExact appends the decimal representation of num / 10^scale to dst.
// The result has at least one digit on each side of the decimal point and
// no trailing zeros in the fractional part beyond the first one.
// If scale is less than 1, the result is unpredictable.
func appendExact(dst []byte, neg bool, num *bint, scale int) []byte {
	// Sign
	if neg {
		dst = append(dst, '-')
	}

	// Digits
	start := len(dst)
	dst = num.appendDigits(dst)
	digs := len(dst) - start

	// Leading zeros
	if pad := scale + 1 - digs; pad > 0 {
		dst = append(dst, make([]byte, pad)...)
		copy(dst[start+pad:], dst[start:start+digs])
		for i := start; i < start+pad; i++ {
			dst[i] = '0'
		}
	}

	// Decimal point
	point := len(dst) - scale
	dst = append(dst, 0)
	copy(dst[point+1:], dst[point:len(dst)-1])
	dst[point] = '.'

	// Trailing zeros
	end := len(dst)
	for end > point+2 && dst[end-1] == '0' {
		end--
	}
	return dst[:end]
}
