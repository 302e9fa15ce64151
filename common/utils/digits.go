package utils

// DigitLength returns the number of base-10 digits needed to print v. Zero is
// one digit long.
func DigitLength(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
