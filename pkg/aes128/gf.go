package aes128

// Multiply returns the product of a and b as GF(2) polynomials modulo poly.
func Multiply(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= poly & 0xff
		}
		b >>= 1
	}
	return p
}
