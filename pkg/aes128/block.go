package aes128

import "github.com/kargakis/ecbreak/pkg/parameters"

// encryptBlock encrypts one block from src into dst using the
// expanded round keys xk. dst and src may overlap entirely.
func encryptBlock(xk *[parameters.Rounds + 1]state, dst, src []byte) {
	s := loadState(src)

	s.addRoundKey(&xk[0])
	for round := 1; round < parameters.Rounds; round++ {
		s.subBytes(&sbox0)
		s.shiftRows()
		s.mixColumns(&mixMatrix)
		s.addRoundKey(&xk[round])
	}
	s.subBytes(&sbox0)
	s.shiftRows()
	s.addRoundKey(&xk[parameters.Rounds])

	s.store(dst)
}

// decryptBlock undoes encryptBlock, walking the rounds backwards.
func decryptBlock(xk *[parameters.Rounds + 1]state, dst, src []byte) {
	s := loadState(src)

	s.addRoundKey(&xk[parameters.Rounds])
	s.invShiftRows()
	s.subBytes(&sbox1)
	for round := parameters.Rounds - 1; round > 0; round-- {
		s.addRoundKey(&xk[round])
		s.mixColumns(&invMixMatrix)
		s.invShiftRows()
		s.subBytes(&sbox1)
	}
	s.addRoundKey(&xk[0])

	s.store(dst)
}
