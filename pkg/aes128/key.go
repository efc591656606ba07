package aes128

import "github.com/kargakis/ecbreak/pkg/parameters"

type word [4]byte

// core rotates w left by one byte, substitutes every byte through
// the S-box and folds the round constant into the first byte.
func core(w word, round int) word {
	w = word{w[1], w[2], w[3], w[0]}
	for i := range w {
		w[i] = sbox0[w[i]]
	}
	w[0] ^= rcon[round]
	return w
}

// ExpandKey runs the AES-128 key schedule over a 16-byte key and returns
// the first n bytes of the expansion. The first 16 bytes are the key itself.
// n is normally parameters.ExpandedKeySize; the schedule only defines round
// constants up to that length, so larger values panic.
func ExpandKey(key []byte, n int) []byte {
	if len(key) != KeySize {
		panic("aes128: invalid key size")
	}
	if n < 0 {
		panic("aes128: negative expansion length")
	}
	if n > parameters.ExpandedKeySize {
		panic("aes128: expansion longer than the key schedule")
	}
	out := make([]byte, KeySize, parameters.ExpandedKeySize)
	copy(out, key)

	for round := 1; len(out) < n; round++ {
		var w word
		copy(w[:], out[len(out)-4:])
		w = core(w, round)
		for i := 0; i < 4; i++ {
			back := out[len(out)-KeySize:]
			for j := range w {
				w[j] ^= back[j]
			}
			out = append(out, w[:]...)
		}
	}
	return out[:n]
}

// roundKeys splits a full key schedule into per-round states.
func roundKeys(key []byte) [parameters.Rounds + 1]state {
	var xk [parameters.Rounds + 1]state
	expanded := ExpandKey(key, parameters.ExpandedKeySize)
	for i := range xk {
		xk[i] = loadState(expanded[i*BlockSize : (i+1)*BlockSize])
	}
	return xk
}
