package attack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kargakis/ecbreak/pkg/oracle"
	"github.com/kargakis/ecbreak/pkg/parameters"
	"github.com/kargakis/ecbreak/pkg/utils"
)

const (
	lowercase = "etaoinshrdlcumwfgypbvkjxqz"
	uppercase = "ETAOINSHRDLCUMWFGYPBVKJXQZ"
	digits    = "0123456789"
	marks     = "\n.,!?-'\"/"
)

// EnglishFrequency returns every byte value exactly once, ordered so
// that English text is recovered with few queries.
func EnglishFrequency() []byte {
	alphabet := make([]byte, 0, 256)
	var seen [256]bool
	add := func(b byte) {
		if !seen[b] {
			seen[b] = true
			alphabet = append(alphabet, b)
		}
	}
	for _, s := range []string{" ", lowercase, digits, marks, uppercase} {
		for i := 0; i < len(s); i++ {
			add(s[i])
		}
	}
	for b := 0; b < 256; b++ {
		add(byte(b))
	}
	return alphabet
}

// RecoverSuffix decrypts, one byte at a time, whatever o appends after
// the input. o must encrypt in ECB mode and prefixLen must be the length
// of its hidden prefix.
//
// Recovery stops at the first position where no candidate matches. With
// a PKCS#7 padded oracle that happens right after the first padding
// byte, so the result ends with a single 0x01.
func RecoverSuffix(o oracle.Oracle, blockSize, prefixLen int, alphabet []byte) []byte {
	return recoverSuffix(o, blockSize, prefixLen, alphabet, parameters.Filler, io.Discard)
}

func recoverSuffix(o oracle.Oracle, bs, prefixLen int, alphabet []byte, filler byte, progress io.Writer) []byte {
	// constPad aligns the input to the first block after the prefix.
	constPad := bs - prefixLen%bs
	start := prefixLen/bs + 1
	fill := func(n int) []byte { return bytes.Repeat([]byte{filler}, n) }

	var known []byte
	for block := start; ; block++ {
		for offset := 1; offset <= bs; offset++ {
			actual := utils.Block(o.Query(fill(bs-offset+constPad)), block, bs)
			if actual == nil {
				return known
			}

			window := utils.Concat(fill(bs), known)
			guess := utils.Concat(fill(constPad), window[len(known)+1:len(known)+bs], []byte{0})

			found := false
			for _, c := range alphabet {
				guess[len(guess)-1] = c
				if bytes.Equal(utils.Block(o.Query(guess), start, bs), actual) {
					known = append(known, c)
					found = true
					break
				}
			}
			if !found {
				return known
			}
		}
		fmt.Fprintf(progress, "Recovered block %d: %q\n", block-start, known[len(known)-bs:])
	}
}
