package attack

import (
	"bytes"

	"github.com/kargakis/ecbreak/pkg/oracle"
	"github.com/kargakis/ecbreak/pkg/parameters"
	"github.com/kargakis/ecbreak/pkg/utils"
)

// DetectPrefixLength infers how many hidden bytes o places before the
// input. o must encrypt in ECB mode.
//
// Three filler blocks guarantee two equal adjacent output blocks right
// after the prefix. Shrinking the filler until that pair disappears
// reveals how many filler bytes complete the last prefix block.
// A prefix ending in the filler byte, or a suffix starting with it, skews
// the result. Skews that yield a negative length are reported as failure.
func DetectPrefixLength(o oracle.Oracle, blockSize int) (int, bool) {
	return detectPrefixLength(o, blockSize, parameters.Filler)
}

func detectPrefixLength(o oracle.Oracle, blockSize int, filler byte) (int, bool) {
	input := bytes.Repeat([]byte{filler}, 3*blockSize)
	out := o.Query(input)
	ix, ok := firstPair(out, blockSize)
	if !ok {
		return 0, false
	}
	match := utils.Dup(utils.Block(out, ix, blockSize))

	for len(input) > 0 {
		input = input[:len(input)-1]
		out = o.Query(input)
		j, ok := firstPair(out, blockSize)
		if !ok || !bytes.Equal(utils.Block(out, j, blockSize), match) {
			break
		}
	}
	// The last input that still produced the pair.
	n := len(input) + 1
	prefixLen := ix*blockSize - n%blockSize
	if prefixLen < 0 {
		// The suffix starts with the filler and extended the pair.
		return 0, false
	}
	return prefixLen, true
}
