package attack

import (
	"bytes"

	"github.com/kargakis/ecbreak/pkg/oracle"
	"github.com/kargakis/ecbreak/pkg/parameters"
	"github.com/kargakis/ecbreak/pkg/utils"
)

// Geometry describes how an oracle lays out its output.
type Geometry struct {
	BlockSize int
	// FixedLength is the combined length of the hidden prefix and suffix.
	FixedLength int
}

// Measure grows the input one filler byte at a time until the output
// length jumps. The jump is the block size; the input length at the jump
// tells how many hidden bytes surround the input.
func Measure(o oracle.Oracle) (Geometry, bool) {
	return measure(o, parameters.Filler)
}

func measure(o oracle.Oracle, filler byte) (Geometry, bool) {
	base := len(o.Query([]byte{filler}))
	for i := 2; i <= parameters.MaxProbes; i++ {
		n := len(o.Query(bytes.Repeat([]byte{filler}, i)))
		if n > base {
			return Geometry{BlockSize: n - base, FixedLength: base - i}, true
		}
	}
	return Geometry{}, false
}

// DetectBlockSize returns the block size of the cipher behind o. It
// reports false when the output never grows, as with a stream cipher.
func DetectBlockSize(o oracle.Oracle) (int, bool) {
	g, ok := Measure(o)
	return g.BlockSize, ok
}

// IsECB sends two identical blocks and compares the first two output blocks.
func IsECB(o oracle.Oracle, blockSize int) bool {
	out := o.Query(bytes.Repeat([]byte{parameters.Filler}, 2*blockSize))
	if len(out) < 2*blockSize {
		return false
	}
	return bytes.Equal(out[:blockSize], out[blockSize:2*blockSize])
}

// DetectMode guesses the mode of o from a single query of three filler
// blocks. Two of them land on block boundaries whatever o adds in front,
// so ECB output repeats a block.
func DetectMode(o oracle.Oracle, blockSize int) oracle.Mode {
	return detectMode(o, blockSize, parameters.Filler)
}

func detectMode(o oracle.Oracle, blockSize int, filler byte) oracle.Mode {
	out := o.Query(bytes.Repeat([]byte{filler}, 3*blockSize))
	seen := make(map[string]bool)
	for _, b := range utils.Chunks(out, blockSize) {
		if seen[string(b)] {
			return oracle.ECB
		}
		seen[string(b)] = true
	}
	return oracle.CBC
}

// firstPair returns the index of the first block equal to its successor.
func firstPair(out []byte, blockSize int) (int, bool) {
	for i := 0; (i+2)*blockSize <= len(out); i++ {
		if bytes.Equal(utils.Block(out, i, blockSize), utils.Block(out, i+1, blockSize)) {
			return i, true
		}
	}
	return 0, false
}
