package modes

import (
	"github.com/kargakis/ecbreak/pkg/aes128"
	"github.com/kargakis/ecbreak/pkg/utils"
)

// CountBlocks counts how many times every distinct 16-byte chunk of buf
// occurs. A trailing partial chunk is ignored.
func CountBlocks(buf []byte) map[string]int {
	seen := make(map[string]int)
	for _, chunk := range utils.Chunks(buf, aes128.BlockSize) {
		seen[string(chunk)]++
	}
	return seen
}

// MaxRepeats returns the highest occurrence count of any chunk in buf.
// Anything above one hints at ECB encryption.
func MaxRepeats(buf []byte) int {
	var max int
	for _, n := range CountBlocks(buf) {
		if n > max {
			max = n
		}
	}
	return max
}

// HasDuplicateBlocks reports whether any 16-byte chunk of buf recurs.
// This is evidence of ECB mode, not proof.
func HasDuplicateBlocks(buf []byte) bool {
	return MaxRepeats(buf) > 1
}

// MostLikelyECB returns the index of the candidate with the most repeated
// blocks, or -1 if none of them repeats a block.
func MostLikelyECB(candidates [][]byte) int {
	best, bestScore := -1, 1
	for i, c := range candidates {
		if score := MaxRepeats(c); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
