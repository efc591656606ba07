package attack

import (
	"bytes"

	"github.com/kargakis/ecbreak/pkg/oracle"
	"github.com/kargakis/ecbreak/pkg/parameters"
	"github.com/kargakis/ecbreak/pkg/pkcs7"
	"github.com/kargakis/ecbreak/pkg/utils"
)

// ForgeTrailingValue builds a ciphertext that decrypts to the record o
// would produce, with the last oldValueLen bytes replaced by newValue.
//
// The first query aligns a padded copy of newValue on a block boundary
// and keeps its blocks. The second picks an input length that ends a
// block right where the old value starts. Splicing the two works because
// ECB decrypts every block on its own.
func ForgeTrailingValue(o oracle.Oracle, g Geometry, prefixLen, oldValueLen int, newValue []byte) []byte {
	return forgeTrailingValue(o, g, prefixLen, oldValueLen, newValue, parameters.Filler)
}

func forgeTrailingValue(o oracle.Oracle, g Geometry, prefixLen, oldValueLen int, newValue []byte, filler byte) []byte {
	bs := g.BlockSize
	suffixLen := g.FixedLength - prefixLen
	fill := func(n int) []byte { return bytes.Repeat([]byte{filler}, n) }

	value := pkcs7.PadBlock(newValue, bs)
	align := parameters.BlockAlign(prefixLen, bs)
	out := o.Query(utils.Concat(fill(align), value))
	from := prefixLen + align
	forged := out[from : from+len(value)]

	// Everything up to the old value, block aligned.
	keep := prefixLen + suffixLen - oldValueLen
	n := parameters.BlockAlign(keep, bs)
	head := o.Query(fill(n))[:keep+n]

	return utils.Concat(head, forged)
}
