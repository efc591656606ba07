package parameters

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	// Rounds is the number of AES-128 rounds after the initial key addition.
	Rounds = 10

	// ExpandedKeySize is the length of the AES-128 key schedule:
	// one 16-byte round key for each of rounds 0 through 10.
	ExpandedKeySize = BlockSize * (Rounds + 1)

	// MaxProbes bounds block size discovery. An oracle whose output
	// does not grow within this many input lengths is not a block mode.
	MaxProbes = 256

	// Filler is the byte attacks feed to oracles when the content of
	// the input does not matter.
	Filler = 'A'
)

// BlockAlign returns the number of bytes needed to bring n up to the next
// multiple of bs. It returns zero when n is already aligned.
func BlockAlign(n, bs int) int {
	return (bs - n%bs) % bs
}
