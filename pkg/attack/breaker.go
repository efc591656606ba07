package attack

import (
	"errors"
	"fmt"
	"io"

	"github.com/kargakis/ecbreak/pkg/oracle"
	"github.com/kargakis/ecbreak/pkg/parameters"
	"github.com/kargakis/ecbreak/pkg/pkcs7"
)

var (
	ErrNoBlockSize = errors.New("oracle output never grew, not a block cipher")
	ErrNotECB      = errors.New("oracle does not encrypt in ECB mode")
	ErrNoPrefix    = errors.New("cannot find attacker controlled blocks")
)

// Breaker runs the attacks in this package against a single oracle.
type Breaker struct {
	Oracle oracle.Oracle
	// Filler is the byte used to build queries. Defaults to 'A'.
	Filler byte
	// Alphabet is the order candidates are tried in during byte
	// recovery. Defaults to EnglishFrequency.
	Alphabet []byte
	// Progress receives a line per completed stage. Defaults to io.Discard.
	Progress io.Writer
}

func NewBreaker(o oracle.Oracle) *Breaker {
	return &Breaker{
		Oracle:   o,
		Filler:   parameters.Filler,
		Alphabet: EnglishFrequency(),
		Progress: io.Discard,
	}
}

func (b *Breaker) filler() byte {
	if b.Filler == 0 {
		return parameters.Filler
	}
	return b.Filler
}

func (b *Breaker) alphabet() []byte {
	if len(b.Alphabet) == 0 {
		return EnglishFrequency()
	}
	return b.Alphabet
}

func (b *Breaker) progress() io.Writer {
	if b.Progress == nil {
		return io.Discard
	}
	return b.Progress
}

// Locate measures the oracle and finds where attacker input starts.
func (b *Breaker) Locate() (Geometry, int, error) {
	g, ok := measure(b.Oracle, b.filler())
	// One byte of growth per input byte is a stream cipher.
	if !ok || g.BlockSize < 2 {
		return Geometry{}, 0, ErrNoBlockSize
	}
	fmt.Fprintf(b.progress(), "Block size: %d, hidden bytes: %d\n", g.BlockSize, g.FixedLength)

	if mode := detectMode(b.Oracle, g.BlockSize, b.filler()); mode != oracle.ECB {
		return Geometry{}, 0, fmt.Errorf("%w: looks like %v", ErrNotECB, mode)
	}
	prefixLen, ok := b.prefixLength(g)
	if !ok {
		return Geometry{}, 0, ErrNoPrefix
	}
	fmt.Fprintf(b.progress(), "Prefix length: %d\n", prefixLen)
	return g, prefixLen, nil
}

// prefixLength retries with a second filler byte when the hidden bytes
// next to the input collide with the first one.
func (b *Breaker) prefixLength(g Geometry) (int, bool) {
	for _, filler := range []byte{b.filler(), b.filler() + 1} {
		prefixLen, ok := detectPrefixLength(b.Oracle, g.BlockSize, filler)
		if ok && prefixLen <= g.FixedLength {
			return prefixLen, true
		}
	}
	return 0, false
}

// Break recovers the plaintext the oracle appends to the input.
func (b *Breaker) Break() ([]byte, error) {
	g, prefixLen, err := b.Locate()
	if err != nil {
		return nil, err
	}
	raw := recoverSuffix(b.Oracle, g.BlockSize, prefixLen, b.alphabet(), b.filler(), b.progress())
	secret := pkcs7.Unpad(raw)
	fmt.Fprintf(b.progress(), "Recovered %d of %d suffix bytes\n", len(secret), g.FixedLength-prefixLen)
	return secret, nil
}

// ForgeTrailingValue replaces the last oldValueLen bytes of the record the
// oracle encrypts with newValue.
func (b *Breaker) ForgeTrailingValue(oldValueLen int, newValue []byte) ([]byte, error) {
	g, prefixLen, err := b.Locate()
	if err != nil {
		return nil, err
	}
	if suffixLen := g.FixedLength - prefixLen; oldValueLen > suffixLen {
		return nil, fmt.Errorf("cannot replace %d bytes of a %d byte suffix", oldValueLen, suffixLen)
	}
	return forgeTrailingValue(b.Oracle, g, prefixLen, oldValueLen, newValue, b.filler()), nil
}
