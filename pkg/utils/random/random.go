// Package random supplies keys, IVs and filler for attack scenarios, either
// from the operating system or from a seeded generator for reproducible runs.
package random

import (
	"crypto/rand"
	"math/big"

	mtwist "blitter.com/go/mtwist"

	"github.com/kargakis/ecbreak/pkg/parameters"
)

// Source is a stream of random bytes that can also draw bounded integers.
type Source interface {
	Read(p []byte) (int, error)
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

type cryptoSource struct{}

// New returns a Source backed by crypto/rand.
func New() Source {
	return cryptoSource{}
}

func (cryptoSource) Read(p []byte) (int, error) {
	return rand.Read(p)
}

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(v.Int64())
}

type seededSource struct {
	prng *mtwist.MT19937_64
}

// NewSeeded returns a deterministic Source. Two sources created with the
// same seed produce the same stream.
func NewSeeded(seed []byte) Source {
	s := &seededSource{prng: mtwist.New()}
	s.prng.SeedFullState(seed)
	// Short seeds leave the first outputs poorly mixed.
	for i := 0; i < 64; i++ {
		_ = s.prng.Int63()
	}
	return s
}

func (s *seededSource) Read(p []byte) (int, error) {
	return s.prng.Read(p)
}

func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	return int(s.prng.Int63() % int64(n))
}

// Bytes returns n bytes drawn from src.
func Bytes(src Source, n int) []byte {
	buf := make([]byte, n)
	if _, err := src.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// Key returns a fresh AES-128 key.
func Key(src Source) []byte {
	return Bytes(src, parameters.KeySize)
}

// Between returns a value in [min, max].
func Between(src Source, min, max int) int {
	return min + src.Intn(max-min+1)
}

// Prefix returns between 0 and max random bytes.
func Prefix(src Source, max int) []byte {
	return Bytes(src, Between(src, 0, max))
}
