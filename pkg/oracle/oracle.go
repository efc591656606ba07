// Package oracle provides the black-box encryption functions that the
// attacks in package attack are run against.
package oracle

import (
	"crypto/cipher"
	"fmt"

	"github.com/kargakis/ecbreak/pkg/aes128"
	"github.com/kargakis/ecbreak/pkg/modes"
	"github.com/kargakis/ecbreak/pkg/pkcs7"
	"github.com/kargakis/ecbreak/pkg/serialize"
	"github.com/kargakis/ecbreak/pkg/utils"
	"github.com/kargakis/ecbreak/pkg/utils/random"
)

// Oracle encrypts attacker input under hidden parameters. Identical
// inputs must produce identical outputs for the lifetime of the oracle.
type Oracle interface {
	Query(input []byte) []byte
}

// Func adapts a plain function to the Oracle interface.
type Func func(input []byte) []byte

func (f Func) Query(input []byte) []byte { return f(input) }

type Mode int

const (
	ECB Mode = iota
	CBC
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Cipher wraps attacker input between a fixed prefix and suffix, pads it
// and encrypts it under a fixed key.
type Cipher struct {
	mode   Mode
	block  cipher.Block
	iv     []byte
	prefix []byte
	suffix []byte
}

// NewECB returns an oracle computing ECB(key, pad(prefix ++ input ++ suffix)).
func NewECB(key, prefix, suffix []byte) (*Cipher, error) {
	b, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{
		mode:   ECB,
		block:  b,
		prefix: utils.Dup(prefix),
		suffix: utils.Dup(suffix),
	}, nil
}

// NewCBC is NewECB in CBC mode. Every query starts from the same iv.
func NewCBC(key, iv, prefix, suffix []byte) (*Cipher, error) {
	b, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != aes128.BlockSize {
		return nil, fmt.Errorf("invalid IV size %d", len(iv))
	}
	return &Cipher{
		mode:   CBC,
		block:  b,
		iv:     utils.Dup(iv),
		prefix: utils.Dup(prefix),
		suffix: utils.Dup(suffix),
	}, nil
}

func (c *Cipher) Mode() Mode { return c.mode }

func (c *Cipher) Query(input []byte) []byte {
	return encrypt(c.mode, c.block, c.iv, utils.Concat(c.prefix, input, c.suffix))
}

func encrypt(mode Mode, b cipher.Block, iv, plain []byte) []byte {
	buf := pkcs7.PadBlock(plain, b.BlockSize())
	var bm cipher.BlockMode
	switch mode {
	case CBC:
		bm = modes.NewCBCEncrypter(b, iv)
	default:
		bm = modes.NewECBEncrypter(b)
	}
	bm.CryptBlocks(buf, buf)
	return buf
}

// RandomMode encrypts every query under a fresh key, surrounded by 5 to 10
// random bytes on each side, in either ECB or CBC mode picked at random.
// It is not query-stable; it exists to exercise mode detection.
type RandomMode struct {
	src  random.Source
	last Mode
}

func NewRandomMode(src random.Source) *RandomMode {
	return &RandomMode{src: src}
}

func (r *RandomMode) Query(input []byte) []byte {
	b, err := aes128.NewCipher(random.Key(r.src))
	if err != nil {
		panic(err)
	}
	before := random.Bytes(r.src, random.Between(r.src, 5, 10))
	after := random.Bytes(r.src, random.Between(r.src, 5, 10))
	plain := utils.Concat(before, input, after)

	if r.src.Intn(2) == 0 {
		r.last = ECB
		return encrypt(ECB, b, nil, plain)
	}
	r.last = CBC
	return encrypt(CBC, b, random.Bytes(r.src, aes128.BlockSize), plain)
}

// Last returns the mode used by the most recent query.
func (r *RandomMode) Last() Mode { return r.last }

// Profile encrypts user profiles built from an attacker supplied email.
type Profile struct {
	key   []byte
	block cipher.Block
}

func NewProfile(key []byte) (*Profile, error) {
	b, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Profile{key: utils.Dup(key), block: b}, nil
}

// Query treats input as an email address.
func (p *Profile) Query(input []byte) []byte {
	return encrypt(ECB, p.block, nil, serialize.Encode(serialize.ProfileFor(string(input))))
}

// Decrypt decodes a profile ciphertext the way the owner of the key would.
func (p *Profile) Decrypt(ciphertext []byte) (serialize.Record, error) {
	plain, err := modes.DecryptECBPad(ciphertext, p.key)
	if err != nil {
		return nil, err
	}
	return serialize.Parse(plain)
}
