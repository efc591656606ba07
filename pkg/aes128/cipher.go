// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes128

import (
	"crypto/cipher"
	"strconv"

	"github.com/kargakis/ecbreak/pkg/parameters"
)

// The AES block size in bytes.
const BlockSize = parameters.BlockSize

// The AES-128 key size in bytes.
const KeySize = parameters.KeySize

// A cipher is an instance of AES-128 encryption using a particular key.
type aesCipher struct {
	xk [parameters.Rounds + 1]state
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes128: invalid key size " + strconv.Itoa(int(k))
}

// NewCipher creates and returns a new cipher.Block.
// The key argument must be 16 bytes long.
func NewCipher(key []byte) (cipher.Block, error) {
	if k := len(key); k != KeySize {
		return nil, KeySizeError(k)
	}
	return &aesCipher{xk: roundKeys(key)}, nil
}

func (c *aesCipher) BlockSize() int { return BlockSize }

func (c *aesCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	encryptBlock(&c.xk, dst[:BlockSize], src[:BlockSize])
}

func (c *aesCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	decryptBlock(&c.xk, dst[:BlockSize], src[:BlockSize])
}
