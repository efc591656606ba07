// Package modes chains a block cipher over whole buffers in ECB and CBC mode.
package modes

import "crypto/cipher"

type ecb struct {
	b         cipher.Block
	blockSize int
}

type ecbEncrypter ecb

// NewECBEncrypter returns a BlockMode which encrypts every block
// independently with b.
func NewECBEncrypter(b cipher.Block) cipher.BlockMode {
	return &ecbEncrypter{b, b.BlockSize()}
}

func (x *ecbEncrypter) BlockSize() int { return x.blockSize }

func (x *ecbEncrypter) CryptBlocks(dst, src []byte) {
	cryptBlocks(x.blockSize, dst, src, x.b.Encrypt)
}

type ecbDecrypter ecb

// NewECBDecrypter returns a BlockMode which decrypts every block
// independently with b.
func NewECBDecrypter(b cipher.Block) cipher.BlockMode {
	return &ecbDecrypter{b, b.BlockSize()}
}

func (x *ecbDecrypter) BlockSize() int { return x.blockSize }

func (x *ecbDecrypter) CryptBlocks(dst, src []byte) {
	cryptBlocks(x.blockSize, dst, src, x.b.Decrypt)
}

func cryptBlocks(bs int, dst, src []byte, crypt func(dst, src []byte)) {
	if len(src)%bs != 0 {
		panic("modes: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("modes: output smaller than input")
	}
	for len(src) > 0 {
		crypt(dst[:bs], src[:bs])
		src = src[bs:]
		dst = dst[bs:]
	}
}
