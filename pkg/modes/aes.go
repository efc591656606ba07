package modes

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/kargakis/ecbreak/pkg/aes128"
	"github.com/kargakis/ecbreak/pkg/pkcs7"
)

// ErrInvalidLength is returned when a buffer handed to a raw mode
// operation is not a whole number of blocks.
var ErrInvalidLength = errors.New("input length is not a multiple of the block size")

func checkLength(buf []byte) error {
	if len(buf)%aes128.BlockSize != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(buf))
	}
	return nil
}

func crypt(mode cipher.BlockMode, buf []byte) []byte {
	out := make([]byte, len(buf))
	mode.CryptBlocks(out, buf)
	return out
}

// EncryptECB encrypts buf block by block under key. buf must already be
// a multiple of the block size.
func EncryptECB(buf, key []byte) ([]byte, error) {
	if err := checkLength(buf); err != nil {
		return nil, err
	}
	b, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return crypt(NewECBEncrypter(b), buf), nil
}

// DecryptECB is the inverse of EncryptECB.
func DecryptECB(buf, key []byte) ([]byte, error) {
	if err := checkLength(buf); err != nil {
		return nil, err
	}
	b, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return crypt(NewECBDecrypter(b), buf), nil
}

// EncryptECBPad applies PKCS#7 padding to buf and encrypts it in ECB mode.
func EncryptECBPad(buf, key []byte) ([]byte, error) {
	return EncryptECB(pkcs7.PadBlock(buf, aes128.BlockSize), key)
}

// DecryptECBPad decrypts buf in ECB mode and strips the padding, trusting
// the last byte as the pad count.
func DecryptECBPad(buf, key []byte) ([]byte, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: got 0 bytes", ErrInvalidLength)
	}
	plain, err := DecryptECB(buf, key)
	if err != nil {
		return nil, err
	}
	return pkcs7.Unpad(plain), nil
}

func checkIV(iv []byte) error {
	if len(iv) != aes128.BlockSize {
		return fmt.Errorf("invalid IV size %d", len(iv))
	}
	return nil
}

// EncryptCBC encrypts buf under key in CBC mode starting from iv.
func EncryptCBC(buf, key, iv []byte) ([]byte, error) {
	if err := checkLength(buf); err != nil {
		return nil, err
	}
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	b, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return crypt(NewCBCEncrypter(b, iv), buf), nil
}

// DecryptCBC is the inverse of EncryptCBC.
func DecryptCBC(buf, key, iv []byte) ([]byte, error) {
	if err := checkLength(buf); err != nil {
		return nil, err
	}
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	b, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return crypt(NewCBCDecrypter(b, iv), buf), nil
}

// EncryptCBCPad applies PKCS#7 padding to buf and encrypts it in CBC mode.
func EncryptCBCPad(buf, key, iv []byte) ([]byte, error) {
	return EncryptCBC(pkcs7.PadBlock(buf, aes128.BlockSize), key, iv)
}

// DecryptCBCPad decrypts buf in CBC mode and strips the padding, trusting
// the last byte as the pad count.
func DecryptCBCPad(buf, key, iv []byte) ([]byte, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: got 0 bytes", ErrInvalidLength)
	}
	plain, err := DecryptCBC(buf, key, iv)
	if err != nil {
		return nil, err
	}
	return pkcs7.Unpad(plain), nil
}
