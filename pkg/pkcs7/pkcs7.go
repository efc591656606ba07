// Package pkcs7 implements PKCS#7 padding as used with 16-byte block ciphers.
package pkcs7

import "bytes"

// Pad extends buf to targetLen bytes, each new byte holding the number of
// bytes added. It reports false when the pad amount is not between 1 and 255.
func Pad(buf []byte, targetLen int) ([]byte, bool) {
	n := targetLen - len(buf)
	if n <= 0 || n > 0xff {
		return nil, false
	}
	padded := make([]byte, targetLen)
	copy(padded, buf)
	copy(padded[len(buf):], bytes.Repeat([]byte{byte(n)}, n))
	return padded, true
}

// PadBlock pads buf to the next multiple of blockSize strictly greater
// than its length. An aligned buffer gets a whole block of padding.
func PadBlock(buf []byte, blockSize int) []byte {
	if blockSize <= 0 || blockSize > 0xff {
		panic("pkcs7: invalid block size")
	}
	padded, _ := Pad(buf, (len(buf)/blockSize+1)*blockSize)
	return padded
}

// Unpad strips as many bytes as the last byte claims without checking them.
func Unpad(buf []byte) []byte {
	if len(buf) == 0 {
		return []byte{}
	}
	n := int(buf[len(buf)-1])
	if n > len(buf) {
		return []byte{}
	}
	return append([]byte{}, buf[:len(buf)-n]...)
}

// UnpadChecked strips padding only if every padding byte equals the
// claimed count. Malformed padding reports false.
func UnpadChecked(buf []byte) ([]byte, bool) {
	if len(buf) == 0 {
		return nil, false
	}
	b := buf[len(buf)-1]
	n := int(b)
	if n == 0 || n > len(buf) {
		return nil, false
	}
	if !bytes.Equal(buf[len(buf)-n:], bytes.Repeat([]byte{b}, n)) {
		return nil, false
	}
	return append([]byte{}, buf[:len(buf)-n]...), true
}
