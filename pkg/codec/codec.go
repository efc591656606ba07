// Package codec converts between raw bytes and their base16 and base64 text
// forms. Strict decoders reject foreign bytes; the Filter variants drop them.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	base16Alphabet = "0123456789abcdef"
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64Pad      = '='
)

// ErrOddLength is returned when base16 input ends with half a byte.
var ErrOddLength = errors.New("codec: odd length base16 input")

// ErrMalformed is returned when base64 input has only valid symbols but
// they do not form complete, correctly padded quartets.
var ErrMalformed = errors.New("codec: malformed base64 input")

// InvalidEncodingError reports a byte outside the decoder's alphabet.
type InvalidEncodingError struct {
	Encoding string
	Byte     byte
	Offset   int
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("codec: invalid %s character %q at offset %d", e.Encoding, e.Byte, e.Offset)
}

// EncodeBase16 returns the lowercase hexadecimal encoding of src.
func EncodeBase16(src []byte) []byte {
	dst := make([]byte, hex.EncodedLen(len(src)))
	hex.Encode(dst, src)
	return dst
}

// DecodeBase16 decodes lowercase hexadecimal text.
func DecodeBase16(src []byte) ([]byte, error) {
	for i, b := range src {
		if strings.IndexByte(base16Alphabet, b) < 0 {
			return nil, &InvalidEncodingError{Encoding: "base16", Byte: b, Offset: i}
		}
	}
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}
	dst := make([]byte, hex.DecodedLen(len(src)))
	n, err := hex.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecodeBase16Filter drops every byte that is not a lowercase hex digit from src and decodes the
// rest. A dangling half byte at the end is discarded.
func DecodeBase16Filter(src []byte) []byte {
	clean := filter(src, base16Alphabet)
	clean = clean[:len(clean)&^1]
	dst := make([]byte, hex.DecodedLen(len(clean)))
	n, _ := hex.Decode(dst, clean)
	return dst[:n]
}

// EncodeBase64 returns the padded standard base64 encoding of src.
func EncodeBase64(src []byte) []byte {
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(src)))
	base64.StdEncoding.Encode(dst, src)
	return dst
}

// DecodeBase64 decodes padded standard base64. A '=' marks the final
// quartet as carrying fewer than three bytes.
func DecodeBase64(src []byte) ([]byte, error) {
	for i, b := range src {
		if b != base64Pad && strings.IndexByte(base64Alphabet, b) < 0 {
			return nil, &InvalidEncodingError{Encoding: "base64", Byte: b, Offset: i}
		}
	}
	dst := make([]byte, base64.StdEncoding.DecodedLen(len(src)))
	n, err := base64.StdEncoding.Decode(dst, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return dst[:n], nil
}

// DecodeBase64Filter drops every byte outside the base64 alphabet and the
// pad marker, then decodes what is left. Anything after the first
// malformed quartet is lost.
func DecodeBase64Filter(src []byte) []byte {
	clean := filter(src, base64Alphabet+string(base64Pad))
	dst := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	n, _ := base64.StdEncoding.Decode(dst, clean)
	return dst[:n]
}

func filter(src []byte, alphabet string) []byte {
	out := make([]byte, 0, len(src))
	for _, b := range src {
		if strings.IndexByte(alphabet, b) >= 0 {
			out = append(out, b)
		}
	}
	return out
}
